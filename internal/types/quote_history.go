package types

import (
	"time"

	"github.com/google/uuid"
)

// QuoteHistory is upserted on (user_id, quote_id); repeat views move
// LastSeenAt forward instead of creating duplicate rows.
type QuoteHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"not null;index:idx_history_user_quote,unique;column:user_id" json:"user_id"`
	QuoteID    uuid.UUID `gorm:"not null;index:idx_history_user_quote,unique;column:quote_id" json:"quote_id"`
	Quote      *Quote    `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuoteID;references:ID" json:"quote,omitempty"`
	LastSeenAt time.Time `gorm:"not null;index;column:last_seen_at" json:"last_seen_at"`
}

func (QuoteHistory) TableName() string {
	return "quote_history"
}
