package types

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"not null;index:idx_favorite_user_quote,unique;column:user_id" json:"user_id"`
	QuoteID   uuid.UUID `gorm:"not null;index:idx_favorite_user_quote,unique;column:quote_id" json:"quote_id"`
	Quote     *Quote    `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuoteID;references:ID" json:"quote,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorite"
}
