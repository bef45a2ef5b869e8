package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quote is read-only reference data maintained outside the request path.
type Quote struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Content     string                      `gorm:"not null;column:content" json:"content"`
	Author      string                      `gorm:"column:author" json:"author,omitempty"`
	Vibe        string                      `gorm:"column:vibe" json:"vibe"`
	Categories  datatypes.JSONSlice[string] `gorm:"column:categories" json:"categories"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	IsPremium   bool                        `gorm:"not null;default:false;column:is_premium" json:"is_premium"`
	IsSpiritual bool                        `gorm:"not null;default:false;column:is_spiritual" json:"is_spiritual"`
	CreatedAt   time.Time                   `gorm:"not null" json:"created_at"`
}

func (Quote) TableName() string {
	return "quote"
}
