package types

import (
	"time"

	"github.com/google/uuid"
)

type Theme struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"not null;column:name" json:"name"`
	BackgroundImageURL string    `gorm:"column:background_image_url" json:"background_image_url"`
	TextColorHex       string    `gorm:"column:text_color_hex" json:"text_color_hex"`
	IsPremium          bool      `gorm:"not null;default:false;column:is_premium" json:"is_premium"`
	Category           string    `gorm:"column:category" json:"category,omitempty"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}

func (Theme) TableName() string {
	return "theme"
}
