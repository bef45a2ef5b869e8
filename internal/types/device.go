package types

import (
	"time"

	"github.com/google/uuid"
)

// Device tracks a registered mobile device and whether the OS granted it
// notification permission. Scheduling requires at least one enabled device.
type Device struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"not null;index:idx_device_user_token,unique;column:user_id" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	PushToken   string    `gorm:"not null;index:idx_device_user_token,unique;column:push_token" json:"push_token"`
	Platform    string    `gorm:"column:platform" json:"platform"`
	PushEnabled bool      `gorm:"not null;default:false;column:push_enabled" json:"push_enabled"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Device) TableName() string {
	return "device"
}
