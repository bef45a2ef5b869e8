package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the per-user wellness profile written at onboarding and mutated
// by the streak engine, focus-area edits, theme selection, and reminder
// settings. LastActiveDate and ActivityLog hold plain "YYYY-MM-DD" strings so
// streak math never shifts across timezones.
type Profile struct {
	ID                  uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID                    `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	User                *User                        `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	FullName            string                       `gorm:"column:full_name" json:"full_name"`
	FocusAreas          datatypes.JSONSlice[string]  `gorm:"column:focus_areas" json:"focus_areas"`
	Struggles           datatypes.JSONSlice[string]  `gorm:"column:struggles" json:"struggles"`
	Tone                string                       `gorm:"column:tone" json:"tone"`
	ManifestationBelief string                       `gorm:"column:manifestation_belief" json:"manifestation_belief"`
	IsPremium           bool                         `gorm:"not null;default:false;column:is_premium" json:"is_premium"`
	CurrentStreak       int                          `gorm:"not null;default:0;column:current_streak" json:"current_streak"`
	LastActiveDate      string                       `gorm:"column:last_active_date" json:"last_active_date"`
	ActivityLog         datatypes.JSONSlice[string]  `gorm:"column:activity_log" json:"activity_log"`
	SelectedThemeID     *uuid.UUID                   `gorm:"type:uuid;column:selected_theme_id" json:"selected_theme_id"`
	NotificationTime    string                       `gorm:"column:notification_time" json:"notification_time"`
	NotificationFreq    int                          `gorm:"column:notification_freq" json:"notification_freq"`
	NotificationStart   string                       `gorm:"column:notification_start" json:"notification_start"`
	NotificationEnd     string                       `gorm:"column:notification_end" json:"notification_end"`
	CreatedAt           time.Time                    `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time                    `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profile"
}
