package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationKindGeneral = "general"
	NotificationKindAlarm   = "alarm"
	NotificationKindSnooze  = "snooze"
)

// ScheduledNotification is one materialized trigger. General slots carry a
// minute-of-day; alarm slots additionally carry a weekday (1=Sunday..7);
// snooze rows are one-shots with FireAt set. Re-scheduling a kind replaces
// all rows of that kind for the user.
type ScheduledNotification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"not null;index;column:user_id" json:"user_id"`
	Kind      string     `gorm:"not null;index;column:kind" json:"kind"`
	Minute    int        `gorm:"not null;column:minute" json:"minute"`
	Weekday   *int       `gorm:"column:weekday" json:"weekday,omitempty"`
	Title     string     `gorm:"column:title" json:"title"`
	Body      string     `gorm:"column:body" json:"body"`
	Sound     string     `gorm:"column:sound" json:"sound,omitempty"`
	FireAt    *time.Time `gorm:"column:fire_at" json:"fire_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

func (ScheduledNotification) TableName() string {
	return "scheduled_notification"
}
