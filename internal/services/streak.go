package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/clarity-backend/internal/pkg/errors"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
)

// dayFormat is the canonical calendar-day key. Days are compared as local
// calendar dates, never as instants, so a check-in at 23:59 and one at
// 00:01 the next day count as consecutive days.
const dayFormat = "2006-01-02"

// DayStatus classifies one cell of the week strip.
type DayStatus string

const (
	DayLogged DayStatus = "logged"
	DayMissed DayStatus = "missed"
	DayFuture DayStatus = "future"
)

// WeekDay is one entry of the seven-day strip around today.
type WeekDay struct {
	Date    string    `json:"date"`
	Weekday string    `json:"weekday"`
	Status  DayStatus `json:"status"`
	IsToday bool      `json:"is_today"`
}

// StreakResult is what a check-in evaluation produces.
type StreakResult struct {
	Streak         int      `json:"streak"`
	LastActiveDate string   `json:"last_active_date"`
	ActivityLog    []string `json:"activity_log"`
	Changed        bool     `json:"-"`
}

// EvaluateStreak applies one check-in at "today" to the stored streak
// state. Same-day repeats are no-ops, exactly one calendar day of gap
// extends the streak, anything else resets it to 1. The activity log
// gains today's date at most once.
func EvaluateStreak(currentStreak int, lastActiveDate string, activityLog []string, today time.Time) StreakResult {
	todayKey := today.Format(dayFormat)

	if lastActiveDate == todayKey {
		return StreakResult{
			Streak:         currentStreak,
			LastActiveDate: lastActiveDate,
			ActivityLog:    activityLog,
			Changed:        false,
		}
	}

	streak := 1
	if lastActiveDate != "" {
		// Compared as calendar dates, not elapsed hours, so DST transition
		// days (23 or 25 hours long) still count as consecutive.
		if last, err := time.ParseInLocation(dayFormat, lastActiveDate, today.Location()); err == nil {
			if last.AddDate(0, 0, 1).Format(dayFormat) == todayKey {
				streak = currentStreak + 1
			}
		}
	}

	log := activityLog
	if !containsDay(log, todayKey) {
		log = append(append([]string{}, activityLog...), todayKey)
	}

	return StreakResult{
		Streak:         streak,
		LastActiveDate: todayKey,
		ActivityLog:    log,
		Changed:        true,
	}
}

// WeekWindow builds the seven-day strip from four days back through two
// days ahead of today. Past days are logged or missed depending on the
// activity log; days after today are always future.
func WeekWindow(activityLog []string, today time.Time) []WeekDay {
	todayKey := today.Format(dayFormat)
	logged := make(map[string]struct{}, len(activityLog))
	for _, day := range activityLog {
		logged[day] = struct{}{}
	}

	strip := make([]WeekDay, 0, 7)
	for offset := -4; offset <= 2; offset++ {
		day := today.AddDate(0, 0, offset)
		key := day.Format(dayFormat)
		status := DayMissed
		switch {
		case offset > 0:
			status = DayFuture
		default:
			if _, ok := logged[key]; ok {
				status = DayLogged
			}
		}
		strip = append(strip, WeekDay{
			Date:    key,
			Weekday: day.Weekday().String()[:3],
			Status:  status,
			IsToday: key == todayKey,
		})
	}
	return strip
}

func containsDay(log []string, day string) bool {
	for _, item := range log {
		if item == day {
			return true
		}
	}
	return false
}

type StreakService interface {
	CheckIn(ctx context.Context, userID uuid.UUID) (*StreakResult, error)
	Week(ctx context.Context, userID uuid.UUID) ([]WeekDay, error)
}

type streakService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	now         func() time.Time
}

func NewStreakService(db *gorm.DB, baseLog *logger.Logger, profileRepo repos.ProfileRepo) StreakService {
	return &streakService{
		db:          db,
		log:         baseLog.With("service", "StreakService"),
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// CheckIn records today's activity for the user and persists the result
// only when the evaluation actually changed state.
func (s *streakService) CheckIn(ctx context.Context, userID uuid.UUID) (*StreakResult, error) {
	ctx = ctxutil.Default(ctx)
	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, pkgerrors.ErrNotFound
	}

	result := EvaluateStreak(profile.CurrentStreak, profile.LastActiveDate, profile.ActivityLog, s.now())
	if !result.Changed {
		return &result, nil
	}
	if err := s.profileRepo.UpdateStreak(ctx, nil, userID, result.Streak, result.LastActiveDate, result.ActivityLog); err != nil {
		return nil, err
	}
	s.log.Info("streak updated", "user_id", userID.String(), "streak", result.Streak)
	return &result, nil
}

func (s *streakService) Week(ctx context.Context, userID uuid.UUID) ([]WeekDay, error) {
	ctx = ctxutil.Default(ctx)
	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, pkgerrors.ErrNotFound
	}
	return WeekWindow(profile.ActivityLog, s.now()), nil
}
