package services

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/clarity-backend/internal/pkg/errors"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/platform/apierr"
	"github.com/yungbote/clarity-backend/internal/repos"
	"github.com/yungbote/clarity-backend/internal/types"
)

const (
	minutesPerDay = 24 * 60

	// snoozeDuration is how far a snoozed reminder is pushed out.
	snoozeDuration = 9 * time.Minute

	maxDailyReminders = 24
)

// ComputeSlots spreads freq reminder times across the window [start, end],
// given as "HH:MM" strings. A window that ends at or before its start wraps
// past midnight. Each slot gets random jitter within half the interval so
// reminders never land on a rigid grid; results are minutes-of-day.
func ComputeSlots(freq int, start, end string, rng *rand.Rand) ([]int, error) {
	if freq <= 0 || freq > maxDailyReminders {
		return nil, fmt.Errorf("reminder count %d out of range: %w", freq, pkgerrors.ErrInvalidArgument)
	}
	startMin, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	endMin, err := parseClock(end)
	if err != nil {
		return nil, err
	}
	if endMin <= startMin {
		endMin += minutesPerDay
	}

	interval := (endMin - startMin) / freq
	slots := make([]int, 0, freq)
	for i := 0; i < freq; i++ {
		slot := startMin + i*interval
		if half := interval / 2; half > 0 {
			slot += rng.Intn(half)
		}
		slots = append(slots, slot%minutesPerDay)
	}
	return slots, nil
}

func parseClock(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bad time %q: %w", value, pkgerrors.ErrInvalidArgument)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("bad hour in %q: %w", value, pkgerrors.ErrInvalidArgument)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("bad minute in %q: %w", value, pkgerrors.ErrInvalidArgument)
	}
	return hour*60 + minute, nil
}

// AssignContent pairs each slot with a message from the pool. The pool is
// shuffled first, then cycled, so a pool at least as large as the slot
// count yields no repeats.
func AssignContent(slots []int, pool []string, rng *rand.Rand) []string {
	if len(pool) == 0 {
		return make([]string, len(slots))
	}
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	assigned := make([]string, 0, len(slots))
	for i := range slots {
		assigned = append(assigned, shuffled[i%len(shuffled)])
	}
	return assigned
}

type ReminderService interface {
	// ScheduleDaily replaces the user's recurring reminders with freq slots
	// spread over the [start, end] window.
	ScheduleDaily(ctx context.Context, userID uuid.UUID, freq int, start, end string) ([]*types.ScheduledNotification, error)
	// SetAlarm replaces the user's wake-up alarm, one firing per listed
	// weekday (1=Sunday through 7=Saturday).
	SetAlarm(ctx context.Context, userID uuid.UUID, timeOfDay string, weekdays []int) ([]*types.ScheduledNotification, error)
	// Snooze pushes a one-shot reminder out by a fixed duration.
	Snooze(ctx context.Context, userID uuid.UUID) (*types.ScheduledNotification, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.ScheduledNotification, error)
	// RescheduleAll re-materializes recurring reminders for every profile
	// with reminders configured. Run nightly so jitter rerolls each day.
	RescheduleAll(ctx context.Context) error
}

type reminderService struct {
	db           *gorm.DB
	log          *logger.Logger
	profileRepo  repos.ProfileRepo
	favoriteRepo repos.FavoriteRepo
	deviceRepo   repos.DeviceRepo
	scheduleRepo repos.ScheduledNotificationRepo
	now          func() time.Time
	newRand      func() *rand.Rand
}

func NewReminderService(
	db *gorm.DB,
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	favoriteRepo repos.FavoriteRepo,
	deviceRepo repos.DeviceRepo,
	scheduleRepo repos.ScheduledNotificationRepo,
) ReminderService {
	return &reminderService{
		db:           db,
		log:          baseLog.With("service", "ReminderService"),
		profileRepo:  profileRepo,
		favoriteRepo: favoriteRepo,
		deviceRepo:   deviceRepo,
		scheduleRepo: scheduleRepo,
		now:          time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// requirePushEnabled gates every schedule mutation: without an enabled
// device the existing schedule is left untouched and the caller gets a
// conflict, mirroring an OS-level permission denial.
func (s *reminderService) requirePushEnabled(ctx context.Context, userID uuid.UUID) error {
	devices, err := s.deviceRepo.ListEnabledByUserID(ctx, nil, userID)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return apierr.New(http.StatusConflict, "notifications_disabled", pkgerrors.ErrNotificationsDisabled)
	}
	return nil
}

func (s *reminderService) ScheduleDaily(ctx context.Context, userID uuid.UUID, freq int, start, end string) ([]*types.ScheduledNotification, error) {
	ctx = ctxutil.Default(ctx)
	if err := s.requirePushEnabled(ctx, userID); err != nil {
		return nil, err
	}

	rng := s.newRand()
	slots, err := ComputeSlots(freq, start, end, rng)
	if err != nil {
		return nil, err
	}

	pool, err := s.contentPool(ctx, userID)
	if err != nil {
		return nil, err
	}
	messages := AssignContent(slots, pool, rng)

	rows := make([]*types.ScheduledNotification, 0, len(slots))
	for i, minute := range slots {
		rows = append(rows, &types.ScheduledNotification{
			UserID: userID,
			Kind:   types.NotificationKindGeneral,
			Minute: minute,
			Title:  "Clarity",
			Body:   messages[i],
		})
	}
	if err := s.scheduleRepo.ReplaceForKind(ctx, nil, userID, types.NotificationKindGeneral, rows); err != nil {
		return nil, err
	}
	if err := s.profileRepo.UpdateNotificationSettings(ctx, nil, userID, "", freq, start, end); err != nil {
		return nil, err
	}
	s.log.Info("daily reminders scheduled", "user_id", userID.String(), "count", len(rows))
	return rows, nil
}

func (s *reminderService) SetAlarm(ctx context.Context, userID uuid.UUID, timeOfDay string, weekdays []int) ([]*types.ScheduledNotification, error) {
	ctx = ctxutil.Default(ctx)
	if err := s.requirePushEnabled(ctx, userID); err != nil {
		return nil, err
	}
	minute, err := parseClock(timeOfDay)
	if err != nil {
		return nil, err
	}
	if len(weekdays) == 0 {
		weekdays = []int{1, 2, 3, 4, 5, 6, 7}
	}

	rows := make([]*types.ScheduledNotification, 0, len(weekdays))
	for _, weekday := range weekdays {
		if weekday < 1 || weekday > 7 {
			return nil, fmt.Errorf("weekday %d out of range: %w", weekday, pkgerrors.ErrInvalidArgument)
		}
		day := weekday
		rows = append(rows, &types.ScheduledNotification{
			UserID:  userID,
			Kind:    types.NotificationKindAlarm,
			Minute:  minute,
			Weekday: &day,
			Title:   "Rise and shine",
			Body:    "Start your day with a moment of clarity.",
			Sound:   "alarm",
		})
	}
	if err := s.scheduleRepo.ReplaceForKind(ctx, nil, userID, types.NotificationKindAlarm, rows); err != nil {
		return nil, err
	}
	if err := s.profileRepo.UpdateNotificationSettings(ctx, nil, userID, timeOfDay, 0, "", ""); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *reminderService) Snooze(ctx context.Context, userID uuid.UUID) (*types.ScheduledNotification, error) {
	ctx = ctxutil.Default(ctx)
	if err := s.requirePushEnabled(ctx, userID); err != nil {
		return nil, err
	}
	fireAt := s.now().Add(snoozeDuration)
	minute := fireAt.Hour()*60 + fireAt.Minute()
	row := &types.ScheduledNotification{
		UserID: userID,
		Kind:   types.NotificationKindSnooze,
		Minute: minute,
		Title:  "Rise and shine",
		Body:   "Snooze is over. Start your day with a moment of clarity.",
		Sound:  "alarm",
		FireAt: &fireAt,
	}
	if err := s.scheduleRepo.ReplaceForKind(ctx, nil, userID, types.NotificationKindSnooze, []*types.ScheduledNotification{row}); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *reminderService) List(ctx context.Context, userID uuid.UUID) ([]*types.ScheduledNotification, error) {
	ctx = ctxutil.Default(ctx)
	return s.scheduleRepo.ListByUserID(ctx, nil, userID)
}

func (s *reminderService) RescheduleAll(ctx context.Context) error {
	ctx = ctxutil.Default(ctx)
	profiles, err := s.profileRepo.ListWithRemindersConfigured(ctx, nil)
	if err != nil {
		return err
	}
	for _, profile := range profiles {
		if profile.NotificationStart == "" || profile.NotificationEnd == "" {
			continue
		}
		if _, err := s.ScheduleDaily(ctx, profile.UserID, profile.NotificationFreq, profile.NotificationStart, profile.NotificationEnd); err != nil {
			// Per-user failures (typically no enabled device) skip, never
			// abort the sweep.
			s.log.Warn("reschedule skipped", "user_id", profile.UserID.String(), "error", err)
		}
	}
	s.log.Info("reminder reschedule sweep complete", "profiles", len(profiles))
	return nil
}

// contentPool prefers the user's favorited quotes; a user with none gets
// the built-in affirmations.
func (s *reminderService) contentPool(ctx context.Context, userID uuid.UUID) ([]string, error) {
	favorites, err := s.favoriteRepo.ListWithQuotesByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	pool := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Quote != nil && favorite.Quote.Content != "" {
			pool = append(pool, favorite.Quote.Content)
		}
	}
	if len(pool) == 0 {
		pool = defaultAffirmations()
	}
	return pool, nil
}
