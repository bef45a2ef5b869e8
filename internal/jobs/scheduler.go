package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/services"
	"github.com/yungbote/clarity-backend/internal/utils"
)

// Scheduler owns the nightly reminder sweep. Recurring reminders carry
// random jitter, so they are re-materialized shortly after midnight to
// reroll each day's times.
type Scheduler struct {
	cron     *cron.Cron
	log      *logger.Logger
	reminder services.ReminderService
}

func NewScheduler(baseLog *logger.Logger, reminder services.ReminderService) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		log:      baseLog.With("component", "Scheduler"),
		reminder: reminder,
	}
}

func (s *Scheduler) Start() error {
	spec := utils.GetEnv("REMINDER_RESCHEDULE_CRON", "15 0 * * *", s.log)
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := s.reminder.RescheduleAll(ctx); err != nil {
			s.log.Error("reminder reschedule sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler started", "spec", spec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		s.log.Warn("scheduler stop timed out")
	}
}
