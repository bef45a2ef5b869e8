package services

import (
	"testing"
	"time"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestEvaluateStreakFirstCheckIn(t *testing.T) {
	t.Parallel()
	result := EvaluateStreak(0, "", nil, day("2026-08-27 09:00"))
	if result.Streak != 1 {
		t.Fatalf("unexpected streak: got=%d want=1", result.Streak)
	}
	if result.LastActiveDate != "2026-08-27" {
		t.Fatalf("unexpected last active date: %q", result.LastActiveDate)
	}
	if len(result.ActivityLog) != 1 || result.ActivityLog[0] != "2026-08-27" {
		t.Fatalf("unexpected activity log: %v", result.ActivityLog)
	}
	if !result.Changed {
		t.Fatal("first check-in should report a change")
	}
}

func TestEvaluateStreakSameDayIsIdempotent(t *testing.T) {
	t.Parallel()
	log := []string{"2026-08-27"}
	result := EvaluateStreak(4, "2026-08-27", log, day("2026-08-27 23:59"))
	if result.Changed {
		t.Fatal("same-day check-in should not report a change")
	}
	if result.Streak != 4 {
		t.Fatalf("same-day check-in mutated streak: got=%d want=4", result.Streak)
	}
	if len(result.ActivityLog) != 1 {
		t.Fatalf("same-day check-in grew the log: %v", result.ActivityLog)
	}
}

func TestEvaluateStreakConsecutiveDayExtends(t *testing.T) {
	t.Parallel()
	result := EvaluateStreak(4, "2026-08-26", []string{"2026-08-26"}, day("2026-08-27 00:01"))
	if result.Streak != 5 {
		t.Fatalf("unexpected streak: got=%d want=5", result.Streak)
	}
	if len(result.ActivityLog) != 2 {
		t.Fatalf("unexpected activity log: %v", result.ActivityLog)
	}
}

func TestEvaluateStreakSurvivesShortDSTDay(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2026-03-08 is the spring-forward day in New York, only 23 hours
	// long. It must still count as consecutive with the day before.
	today := time.Date(2026, 3, 8, 9, 0, 0, 0, loc)
	result := EvaluateStreak(6, "2026-03-07", []string{"2026-03-07"}, today)
	if result.Streak != 7 {
		t.Fatalf("short DST day broke the streak: got=%d want=7", result.Streak)
	}
	if result.LastActiveDate != "2026-03-08" {
		t.Fatalf("unexpected last active date: %q", result.LastActiveDate)
	}
}

func TestEvaluateStreakGapResets(t *testing.T) {
	t.Parallel()
	result := EvaluateStreak(9, "2026-08-24", []string{"2026-08-24"}, day("2026-08-27 12:00"))
	if result.Streak != 1 {
		t.Fatalf("gap should reset streak to 1, got %d", result.Streak)
	}
	if result.LastActiveDate != "2026-08-27" {
		t.Fatalf("unexpected last active date: %q", result.LastActiveDate)
	}
}

func TestEvaluateStreakBadStoredDateResets(t *testing.T) {
	t.Parallel()
	result := EvaluateStreak(3, "not-a-date", nil, day("2026-08-27 12:00"))
	if result.Streak != 1 {
		t.Fatalf("unparseable stored date should reset, got %d", result.Streak)
	}
}

func TestEvaluateStreakDoesNotMutateInputLog(t *testing.T) {
	t.Parallel()
	log := make([]string, 0, 4)
	log = append(log, "2026-08-26")
	result := EvaluateStreak(1, "2026-08-26", log, day("2026-08-27 08:00"))
	if len(log) != 1 {
		t.Fatalf("input log was mutated: %v", log)
	}
	if len(result.ActivityLog) != 2 {
		t.Fatalf("unexpected result log: %v", result.ActivityLog)
	}
}

func TestWeekWindowClassification(t *testing.T) {
	t.Parallel()
	today := day("2026-08-27 10:00")
	log := []string{"2026-08-25", "2026-08-27"}

	week := WeekWindow(log, today)
	if len(week) != 7 {
		t.Fatalf("unexpected strip length: got=%d want=7", len(week))
	}

	wantDates := []string{
		"2026-08-23", "2026-08-24", "2026-08-25", "2026-08-26",
		"2026-08-27", "2026-08-28", "2026-08-29",
	}
	wantStatus := []DayStatus{
		DayMissed, DayMissed, DayLogged, DayMissed,
		DayLogged, DayFuture, DayFuture,
	}
	for i, entry := range week {
		if entry.Date != wantDates[i] {
			t.Fatalf("day %d: unexpected date: got=%q want=%q", i, entry.Date, wantDates[i])
		}
		if entry.Status != wantStatus[i] {
			t.Fatalf("day %d (%s): unexpected status: got=%q want=%q", i, entry.Date, entry.Status, wantStatus[i])
		}
		if entry.IsToday != (entry.Date == "2026-08-27") {
			t.Fatalf("day %d: wrong IsToday flag", i)
		}
	}
}
