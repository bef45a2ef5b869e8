package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/clarity-backend/internal/types"
)

func TestNormalizeFocusAreas(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		input []string
		want  []string
	}{
		{"plain list", []string{"Calm", "Focus"}, []string{"Calm", "Focus"}},
		{"trims and drops empties", []string{" Calm ", "", "  "}, []string{"Calm"}},
		{"general collapses selection", []string{"Calm", "General"}, []string{}},
		{"general is case insensitive", []string{"gEnErAl"}, []string{}},
		{"nil input", nil, []string{}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeFocusAreas(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("unexpected result: got=%v want=%v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("unexpected result: got=%v want=%v", got, tc.want)
				}
			}
		})
	}
}

func TestOnboardDefaults(t *testing.T) {
	t.Parallel()
	profiles := &fakeProfileRepo{}
	svc := &profileService{log: testLogger(t), profileRepo: profiles}

	saved, err := svc.Onboard(context.Background(), uuid.New(), OnboardInput{
		FullName:  "  Ada Lovelace ",
		Tone:      "gentle",
		Struggles: []string{"sleep"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.NotificationTime != "09:00" {
		t.Fatalf("missing default reminder time: %q", saved.NotificationTime)
	}
	if saved.FullName != "Ada Lovelace" {
		t.Fatalf("name not trimmed: %q", saved.FullName)
	}
	if saved.IsPremium {
		t.Fatal("onboarding must never grant premium")
	}
}

func TestOnboardRejectsMissingUser(t *testing.T) {
	t.Parallel()
	svc := &profileService{log: testLogger(t), profileRepo: &fakeProfileRepo{}}
	if _, err := svc.Onboard(context.Background(), uuid.Nil, OnboardInput{}); err == nil {
		t.Fatal("expected error for missing user id")
	}
}

func TestStreakCheckInPersistsOnlyOnChange(t *testing.T) {
	t.Parallel()
	profiles := &fakeProfileRepo{profile: &types.Profile{
		UserID:         uuid.New(),
		CurrentStreak:  3,
		LastActiveDate: "2026-08-26",
	}}
	svc := &streakService{
		log:         testLogger(t),
		profileRepo: profiles,
		now:         func() time.Time { return time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC) },
	}

	result, err := svc.CheckIn(context.Background(), profiles.profile.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Streak != 4 {
		t.Fatalf("unexpected streak: got=%d want=4", result.Streak)
	}
	if profiles.updatedStreak == nil || *profiles.updatedStreak != 4 {
		t.Fatal("changed check-in did not persist")
	}

	// Second check-in on the same day must not write again.
	profiles.profile.CurrentStreak = 4
	profiles.profile.LastActiveDate = "2026-08-27"
	profiles.updatedStreak = nil
	if _, err := svc.CheckIn(context.Background(), profiles.profile.UserID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profiles.updatedStreak != nil {
		t.Fatal("same-day check-in persisted unnecessarily")
	}
}
