package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/clarity-backend/internal/pkg/errors"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
	"github.com/yungbote/clarity-backend/internal/types"
)

const defaultNotificationTime = "09:00"

// OnboardInput carries the answers collected by the onboarding flow.
// Premium status is intentionally absent: entitlements are never
// client-asserted.
type OnboardInput struct {
	FullName            string   `json:"full_name"`
	FocusAreas          []string `json:"focus_areas"`
	Struggles           []string `json:"struggles"`
	Tone                string   `json:"tone"`
	ManifestationBelief string   `json:"manifestation_belief"`
	NotificationTime    string   `json:"notification_time"`
}

type ProfileService interface {
	Onboard(ctx context.Context, userID uuid.UUID, input OnboardInput) (*types.Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	UpdateFocusAreas(ctx context.Context, userID uuid.UUID, focusAreas []string) error
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, baseLog *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	return &profileService{
		db:          db,
		log:         baseLog.With("service", "ProfileService"),
		profileRepo: profileRepo,
	}
}

// Onboard writes the profile for a user, creating it on first run and
// updating the editable fields on repeats. Streak state and premium status
// survive re-onboarding untouched.
func (s *profileService) Onboard(ctx context.Context, userID uuid.UUID, input OnboardInput) (*types.Profile, error) {
	ctx = ctxutil.Default(ctx)
	if userID == uuid.Nil {
		return nil, pkgerrors.ErrInvalidArgument
	}

	notificationTime := strings.TrimSpace(input.NotificationTime)
	if notificationTime == "" {
		notificationTime = defaultNotificationTime
	}

	profile := &types.Profile{
		UserID:              userID,
		FullName:            strings.TrimSpace(input.FullName),
		FocusAreas:          datatypes.NewJSONSlice(normalizeFocusAreas(input.FocusAreas)),
		Struggles:           datatypes.NewJSONSlice(trimAll(input.Struggles)),
		Tone:                strings.TrimSpace(input.Tone),
		ManifestationBelief: strings.TrimSpace(input.ManifestationBelief),
		NotificationTime:    notificationTime,
	}
	saved, err := s.profileRepo.Upsert(ctx, nil, profile)
	if err != nil {
		return nil, err
	}
	s.log.Info("profile onboarded", "user_id", userID.String())
	return saved, nil
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	ctx = ctxutil.Default(ctx)
	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, pkgerrors.ErrNotFound
	}
	return profile, nil
}

func (s *profileService) UpdateFocusAreas(ctx context.Context, userID uuid.UUID, focusAreas []string) error {
	ctx = ctxutil.Default(ctx)
	return s.profileRepo.UpdateFocusAreas(ctx, nil, userID, normalizeFocusAreas(focusAreas))
}

// normalizeFocusAreas trims entries and treats "General" as "no filter":
// a selection containing it collapses to the empty set so the feed draws
// from every category.
func normalizeFocusAreas(focusAreas []string) []string {
	trimmed := trimAll(focusAreas)
	for _, area := range trimmed {
		if strings.EqualFold(area, "General") {
			return []string{}
		}
	}
	return trimmed
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
