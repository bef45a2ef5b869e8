package services

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/clarity-backend/internal/pkg/errors"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
)

// ShareCardService renders a square PNG a user can post to celebrate
// their streak.
type ShareCardService interface {
	Render(ctx context.Context, userID uuid.UUID) (bytes.Buffer, error)
}

type shareCardService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo

	numberFace font.Face
	labelFace  font.Face
	now        func() time.Time
}

func NewShareCardService(db *gorm.DB, baseLog *logger.Logger, profileRepo repos.ProfileRepo) (ShareCardService, error) {
	serviceLog := baseLog.With("service", "ShareCardService")

	fontPath := os.Getenv("SHARE_CARD_FONT")
	if strings.TrimSpace(fontPath) == "" {
		return nil, fmt.Errorf("env var SHARE_CARD_FONT is empty")
	}
	serviceLog.Info("loading share card font", "font", fontPath)

	numberFace, err := loadCardFace(fontPath, 320)
	if err != nil {
		return nil, fmt.Errorf("could not load share card font: %w", err)
	}
	labelFace, err := loadCardFace(fontPath, 64)
	if err != nil {
		return nil, fmt.Errorf("could not load share card font: %w", err)
	}

	return &shareCardService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		numberFace:  numberFace,
		labelFace:   labelFace,
		now:         time.Now,
	}, nil
}

func (s *shareCardService) Render(ctx context.Context, userID uuid.UUID) (bytes.Buffer, error) {
	var buf bytes.Buffer
	ctx = ctxutil.Default(ctx)

	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return buf, err
	}
	if profile == nil {
		return buf, pkgerrors.ErrNotFound
	}

	const size = 1080
	dc := gg.NewContext(size, size)

	grad := gg.NewLinearGradient(0, 0, 0, size)
	grad.AddColorStop(0, color.NRGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF})
	grad.AddColorStop(1, color.NRGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, size, size)
	dc.Fill()

	cx := float64(size) / 2

	dc.SetFontFace(s.numberFace)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(fmt.Sprintf("%d", profile.CurrentStreak), cx, 430, 0.5, 0.5)

	dc.SetFontFace(s.labelFace)
	dc.SetColor(color.NRGBA{R: 0xCB, G: 0xD5, B: 0xE1, A: 0xFF})
	dc.DrawStringAnchored("day streak", cx, 640, 0.5, 0.5)

	if name := strings.TrimSpace(profile.FullName); name != "" {
		dc.DrawStringAnchored(name, cx, 750, 0.5, 0.5)
	}

	// Week strip as seven dots along the bottom.
	week := WeekWindow(profile.ActivityLog, s.now())
	const dotRadius = 26.0
	spacing := float64(size) / 8
	for i, day := range week {
		x := spacing * float64(i+1)
		switch day.Status {
		case DayLogged:
			dc.SetColor(color.NRGBA{R: 0x34, G: 0xD3, B: 0x99, A: 0xFF})
		case DayMissed:
			dc.SetColor(color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xFF})
		default:
			dc.SetColor(color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0x80})
		}
		dc.DrawCircle(x, 920, dotRadius)
		dc.Fill()
	}

	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("encode png: %w", err)
	}
	return buf, nil
}

func loadCardFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
