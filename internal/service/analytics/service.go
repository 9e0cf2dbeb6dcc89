package analytics

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/forgefolio/forgefolio/internal/platform/logging"
)

// Store persists the usage counters.
type Store interface {
	// Load returns the current counters, initializing fresh ones when
	// nothing is stored yet.
	Load(ctx context.Context) (Counters, error)
	// IncrementAndSave folds the event into the stored counters.
	IncrementAndSave(ctx context.Context, ev Event) error
}

// Service derives summaries from a Store and absorbs tracking failures so
// they never fail the surrounding request.
type Service struct {
	store Store
}

// NewService creates a Service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// TrackGeneration records one portfolio generation. Failures are logged
// and swallowed.
func (s *Service) TrackGeneration(ctx context.Context, templateID, profession string, features []string) {
	ev := Event{TemplateID: templateID, Profession: profession, Features: features}
	if err := s.store.IncrementAndSave(ctx, ev); err != nil {
		logging.LogError(ctx, "failed to track generation", err,
			zap.String("template_id", templateID))
	}
}

// TrackFeature records one feature usage. Failures are logged and swallowed.
func (s *Service) TrackFeature(ctx context.Context, feature string) {
	if err := s.store.IncrementAndSave(ctx, Event{Features: []string{feature}}); err != nil {
		logging.LogError(ctx, "failed to track feature", err,
			zap.String("feature", feature))
	}
}

// Summary derives the public statistics block from the stored counters.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("loading analytics counters: %w", err)
	}
	return Summarize(c, time.Now()), nil
}

// DayCount is one day of generation activity.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Daily returns per-day generation counts, newest first.
func (s *Service) Daily(ctx context.Context) ([]DayCount, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading analytics counters: %w", err)
	}
	days := make([]DayCount, 0, len(c.DailyStats))
	for date, count := range c.DailyStats {
		days = append(days, DayCount{Date: date, Count: count})
	}
	slices.SortFunc(days, func(a, b DayCount) int {
		return strings.Compare(b.Date, a.Date)
	})
	return days, nil
}
