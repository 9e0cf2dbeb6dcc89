// Package analytics tracks anonymous usage counters: generation totals,
// per-template and per-profession tallies, daily activity, and feature
// usage. Counters never contain profile content.
package analytics

import (
	"maps"
	"time"

	"github.com/forgefolio/forgefolio/internal/platform/timeutil"
)

// Feature names tracked in the features_used map. Increments for any
// other name are ignored.
const (
	FeatureSampleProfiles    = "sample_profiles"
	FeatureTemplateSelection = "template_selection"
	FeatureCopyToClipboard   = "copy_to_clipboard"
	FeatureRegenerate        = "regenerate"
)

// FeatureCustomContent is reported by generation requests that carry skills
// or projects. It is not seeded into features_used, so stores drop it.
const FeatureCustomContent = "custom_content"

// KnownFeatures lists the feature counters seeded into fresh Counters.
var KnownFeatures = []string{
	FeatureSampleProfiles,
	FeatureTemplateSelection,
	FeatureCopyToClipboard,
	FeatureRegenerate,
}

// Counters is the persisted analytics document.
type Counters struct {
	TotalGenerations int            `json:"total_generations"`
	TemplatesUsed    map[string]int `json:"templates_used"`
	Professions      map[string]int `json:"professions"`
	DailyStats       map[string]int `json:"daily_stats"`
	FeaturesUsed     map[string]int `json:"features_used"`
	StartDate        timeutil.Time  `json:"start_date"`
	LastUpdated      timeutil.Time  `json:"last_updated"`
}

// NewCounters returns a zeroed document with the known feature counters
// pre-seeded and both timestamps set to now.
func NewCounters(now time.Time) Counters {
	c := Counters{
		TemplatesUsed: map[string]int{},
		Professions:   map[string]int{},
		DailyStats:    map[string]int{},
		FeaturesUsed:  map[string]int{},
		StartDate:     timeutil.NewTime(now),
		LastUpdated:   timeutil.NewTime(now),
	}
	for _, f := range KnownFeatures {
		c.FeaturesUsed[f] = 0
	}
	return c
}

// Event is a single tracked action. A non-empty TemplateID marks a
// portfolio generation, which bumps the total, template, profession, and
// daily counters. Features increment only counters already present.
type Event struct {
	TemplateID string
	Profession string
	Features   []string
}

// apply folds ev into the counters as of now.
func (c *Counters) apply(ev Event, now time.Time) {
	if ev.TemplateID != "" {
		c.TotalGenerations++
		c.TemplatesUsed[ev.TemplateID]++
		c.Professions[ev.Profession]++
		c.DailyStats[timeutil.DayKey(now)]++
	}
	for _, f := range ev.Features {
		if _, ok := c.FeaturesUsed[f]; ok {
			c.FeaturesUsed[f]++
		}
	}
	c.LastUpdated = timeutil.NewTime(now)
}

// normalize repairs a document loaded from storage: nil maps are
// allocated, missing feature seeds restored, and zero timestamps set to now.
func (c *Counters) normalize(now time.Time) {
	if c.TemplatesUsed == nil {
		c.TemplatesUsed = map[string]int{}
	}
	if c.Professions == nil {
		c.Professions = map[string]int{}
	}
	if c.DailyStats == nil {
		c.DailyStats = map[string]int{}
	}
	if c.FeaturesUsed == nil {
		c.FeaturesUsed = map[string]int{}
	}
	for _, f := range KnownFeatures {
		if _, ok := c.FeaturesUsed[f]; !ok {
			c.FeaturesUsed[f] = 0
		}
	}
	if c.StartDate.IsZero() {
		c.StartDate = timeutil.NewTime(now)
	}
	if c.LastUpdated.IsZero() {
		c.LastUpdated = timeutil.NewTime(now)
	}
}

// clone returns a copy with its own maps.
func (c Counters) clone() Counters {
	out := c
	out.TemplatesUsed = maps.Clone(c.TemplatesUsed)
	out.Professions = maps.Clone(c.Professions)
	out.DailyStats = maps.Clone(c.DailyStats)
	out.FeaturesUsed = maps.Clone(c.FeaturesUsed)
	return out
}
