package analytics

import (
	"strings"
	"time"

	"github.com/forgefolio/forgefolio/internal/templates"
)

// Defaults shown before any activity has been recorded.
const (
	defaultTemplateName = "Modern Tech"
	defaultProfession   = "Software Developer"
	defaultFeature      = "Template Selection"
)

// Summary is the derived statistics block served by the analytics endpoint.
type Summary struct {
	TotalPortfoliosGenerated int    `json:"total_portfolios_generated"`
	MostPopularTemplate      string `json:"most_popular_template"`
	MostPopularProfession    string `json:"most_popular_profession"`
	TemplatesAvailable       int    `json:"templates_available"`
	ProfessionsServed        int    `json:"professions_served"`
	FeaturesMostUsed         string `json:"features_most_used"`
	DailyGenerations         int    `json:"daily_generations"`
	UptimeDays               int    `json:"uptime_days"`
}

// Summarize derives the summary from counters as of now. The winning
// template id is resolved to its catalog display name.
func Summarize(c Counters, now time.Time) Summary {
	s := Summary{
		TotalPortfoliosGenerated: c.TotalGenerations,
		MostPopularTemplate:      defaultTemplateName,
		MostPopularProfession:    defaultProfession,
		TemplatesAvailable:       len(c.TemplatesUsed),
		ProfessionsServed:        len(c.Professions),
		FeaturesMostUsed:         defaultFeature,
		UptimeDays:               uptimeDays(c.StartDate.Time, now),
	}
	if id, ok := mostCommon(c.TemplatesUsed); ok {
		s.MostPopularTemplate = templates.Get(id).Name
	}
	if p, ok := mostCommon(c.Professions); ok {
		s.MostPopularProfession = p
	}
	if f, ok := mostCommon(c.FeaturesUsed); ok {
		s.FeaturesMostUsed = humanizeFeature(f)
	}
	for _, count := range c.DailyStats {
		s.DailyGenerations += count
	}
	return s
}

// mostCommon returns the key with the highest count, preferring the
// lexicographically smallest key on ties. ok is false when no counter is
// positive.
func mostCommon(m map[string]int) (string, bool) {
	best, bestCount := "", 0
	for k, v := range m {
		if v > bestCount || (v == bestCount && v > 0 && k < best) {
			best, bestCount = k, v
		}
	}
	return best, bestCount > 0
}

// uptimeDays counts whole days from start to now, plus one so a fresh
// deployment reports one day.
func uptimeDays(start, now time.Time) int {
	if start.IsZero() {
		return 1
	}
	days := int(now.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days + 1
}

// humanizeFeature turns a snake_case feature name into display words,
// e.g. "copy_to_clipboard" becomes "Copy To Clipboard".
func humanizeFeature(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
