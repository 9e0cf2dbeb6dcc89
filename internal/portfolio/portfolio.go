package portfolio

import "github.com/forgefolio/forgefolio/internal/templates"

// Portfolio is the assembled generation result. Sections holds an entry for
// every name in Template.Sections, empty when the heading was absent from
// the raw text. Built fresh per request, never persisted.
type Portfolio struct {
	Template           templates.Template `json:"template"`
	Sections           map[string]string  `json:"sections"`
	Achievements       []string           `json:"achievements"`
	Testimonials       []Testimonial      `json:"testimonials"`
	Contact            Contact            `json:"contact"`
	Tagline            string             `json:"tagline,omitempty"`
	SummaryStyle       string             `json:"summary_style,omitempty"`
	AdditionalSections map[string]string  `json:"additional_sections,omitempty"`
	Education          string             `json:"education,omitempty"`
	RawContent         string             `json:"raw_content"`
}
