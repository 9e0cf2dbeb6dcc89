// Package generator runs the portfolio pipeline: resolve a template, produce
// raw text through a textgen.Service, split it into the template's sections,
// and merge in the enhancer's supplementary content.
package generator

import (
	"context"
	"fmt"

	"github.com/forgefolio/forgefolio/internal/enhance"
	"github.com/forgefolio/forgefolio/internal/portfolio"
	"github.com/forgefolio/forgefolio/internal/sections"
	"github.com/forgefolio/forgefolio/internal/service/textgen"
	"github.com/forgefolio/forgefolio/internal/templates"
)

// Generator assembles structured portfolios from validated profiles.
type Generator struct {
	textgen  textgen.Service
	enhancer *enhance.Enhancer
}

// New creates a Generator on top of the given text source and enhancer.
func New(svc textgen.Service, enhancer *enhance.Enhancer) *Generator {
	return &Generator{textgen: svc, enhancer: enhancer}
}

// ResolveTemplate picks the template for a profile: the explicit template_id
// when it names a known template, otherwise the profession classifier.
func ResolveTemplate(profile portfolio.Profile) templates.Template {
	if profile.TemplateID != "" {
		if tmpl, ok := templates.Lookup(profile.TemplateID); ok {
			return tmpl
		}
	}
	return templates.Get(templates.ForProfession(profile.Profession))
}

// Generate runs the full pipeline for one profile. Any text-generation
// failure is returned as a single generation error; nothing is retried.
func (g *Generator) Generate(ctx context.Context, profile portfolio.Profile) (*portfolio.Portfolio, error) {
	tmpl := ResolveTemplate(profile)

	raw, err := g.textgen.Generate(ctx, profile, tmpl)
	if err != nil {
		return nil, fmt.Errorf("generating portfolio: %w", err)
	}

	var custom portfolio.Contact
	if profile.Contact != nil {
		custom = *profile.Contact
	}
	content := enhance.ContentFor(tmpl, profile.Profession)

	return &portfolio.Portfolio{
		Template:           tmpl,
		Sections:           sections.Extract(raw, tmpl.Sections),
		Achievements:       g.enhancer.Achievements(),
		Testimonials:       g.enhancer.Testimonials(profile.Name),
		Contact:            g.enhancer.ContactInfo(profile.Name, custom),
		Tagline:            content.Tagline,
		SummaryStyle:       content.SummaryStyle,
		AdditionalSections: content.AdditionalSections,
		Education:          enhance.EducationText(profile.Education),
		RawContent:         raw,
	}, nil
}
