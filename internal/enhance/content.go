package enhance

import (
	"fmt"

	"github.com/forgefolio/forgefolio/internal/templates"
)

// TemplateContent is the template-specific flourish block merged into a
// generated portfolio.
type TemplateContent struct {
	Tagline            string            `json:"tagline"`
	SummaryStyle       string            `json:"summary_style"`
	AdditionalSections map[string]string `json:"additional_sections,omitempty"`
}

// ContentFor returns the flourish block for a template's style, interpolating
// the profession into the tagline. Unrecognized styles get a generic tagline
// and no additional sections.
func ContentFor(tmpl templates.Template, profession string) TemplateContent {
	switch tmpl.Style {
	case templates.StyleModern:
		return TemplateContent{
			Tagline:      fmt.Sprintf("Innovative %s building scalable solutions with modern technology", profession),
			SummaryStyle: "clean and results-driven",
			AdditionalSections: map[string]string{
				"tech_stack":  "Comfortable across the stack, from infrastructure to user interface",
				"open_source": "Active contributor to open source and developer communities",
			},
		}
	case templates.StyleCreative:
		return TemplateContent{
			Tagline:      fmt.Sprintf("Visionary %s turning bold ideas into memorable visuals", profession),
			SummaryStyle: "expressive and story-driven",
			AdditionalSections: map[string]string{
				"artistic_vision": "Signature style blending color, typography, and motion",
				"exhibitions":     "Work featured in galleries, campaigns, and digital showcases",
			},
		}
	case templates.StyleCorporate:
		return TemplateContent{
			Tagline:      fmt.Sprintf("Strategic %s driving growth and operational excellence", profession),
			SummaryStyle: "polished and outcome-focused",
			AdditionalSections: map[string]string{
				"leadership_philosophy": "Leads with clarity, accountability, and measurable goals",
				"board_experience":      "Trusted advisor to boards and executive committees",
			},
		}
	case templates.StyleAcademic:
		return TemplateContent{
			Tagline:      fmt.Sprintf("Dedicated %s advancing knowledge through rigorous research", profession),
			SummaryStyle: "scholarly and precise",
			AdditionalSections: map[string]string{
				"research_interests": "Published across peer-reviewed journals and conference proceedings",
				"teaching":           "Mentor to graduate students and early-career researchers",
				"grants":             "Secured competitive funding for multi-year research programs",
			},
		}
	case templates.StyleFreelance:
		return TemplateContent{
			Tagline:      fmt.Sprintf("Versatile %s delivering standout work for every client", profession),
			SummaryStyle: "personable and client-focused",
			AdditionalSections: map[string]string{
				"availability": "Open to new projects and collaborations",
				"process":      "Transparent process from first brief to final delivery",
			},
		}
	}
	return TemplateContent{
		Tagline:      fmt.Sprintf("Accomplished %s committed to quality and impact", profession),
		SummaryStyle: "professional",
	}
}
