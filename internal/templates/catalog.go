// Package templates holds the static portfolio template catalog and the
// profession classifier that picks a template when none is requested.
package templates

import "math/rand"

// Style selects the synthetic-narrative variant and the additional-sections
// content produced for a template.
type Style string

const (
	StyleModern    Style = "modern"
	StyleCreative  Style = "creative"
	StyleCorporate Style = "corporate"
	StyleAcademic  Style = "academic"
	StyleFreelance Style = "freelance"
)

// DefaultID is the template used when no identifier is given and the
// profession matches no classifier rule.
const DefaultID = "tech_modern"

// Template is one entry of the catalog. Tone, focus and format feed the
// generation prompt; Sections lists the section names the generated
// portfolio must carry, in display order.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Style       Style    `json:"style"`
	Tone        string   `json:"tone"`
	Focus       string   `json:"focus"`
	Format      string   `json:"format"`
	Sections    []string `json:"sections"`
}

var catalog = map[string]Template{
	"tech_modern": {
		ID:          "tech_modern",
		Name:        "Modern Tech Professional",
		Description: "Clean, modern design perfect for software developers and tech professionals",
		Style:       StyleModern,
		Tone:        "confident and precise",
		Focus:       "technical depth and measurable impact",
		Format:      "concise sections with bullet points",
		Sections:    []string{"summary", "skills", "experience", "projects", "achievements", "contact"},
	},
	"creative_artist": {
		ID:          "creative_artist",
		Name:        "Creative Artist",
		Description: "Bold, creative design for artists, designers, and creative professionals",
		Style:       StyleCreative,
		Tone:        "expressive and bold",
		Focus:       "visual storytelling and originality",
		Format:      "flowing narrative with vivid highlights",
		Sections:    []string{"summary", "projects", "skills", "experience", "testimonials", "contact"},
	},
	"business_executive": {
		ID:          "business_executive",
		Name:        "Business Executive",
		Description: "Professional, corporate design for executives and business leaders",
		Style:       StyleCorporate,
		Tone:        "authoritative and polished",
		Focus:       "leadership outcomes and business value",
		Format:      "formal sections with quantified results",
		Sections:    []string{"summary", "experience", "leadership", "achievements", "education", "contact"},
	},
	"academic_researcher": {
		ID:          "academic_researcher",
		Name:        "Academic Researcher",
		Description: "Scholarly design for researchers, academics, and PhD candidates",
		Style:       StyleAcademic,
		Tone:        "scholarly and measured",
		Focus:       "research contributions and rigor",
		Format:      "structured sections with citations and awards",
		Sections:    []string{"summary", "research", "publications", "education", "awards", "contact"},
	},
	"freelancer_creative": {
		ID:          "freelancer_creative",
		Name:        "Freelancer Creative",
		Description: "Dynamic design for freelancers and independent contractors",
		Style:       StyleFreelance,
		Tone:        "personable and energetic",
		Focus:       "client outcomes and versatility",
		Format:      "service-oriented sections with testimonials",
		Sections:    []string{"summary", "services", "projects", "testimonials", "skills", "contact"},
	},
}

// order fixes the listing order for All and Random.
var order = []string{
	"tech_modern",
	"creative_artist",
	"business_executive",
	"academic_researcher",
	"freelancer_creative",
}

// Get returns the named template, falling back to the tech_modern default
// for unknown identifiers. It never fails.
func Get(id string) Template {
	if t, ok := catalog[id]; ok {
		return t
	}
	return catalog[DefaultID]
}

// Lookup returns the named template and whether it exists.
func Lookup(id string) (Template, bool) {
	t, ok := catalog[id]
	return t, ok
}

// All returns every template in catalog order.
func All() []Template {
	out := make([]Template, 0, len(order))
	for _, id := range order {
		out = append(out, catalog[id])
	}
	return out
}

// Random picks a template uniformly using the given source.
func Random(rng *rand.Rand) Template {
	return catalog[order[rng.Intn(len(order))]]
}
