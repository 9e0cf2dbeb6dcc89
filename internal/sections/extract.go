package sections

import "strings"

// synonyms maps each canonical section id to the headings that select it,
// primary display heading first. Lookup is case-insensitive.
var synonyms = map[string][]string{
	"summary":      {"Professional Summary", "Summary", "About", "About Me", "Overview"},
	"skills":       {"Technical Skills", "Skills", "Core Competencies"},
	"experience":   {"Professional Experience", "Experience", "Work Experience"},
	"projects":     {"Key Projects", "Projects", "Portfolio"},
	"achievements": {"Achievements", "Professional Achievements"},
	"testimonials": {"Testimonials", "Client Testimonials"},
	"leadership":   {"Leadership", "Leadership Experience"},
	"education":    {"Education", "Academic Background"},
	"research":     {"Research", "Research Experience", "Research Interests"},
	"publications": {"Publications", "Selected Publications"},
	"awards":       {"Awards", "Awards and Honors", "Honors and Awards"},
	"services":     {"Services", "Services Offered"},
	"contact":      {"Contact", "Contact Information", "Get in Touch"},
	"conclusion":   {"Conclusion", "Closing"},
}

var canonicalByHeading = func() map[string]string {
	m := make(map[string]string)
	for id, names := range synonyms {
		for _, n := range names {
			m[strings.ToLower(n)] = id
		}
	}
	return m
}()

// Canonical resolves a display heading to its canonical section id.
func Canonical(heading string) (string, bool) {
	id, ok := canonicalByHeading[strings.ToLower(strings.TrimSpace(heading))]
	return id, ok
}

// Heading returns the primary display heading for a canonical section id,
// or the id unchanged when it has no synonym entry.
func Heading(id string) string {
	if names, ok := synonyms[id]; ok {
		return names[0]
	}
	return id
}

// Extract fills one entry per required section id from the first scanned
// heading resolving to it. Missing sections yield empty strings; Extract
// never fails, whatever the text looks like.
func Extract(text string, required []string) map[string]string {
	out := make(map[string]string, len(required))
	for _, id := range required {
		out[id] = ""
	}
	filled := make(map[string]bool, len(required))
	for sec := range Scan(text) {
		id, ok := Canonical(sec.Heading)
		if !ok {
			continue
		}
		if _, want := out[id]; !want || filled[id] {
			continue
		}
		out[id] = sec.Body
		filled[id] = true
		if len(filled) == len(out) {
			break
		}
	}
	return out
}
