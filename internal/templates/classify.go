package templates

import "strings"

// classifierRules are tested in order; the first keyword hit wins. Matching
// is by substring on the lower-cased profession, so "Senior UI Designer"
// hits both "ui" and "designer".
var classifierRules = []struct {
	id       string
	keywords []string
}{
	{"creative_artist", []string{"artist", "designer", "creative", "graphic", "ui", "ux"}},
	{"business_executive", []string{"executive", "manager", "director", "ceo", "cfo", "business"}},
	{"academic_researcher", []string{"researcher", "scientist", "professor", "academic", "phd"}},
	{"freelancer_creative", []string{"freelancer", "consultant", "contractor", "independent"}},
}

// ForProfession classifies a profession string into a template identifier,
// returning DefaultID when no rule matches.
func ForProfession(profession string) string {
	p := strings.ToLower(profession)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.id
			}
		}
	}
	return DefaultID
}
