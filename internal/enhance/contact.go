package enhance

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/forgefolio/forgefolio/internal/portfolio"
)

// phoneFormats build one plausible number per dialing convention.
var phoneFormats = []func(e *Enhancer) string{
	func(e *Enhancer) string { // US
		return fmt.Sprintf("+1 (%d) %d-%d", e.between(200, 999), e.between(200, 999), e.between(1000, 9999))
	},
	func(e *Enhancer) string { // UK
		return fmt.Sprintf("+44 20 %d %d", e.between(7000, 7999), e.between(1000, 9999))
	},
	func(e *Enhancer) string { // Germany
		return fmt.Sprintf("+49 30 %d", e.between(10000000, 99999999))
	},
	func(e *Enhancer) string { // France
		return fmt.Sprintf("+33 1 %02d %02d %02d %02d", e.between(10, 99), e.between(0, 99), e.between(0, 99), e.between(0, 99))
	},
	func(e *Enhancer) string { // Spain
		return fmt.Sprintf("+34 6%02d %03d %03d", e.between(0, 99), e.between(0, 999), e.between(0, 999))
	},
	func(e *Enhancer) string { // Netherlands
		return fmt.Sprintf("+31 6 %08d", e.between(10000000, 99999999))
	},
	func(e *Enhancer) string { // India
		return fmt.Sprintf("+91 %d%04d %05d", e.between(7, 9), e.between(0, 9999), e.between(0, 99999))
	},
	func(e *Enhancer) string { // Australia
		return fmt.Sprintf("+61 4%02d %03d %03d", e.between(0, 99), e.between(0, 999), e.between(0, 999))
	},
	func(e *Enhancer) string { // Japan
		return fmt.Sprintf("+81 90-%04d-%04d", e.between(0, 9999), e.between(0, 9999))
	},
	func(e *Enhancer) string { // Brazil
		return fmt.Sprintf("+55 11 9%04d-%04d", e.between(0, 9999), e.between(0, 9999))
	},
}

// ContactInfo derives a full contact block from the name and merges in the
// custom overrides: a non-empty custom value always wins, field by field.
func (e *Enhancer) ContactInfo(name string, custom portfolio.Contact) portfolio.Contact {
	first, last := nameParts(name)
	generated := portfolio.Contact{
		Email:    first + "." + last + "@email.com",
		Phone:    phoneFormats[e.intn(len(phoneFormats))](e),
		LinkedIn: "linkedin.com/in/" + first + "-" + last,
		GitHub:   "github.com/" + first + last,
		Website:  first + last + ".com",
	}
	return portfolio.Contact{
		Email:    cmp.Or(custom.Email, generated.Email),
		Phone:    cmp.Or(custom.Phone, generated.Phone),
		LinkedIn: cmp.Or(custom.LinkedIn, generated.LinkedIn),
		GitHub:   cmp.Or(custom.GitHub, generated.GitHub),
		Website:  cmp.Or(custom.Website, generated.Website),
	}
}

// nameParts lower-cases the first and last name tokens, defaulting to
// "john"/"doe" for an empty name and "doe" for a single-token one.
func nameParts(name string) (string, string) {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return "john", "doe"
	case 1:
		return strings.ToLower(tokens[0]), "doe"
	}
	return strings.ToLower(tokens[0]), strings.ToLower(tokens[len(tokens)-1])
}
