// Package sections parses generated portfolio text into named sections by
// scanning heading markers. The synonym table maps display headings to the
// canonical section identifiers templates use.
package sections

import (
	"iter"
	"strings"
)

// Section is one scanned (heading, body) pair.
type Section struct {
	Heading string
	Body    string
}

// Scan yields the (heading, body) pairs of text in document order. A body
// runs from its heading line to the next heading or end of text, trimmed.
// Text before the first heading is dropped.
func Scan(text string) iter.Seq[Section] {
	return func(yield func(Section) bool) {
		var heading string
		var body strings.Builder
		flush := func() bool {
			if heading == "" {
				body.Reset()
				return true
			}
			sec := Section{Heading: heading, Body: strings.TrimSpace(body.String())}
			heading = ""
			body.Reset()
			return yield(sec)
		}
		for line := range strings.Lines(text) {
			if h, ok := headingOf(line); ok {
				if !flush() {
					return
				}
				heading = h
				continue
			}
			if heading != "" {
				body.WriteString(line)
			}
		}
		flush()
	}
}

// headingOf recognizes a line that is entirely a "**Heading**" bold span or
// an ATX "# Heading", tolerating a trailing colon.
func headingOf(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if h, ok := strings.CutPrefix(s, "#"); ok {
		h = strings.TrimLeft(h, "#")
		h = strings.TrimRight(strings.TrimSpace(h), "#")
		return trimHeading(h)
	}
	if inner, ok := strings.CutPrefix(s, "**"); ok {
		if h, ok := strings.CutSuffix(inner, "**"); ok {
			return trimHeading(h)
		}
	}
	return "", false
}

func trimHeading(h string) (string, bool) {
	h = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(h), ":"))
	return h, h != ""
}
