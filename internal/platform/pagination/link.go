package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader renders an RFC 8288 Link header pointing at the next and
// previous pages. Query parameters already on the listing (limit, filters)
// are carried into each link so following it keeps the caller's page shape.
func BuildLinkHeader(baseURL string, query url.Values, nextCursor, prevCursor string) string {
	links := make([]string, 0, 2)
	if nextCursor != "" {
		links = append(links, pageLink(baseURL, query, nextCursor, "next"))
	}
	if prevCursor != "" {
		links = append(links, pageLink(baseURL, query, prevCursor, "prev"))
	}
	return strings.Join(links, ", ")
}

func pageLink(baseURL string, query url.Values, cursor, rel string) string {
	q := cloneValues(query)
	q.Set("cursor", cursor)
	return fmt.Sprintf("<%s?%s>; rel=%q", baseURL, q.Encode(), rel)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
