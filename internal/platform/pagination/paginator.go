package pagination

import (
	"net/url"
	"slices"
	"strconv"
)

// Result is one page of an ordered listing.
type Result[T any] struct {
	Items      []T
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Paginate slices one page out of the full ordered listing. The cursor's
// Value names the last entry of the previous page (resolved through key);
// a value that no longer appears in the listing starts over from the
// beginning, so handlers that want to reject stale cursors must check
// membership first. The Link header repeats the limit and any extra query
// parameters so clients keep their page shape when following it.
func Paginate[T any](
	entries []T,
	cursor Cursor,
	limit int,
	cursorType string,
	key func(T) string,
	baseURL string,
	query url.Values,
) Result[T] {
	start := 0
	if cursor.Value != "" {
		if i := slices.IndexFunc(entries, func(e T) bool { return key(e) == cursor.Value }); i >= 0 {
			start = i + 1
		}
	}
	end := min(start+limit, len(entries))
	page := entries[start:end]

	var next string
	if end < len(entries) && len(page) > 0 {
		next = Cursor{Type: cursorType, Value: key(page[len(page)-1])}.Encode()
	}

	// The previous page ends just before start; its cursor names the entry
	// one full page earlier, or the empty value for the first page.
	var prev string
	if start > 0 {
		value := ""
		if start > limit {
			value = key(entries[start-1-limit])
		}
		prev = Cursor{Type: cursorType, Value: value}.Encode()
	}

	q := cloneValues(query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return Result[T]{
		Items:      page,
		Total:      len(entries),
		LinkHeader: BuildLinkHeader(baseURL, q, next, prev),
		NextCursor: next,
		PrevCursor: prev,
	}
}
