package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates a cursor that is not base64 or lacks the
// type separator.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor is a resumption point in an ordered listing. Type names the
// listing the cursor belongs to (for example "analytics-day") so a cursor
// handed to the wrong endpoint can be rejected; Value is the key of the
// last entry the client saw.
type Cursor struct {
	Type  string
	Value string
}

// Encode renders the cursor as an opaque URL-safe token.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Type + ":" + c.Value))
}

// DecodeCursor reverses Encode. An empty string decodes to the zero Cursor,
// meaning the listing starts from the beginning.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	typ, value, ok := strings.Cut(string(raw), ":")
	if !ok {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: typ, Value: value}, nil
}
