package generate

// GenerateInput carries the raw profile payload. Absence rules (null, empty
// strings, and empty lists all meaning "not provided") live in
// portfolio.ParseProfile rather than schema tags, so the body is taken raw.
type GenerateInput struct {
	RawBody []byte `contentType:"application/json"`
}
