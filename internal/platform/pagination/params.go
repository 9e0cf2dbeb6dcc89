package pagination

// Bounds enforced by the schema on every paginated listing. The struct tags
// below must stay in sync with these values.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is embedded into the input struct of cursor-paginated operations.
// Huma validates the bounds; EffectiveLimit resolves the default.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from previous response"`
	Limit  int    `query:"limit"  doc:"Maximum items per page"                          default:"20" minimum:"1" maximum:"100"`
}

// EffectiveLimit returns the requested page size, or DefaultLimit when the
// query left it unset.
func (p Params) EffectiveLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	return p.Limit
}
