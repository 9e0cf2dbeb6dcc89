package samples

import (
	"github.com/forgefolio/forgefolio/internal/portfolio"
)

// SamplesListData is the body for the sample profile listing.
type SamplesListData struct {
	Success  bool                         `json:"success" doc:"Always true on success"`
	Profiles map[string]portfolio.Profile `json:"profiles" doc:"Demo profiles keyed by id"`
}

// SamplesListOutput wraps the sample profile listing response.
type SamplesListOutput struct {
	Body SamplesListData
}

// SampleGetData is the body for a single sample profile lookup.
type SampleGetData struct {
	Success bool              `json:"success" doc:"Always true on success"`
	Profile portfolio.Profile `json:"profile"`
}

// SampleGetOutput wraps a single sample profile response.
type SampleGetOutput struct {
	Body SampleGetData
}
