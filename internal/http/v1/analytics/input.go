package analytics

import "github.com/forgefolio/forgefolio/internal/platform/pagination"

// DailyListInput defines query parameters for listing daily counts.
type DailyListInput struct {
	pagination.Params
}

// TrackBody names the feature being tracked.
type TrackBody struct {
	Feature string `json:"feature" required:"true" doc:"Feature identifier" example:"copy_to_clipboard" enum:"sample_profiles,template_selection,copy_to_clipboard,regenerate"`
}

// TrackInput is the request wrapper for feature tracking.
type TrackInput struct {
	Body TrackBody
}
