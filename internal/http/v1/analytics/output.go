package analytics

import (
	analyticssvc "github.com/forgefolio/forgefolio/internal/service/analytics"
)

// StatsGetData is the body for the aggregate statistics view.
type StatsGetData struct {
	Success bool                 `json:"success" doc:"Always true on success"`
	Stats   analyticssvc.Summary `json:"stats"`
}

// StatsGetOutput wraps the aggregate statistics response.
type StatsGetOutput struct {
	Body StatsGetData
}

// DailyListData is the body for the daily counts listing.
type DailyListData struct {
	Success    bool                    `json:"success" doc:"Always true on success"`
	Days       []analyticssvc.DayCount `json:"days" doc:"Per-day generation counts, newest first"`
	NextCursor string                  `json:"next_cursor,omitempty" doc:"Cursor for the next page, if any"`
}

// DailyListOutput is the response wrapper with pagination Link header.
type DailyListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body DailyListData
}

// TrackData is the body acknowledging a tracked feature.
type TrackData struct {
	Success bool `json:"success" doc:"Always true on success"`
}

// TrackOutput wraps the feature tracking response.
type TrackOutput struct {
	Body TrackData
}
