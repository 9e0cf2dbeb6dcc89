// Package analytics serves the usage statistics resources.
package analytics

import (
	"context"
	"net/http"
	"net/url"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	"github.com/forgefolio/forgefolio/internal/platform/pagination"
	analyticssvc "github.com/forgefolio/forgefolio/internal/service/analytics"
)

const (
	dailyCursorType = "analytics-day"

	msgLoadFailed = "Failed to load analytics"
)

// Register wires analytics routes into the provided API router.
func Register(api huma.API, svc *analyticssvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-analytics",
		Method:      http.MethodGet,
		Path:        "/analytics",
		Summary:     "Get usage statistics",
		Description: "Returns aggregate statistics about generated portfolios.",
		Tags:        []string{"Analytics"},
	}, func(ctx context.Context, _ *struct{}) (*StatsGetOutput, error) {
		stats, err := svc.Summary(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError(msgLoadFailed, err)
		}
		return &StatsGetOutput{Body: StatsGetData{
			Success: true,
			Stats:   stats,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-daily-generations",
		Method:      http.MethodGet,
		Path:        "/analytics/daily",
		Summary:     "List daily generation counts",
		Description: "Returns per-day generation counts, newest first. Use the cursor from the Link header to navigate between pages.",
		Tags:        []string{"Analytics"},
	}, func(ctx context.Context, input *DailyListInput) (*DailyListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}

		if cursor.Type != "" && cursor.Type != dailyCursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		days, err := svc.Daily(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError(msgLoadFailed, err)
		}

		if cursor.Value != "" && findDayIndex(days, cursor.Value) == -1 {
			return nil, huma.Error400BadRequest("cursor references unknown day")
		}

		result := pagination.Paginate(
			days,
			cursor,
			input.EffectiveLimit(),
			dailyCursorType,
			func(d analyticssvc.DayCount) string { return d.Date },
			prefix+"/analytics/daily",
			url.Values{},
		)

		return &DailyListOutput{
			Link: result.LinkHeader,
			Body: DailyListData{
				Success:    true,
				Days:       result.Items,
				NextCursor: result.NextCursor,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "track-feature",
		Method:      http.MethodPost,
		Path:        "/track",
		Summary:     "Track a feature usage",
		Description: "Records one anonymous usage of a UI feature.",
		Tags:        []string{"Analytics"},
	}, func(ctx context.Context, input *TrackInput) (*TrackOutput, error) {
		svc.TrackFeature(ctx, input.Body.Feature)
		return &TrackOutput{Body: TrackData{Success: true}}, nil
	})
}

func findDayIndex(days []analyticssvc.DayCount, date string) int {
	return slices.IndexFunc(days, func(d analyticssvc.DayCount) bool {
		return d.Date == date
	})
}
