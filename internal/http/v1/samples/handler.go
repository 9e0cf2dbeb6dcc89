// Package samples serves the canned demo profile resources.
package samples

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	catalog "github.com/forgefolio/forgefolio/internal/samples"
	analyticssvc "github.com/forgefolio/forgefolio/internal/service/analytics"
)

// Register wires sample profile routes into the provided API router.
func Register(api huma.API, tracker *analyticssvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sample-profiles",
		Method:      http.MethodGet,
		Path:        "/sample-profiles",
		Summary:     "List sample profiles",
		Description: "Returns the demo profiles available for quick-fill, keyed by id.",
		Tags:        []string{"Samples"},
	}, func(ctx context.Context, _ *struct{}) (*SamplesListOutput, error) {
		tracker.TrackFeature(ctx, analyticssvc.FeatureSampleProfiles)

		return &SamplesListOutput{Body: SamplesListData{
			Success:  true,
			Profiles: catalog.All(),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-sample-profile",
		Method:      http.MethodGet,
		Path:        "/sample-profiles/{id}",
		Summary:     "Get a sample profile",
		Description: "Returns the demo profile with the given id.",
		Tags:        []string{"Samples"},
	}, func(_ context.Context, input *SampleGetInput) (*SampleGetOutput, error) {
		profile, ok := catalog.Lookup(input.ID)
		if !ok {
			return nil, huma.Error404NotFound("Sample profile not found")
		}
		return &SampleGetOutput{Body: SampleGetData{
			Success: true,
			Profile: profile,
		}}, nil
	})
}
