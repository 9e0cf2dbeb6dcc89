// Package generate serves the portfolio generation operation.
package generate

import (
	"cmp"
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/forgefolio/forgefolio/internal/portfolio"
	analyticssvc "github.com/forgefolio/forgefolio/internal/service/analytics"
	"github.com/forgefolio/forgefolio/internal/service/generator"
	"github.com/forgefolio/forgefolio/internal/service/textgen"
	"github.com/forgefolio/forgefolio/internal/templates"
)

const (
	msgInvalidInput  = "Invalid input data"
	msgNotConfigured = "Groq API key not configured. Please set GROQ_API_KEY environment variable."
	msgRateLimited   = "Rate limit exceeded. Please try again later."
)

// Register wires the generation route into the provided API router.
func Register(api huma.API, gen *generator.Generator, tracker *analyticssvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-portfolio",
		Method:      http.MethodPost,
		Path:        "/generate",
		Summary:     "Generate a portfolio",
		Description: "Validates the submitted profile and returns structured portfolio content rendered with the selected template.",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
		profile, err := portfolio.ParseProfile(input.RawBody)
		if err != nil {
			return nil, huma.Error400BadRequest(msgInvalidInput, err)
		}

		result, err := gen.Generate(ctx, profile)
		if err != nil {
			return nil, mapServiceError(err)
		}

		tracker.TrackGeneration(ctx, trackedTemplateID(profile), profile.Profession, requestFeatures(profile))

		return &GenerateOutput{Body: GenerateData{
			Success: true,
			Content: *result,
		}}, nil
	})
}

func mapServiceError(err error) error {
	var upstreamErr *textgen.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.Kind == textgen.UpstreamErrorKindRateLimited {
			rateLimitErr := huma.Error429TooManyRequests(msgRateLimited)
			if upstreamErr.RetryAfter != "" {
				headers := make(http.Header)
				headers.Set("Retry-After", upstreamErr.RetryAfter)
				return huma.ErrorWithHeaders(rateLimitErr, headers)
			}
			return rateLimitErr
		}
		return huma.Error502BadGateway(err.Error())
	}

	if errors.Is(err, textgen.ErrNotConfigured) {
		return huma.Error500InternalServerError(msgNotConfigured)
	}
	return huma.Error502BadGateway(err.Error())
}

// trackedTemplateID reports the template id a generation is counted under:
// the requested id, not the one the profession classifier resolved.
func trackedTemplateID(p portfolio.Profile) string {
	return cmp.Or(p.TemplateID, templates.DefaultID)
}

func requestFeatures(p portfolio.Profile) []string {
	var features []string
	if p.TemplateID != "" && p.TemplateID != templates.DefaultID {
		features = append(features, analyticssvc.FeatureTemplateSelection)
	}
	if len(p.Skills) > 0 || len(p.Projects) > 0 {
		features = append(features, analyticssvc.FeatureCustomContent)
	}
	return features
}
