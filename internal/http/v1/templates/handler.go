// Package templates serves the template catalog resources.
package templates

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	catalog "github.com/forgefolio/forgefolio/internal/templates"
)

// Register wires template routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-templates",
		Method:      http.MethodGet,
		Path:        "/templates",
		Summary:     "List portfolio templates",
		Description: "Returns every available portfolio template keyed by id.",
		Tags:        []string{"Templates"},
	}, func(_ context.Context, _ *struct{}) (*TemplatesListOutput, error) {
		all := catalog.All()
		byID := make(map[string]catalog.Template, len(all))
		for _, tmpl := range all {
			byID[tmpl.ID] = tmpl
		}
		return &TemplatesListOutput{Body: TemplatesListData{
			Success:   true,
			Templates: byID,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-template",
		Method:      http.MethodGet,
		Path:        "/templates/{id}",
		Summary:     "Get a portfolio template",
		Description: "Returns the template with the given id.",
		Tags:        []string{"Templates"},
	}, func(_ context.Context, input *TemplateGetInput) (*TemplateGetOutput, error) {
		tmpl, ok := catalog.Lookup(input.ID)
		if !ok {
			return nil, huma.Error404NotFound("Template not found")
		}
		return &TemplateGetOutput{Body: TemplateGetData{
			Success:  true,
			Template: tmpl,
		}}, nil
	})
}
