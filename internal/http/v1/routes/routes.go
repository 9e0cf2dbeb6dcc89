package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	analyticshandler "github.com/forgefolio/forgefolio/internal/http/v1/analytics"
	"github.com/forgefolio/forgefolio/internal/http/v1/generate"
	"github.com/forgefolio/forgefolio/internal/http/v1/samples"
	"github.com/forgefolio/forgefolio/internal/http/v1/templates"
	"github.com/forgefolio/forgefolio/internal/platform/respond"
	analyticssvc "github.com/forgefolio/forgefolio/internal/service/analytics"
	"github.com/forgefolio/forgefolio/internal/service/generator"
)

// Register installs the error envelope and mounts every operation group on
// the API.
func Register(
	api huma.API,
	gen *generator.Generator,
	analyticsService *analyticssvc.Service,
) {
	respond.Install()

	prefix := apiPrefix(api)

	generate.Register(api, gen, analyticsService)
	templates.Register(api)
	samples.Register(api, analyticsService)
	analyticshandler.Register(api, analyticsService, prefix)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
