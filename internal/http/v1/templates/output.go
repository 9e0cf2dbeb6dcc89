package templates

import (
	catalog "github.com/forgefolio/forgefolio/internal/templates"
)

// TemplatesListData is the body for the template catalog listing.
type TemplatesListData struct {
	Success   bool                        `json:"success" doc:"Always true on success"`
	Templates map[string]catalog.Template `json:"templates" doc:"Available templates keyed by id"`
}

// TemplatesListOutput wraps the catalog listing response.
type TemplatesListOutput struct {
	Body TemplatesListData
}

// TemplateGetData is the body for a single template lookup.
type TemplateGetData struct {
	Success  bool             `json:"success" doc:"Always true on success"`
	Template catalog.Template `json:"template"`
}

// TemplateGetOutput wraps a single template response.
type TemplateGetOutput struct {
	Body TemplateGetData
}
