package templates

// TemplateGetInput identifies a template by id.
type TemplateGetInput struct {
	ID string `path:"id" doc:"Template identifier" example:"tech_modern"`
}
