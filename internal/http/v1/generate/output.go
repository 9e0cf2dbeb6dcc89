package generate

import "github.com/forgefolio/forgefolio/internal/portfolio"

// GenerateData is the response body for a successful generation.
type GenerateData struct {
	Success bool                `json:"success" doc:"Always true on success"          example:"true"`
	Content portfolio.Portfolio `json:"content" doc:"Assembled portfolio content"`
}

// GenerateOutput is the response wrapper for POST /generate.
type GenerateOutput struct {
	Body GenerateData
}
