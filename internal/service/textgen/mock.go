package textgen

import (
	"context"

	"github.com/forgefolio/forgefolio/internal/portfolio"
	"github.com/forgefolio/forgefolio/internal/templates"
)

// MockTextGenService implements Service for unit tests with canned output.
type MockTextGenService struct {
	Content string
	Err     error
	Calls   []MockGenerateCall
}

// MockGenerateCall records one Generate invocation.
type MockGenerateCall struct {
	Profile  portfolio.Profile
	Template templates.Template
}

// NewMockTextGenService creates a mock that returns the given content.
func NewMockTextGenService(content string) *MockTextGenService {
	return &MockTextGenService{Content: content}
}

func (m *MockTextGenService) Generate(_ context.Context, profile portfolio.Profile, tmpl templates.Template) (string, error) {
	m.Calls = append(m.Calls, MockGenerateCall{Profile: profile, Template: tmpl})
	if m.Err != nil {
		return "", m.Err
	}
	return m.Content, nil
}

// Compile-time interface check
var _ Service = (*MockTextGenService)(nil)
