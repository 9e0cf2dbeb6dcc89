package textgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgefolio/forgefolio/internal/portfolio"
	"github.com/forgefolio/forgefolio/internal/templates"
)

// Service errors
var (
	ErrNotConfigured   = errors.New("groq api key not configured")
	ErrAuth            = errors.New("groq authentication failed")
	ErrRateLimited     = errors.New("groq rate limit exceeded")
	ErrUnavailable     = errors.New("groq service unavailable")
	ErrUpstream        = errors.New("groq upstream error")
	ErrEmptyCompletion = errors.New("groq returned an empty completion")
)

// UpstreamErrorKind classifies Groq upstream failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindAuth        UpstreamErrorKind = "auth"
	UpstreamErrorKindRateLimited UpstreamErrorKind = "rate_limited"
	UpstreamErrorKindUnavailable UpstreamErrorKind = "unavailable"
	UpstreamErrorKindUpstream    UpstreamErrorKind = "upstream"
)

// UpstreamError includes Groq response metadata for error mapping.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	Status     int
	RetryAfter string
	cause      error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "groq upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("groq upstream error (kind=%s status=%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("groq upstream error (kind=%s status=%d): %v", e.Kind, e.Status, e.cause)
}

// Unwrap exposes the cause so callers can match sentinels with errors.Is.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Service produces raw portfolio text for a profile, written to a template's
// style rules. The Groq-backed Client and the local Synthesizer both
// implement it; which one runs depends on whether an API key is configured.
type Service interface {
	Generate(ctx context.Context, profile portfolio.Profile, tmpl templates.Template) (string, error)
}

// Unconfigured is the Service wired when neither an API key nor demo mode is
// set. Every generation attempt fails with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, portfolio.Profile, templates.Template) (string, error) {
	return "", ErrNotConfigured
}

var _ Service = Unconfigured{}
