package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/forgefolio/forgefolio/internal/enhance"
	"github.com/forgefolio/forgefolio/internal/platform/logging"
	"github.com/forgefolio/forgefolio/internal/portfolio"
	"github.com/forgefolio/forgefolio/internal/templates"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"
	defaultTimeout = 60 * time.Second
	userAgent      = "forgefolio/1.0"

	completionsPath = "/chat/completions"
	temperature     = 0.7
	maxTokens       = 4000
	pingMaxTokens   = 10
)

// Client calls the Groq OpenAI-compatible chat completions API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default Groq API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithModel overrides the default completion model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a Groq client. An API key is required; generation without
// one runs through the local Synthesizer instead.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      defaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Groq wire format (OpenAI-compatible chat completions)
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type chatErrorResponse struct {
	Error chatErrorDetail `json:"error"`
}

// Generate requests portfolio copy from Groq using the template's style rules.
func (c *Client) Generate(ctx context.Context, profile portfolio.Profile, tmpl templates.Template) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage(tmpl)},
			{Role: "user", Content: generationPrompt(profile, tmpl)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	resp, err := c.doRequest(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("requesting completion: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.decodeCompletion(ctx, resp)
}

// Ping sends a minimal one-message completion to verify connectivity and
// credentials.
func (c *Client) Ping(ctx context.Context) error {
	payload := chatRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: "Hello"}},
		MaxTokens: pingMaxTokens,
	}
	resp, err := c.doRequest(ctx, payload)
	if err != nil {
		return fmt.Errorf("pinging groq: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(ctx, resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) doRequest(ctx context.Context, payload chatRequest) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.httpClient.Do(req)
}

func (c *Client) decodeCompletion(ctx context.Context, resp *http.Response) (string, error) {
	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(ctx, resp)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding groq response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

func (c *Client) statusError(ctx context.Context, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return upstreamErrorFromResponse(resp, UpstreamErrorKindAuth, causeFromBody(resp, ErrAuth))
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logRateLimited(ctx, resp)
		return upstreamErrorFromResponse(resp, UpstreamErrorKindRateLimited, causeFromBody(resp, ErrRateLimited))
	case resp.StatusCode >= http.StatusInternalServerError:
		return upstreamErrorFromResponse(resp, UpstreamErrorKindUnavailable, causeFromBody(resp, ErrUnavailable))
	default:
		return upstreamErrorFromResponse(resp, UpstreamErrorKindUpstream, causeFromBody(resp, ErrUpstream))
	}
}

// causeFromBody attaches the Groq error message to the sentinel when the
// response carries the OpenAI-style error envelope.
func causeFromBody(resp *http.Response, sentinel error) error {
	var decoded chatErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&decoded); err == nil && decoded.Error.Message != "" {
		return fmt.Errorf("%w: %s", sentinel, decoded.Error.Message)
	}
	return sentinel
}

func upstreamErrorFromResponse(resp *http.Response, kind UpstreamErrorKind, cause error) *UpstreamError {
	return &UpstreamError{
		Kind:       kind,
		Status:     resp.StatusCode,
		RetryAfter: strings.TrimSpace(resp.Header.Get("Retry-After")),
		cause:      cause,
	}
}

func (c *Client) logRateLimited(ctx context.Context, resp *http.Response) {
	logging.LogWarn(ctx, "groq rate limited",
		zap.Int("status", resp.StatusCode),
		zap.String("retry_after", resp.Header.Get("Retry-After")),
	)
}

func systemMessage(tmpl templates.Template) string {
	return fmt.Sprintf("You are a professional portfolio generator creating a %s portfolio. "+
		"Create compelling, well-structured content that showcases the user's skills and experience effectively. "+
		"Use the %s style: %s tone, focused on %s, formatted as %s.",
		tmpl.Name, tmpl.Style, tmpl.Tone, tmpl.Focus, tmpl.Format)
}

func generationPrompt(p portfolio.Profile, tmpl templates.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a professional %s portfolio for the following person:\n\n", tmpl.Name)
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Profession: %s\n", p.Profession)
	fmt.Fprintf(&b, "Experience: %s\n", p.Experience)
	fmt.Fprintf(&b, "Skills: %s\n", listOrNotSpecified(p.Skills))
	fmt.Fprintf(&b, "Projects: %s\n", listOrNotSpecified(p.Projects))
	if edu := enhance.EducationText(p.Education); edu != "" {
		fmt.Fprintf(&b, "Education:\n%s\n", edu)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Template Style: %s\n", tmpl.Style)
	fmt.Fprintf(&b, "Tone: %s\n", tmpl.Tone)
	fmt.Fprintf(&b, "Focus: %s\n", tmpl.Focus)
	fmt.Fprintf(&b, "Format: %s\n", tmpl.Format)
	fmt.Fprintf(&b, "Required Sections: %s\n\n", strings.Join(tmpl.Sections, ", "))
	b.WriteString("Please generate a comprehensive portfolio that includes:\n")
	b.WriteString("1. A compelling professional summary\n")
	b.WriteString("2. Detailed skills section with technical and soft skills\n")
	b.WriteString("3. Professional experience with quantifiable achievements\n")
	b.WriteString("4. Key projects with impact descriptions\n")
	b.WriteString("5. Professional achievements and awards\n")
	b.WriteString("6. Client testimonials (if applicable)\n")
	b.WriteString("7. Contact information\n")
	b.WriteString("8. A strong professional conclusion\n\n")
	fmt.Fprintf(&b, "Make the content engaging, professional, and tailored to the %s style, ", tmpl.Style)
	b.WriteString("clearly distinct from portfolios written in the other styles.\n")
	b.WriteString("Start every section with its heading in bold, for example **Professional Summary**.\n")
	b.WriteString("Use proper formatting with clear sections, bullet points, and professional language.\n")
	b.WriteString("Include specific metrics and achievements where possible.")
	return b.String()
}

func listOrNotSpecified(items []string) string {
	if len(items) == 0 {
		return "Not specified"
	}
	return strings.Join(items, ", ")
}

// Compile-time interface check
var _ Service = (*Client)(nil)
