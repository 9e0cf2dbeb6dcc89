package generate

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/forgefolio/forgefolio/internal/enhance"
	applog "github.com/forgefolio/forgefolio/internal/platform/logging"
	appmiddleware "github.com/forgefolio/forgefolio/internal/platform/middleware"
	"github.com/forgefolio/forgefolio/internal/platform/respond"
	analyticssvc "github.com/forgefolio/forgefolio/internal/service/analytics"
	"github.com/forgefolio/forgefolio/internal/service/generator"
	"github.com/forgefolio/forgefolio/internal/service/textgen"
)

const mockContent = "About Me\nA seasoned professional with a track record of delivery.\n\nSkills & Expertise\nGo, distributed systems."

func newTestRouter(svc textgen.Service) (chi.Router, *analyticssvc.MemoryStore) {
	respond.Install()

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("GenerateTest", "test"))

	gen := generator.New(svc, enhance.New(rand.New(rand.NewSource(1))))
	store := analyticssvc.NewMemoryStore()

	Register(api, gen, analyticssvc.NewService(store))
	return router, store
}

func postGenerate(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(chimiddleware.RequestIDHeader, "generate-test")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGenerateSuccess(t *testing.T) {
	svc := textgen.NewMockTextGenService(mockContent)
	router, store := newTestRouter(svc)

	body := `{
		"name": "Maria Rodriguez",
		"profession": "UI/UX Designer",
		"skills": ["Figma", "Sketch"],
		"projects": ["Mobile Banking App"],
		"template_id": "creative_artist"
	}`
	resp := postGenerate(t, router, body)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	ct := resp.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected application/json, got %s", ct)
	}

	var data GenerateData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !data.Success {
		t.Error("expected success true")
	}
	if data.Content.Template.ID != "creative_artist" {
		t.Errorf("expected template creative_artist, got %s", data.Content.Template.ID)
	}
	if data.Content.RawContent != mockContent {
		t.Errorf("unexpected raw content: %s", data.Content.RawContent)
	}

	if len(svc.Calls) != 1 {
		t.Fatalf("expected 1 textgen call, got %d", len(svc.Calls))
	}
	if svc.Calls[0].Profile.Name != "Maria Rodriguez" {
		t.Errorf("expected profile name Maria Rodriguez, got %s", svc.Calls[0].Profile.Name)
	}

	counters, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load counters: %v", err)
	}
	if counters.TotalGenerations != 1 {
		t.Errorf("expected 1 generation tracked, got %d", counters.TotalGenerations)
	}
	if counters.TemplatesUsed["creative_artist"] != 1 {
		t.Errorf("expected creative_artist tracked, got %v", counters.TemplatesUsed)
	}
	if counters.Professions["UI/UX Designer"] != 1 {
		t.Errorf("expected profession tracked, got %v", counters.Professions)
	}
	if counters.FeaturesUsed[analyticssvc.FeatureTemplateSelection] != 1 {
		t.Errorf("expected template_selection tracked, got %v", counters.FeaturesUsed)
	}
}

func TestGenerateMinimalProfileTracksDefaultTemplate(t *testing.T) {
	svc := textgen.NewMockTextGenService(mockContent)
	router, store := newTestRouter(svc)

	resp := postGenerate(t, router, `{"name": "Alex Chen", "profession": "Software Developer"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	counters, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load counters: %v", err)
	}
	if counters.TemplatesUsed["tech_modern"] != 1 {
		t.Errorf("expected tech_modern tracked, got %v", counters.TemplatesUsed)
	}
	if counters.FeaturesUsed[analyticssvc.FeatureTemplateSelection] != 0 {
		t.Errorf("expected no template_selection usage, got %v", counters.FeaturesUsed)
	}
}

func TestGenerateMalformedJSON(t *testing.T) {
	router, _ := newTestRouter(textgen.NewMockTextGenService(mockContent))

	resp := postGenerate(t, router, `{"name": "Alex`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var problem respond.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if problem.Message != msgInvalidInput {
		t.Errorf("expected %q, got %q", msgInvalidInput, problem.Message)
	}
}

func TestGenerateMissingProfession(t *testing.T) {
	svc := textgen.NewMockTextGenService(mockContent)
	router, store := newTestRouter(svc)

	resp := postGenerate(t, router, `{"name": "Alex Chen"}`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(svc.Calls) != 0 {
		t.Errorf("expected no textgen calls, got %d", len(svc.Calls))
	}

	counters, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load counters: %v", err)
	}
	if counters.TotalGenerations != 0 {
		t.Errorf("expected no generations tracked, got %d", counters.TotalGenerations)
	}
}

func TestGenerateNotConfigured(t *testing.T) {
	svc := textgen.NewMockTextGenService("")
	svc.Err = textgen.ErrNotConfigured
	router, _ := newTestRouter(svc)

	resp := postGenerate(t, router, `{"name": "Alex Chen", "profession": "Software Developer"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}

	var problem respond.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if problem.Message != msgNotConfigured {
		t.Errorf("expected %q, got %q", msgNotConfigured, problem.Message)
	}
}

func TestGenerateRateLimited(t *testing.T) {
	svc := textgen.NewMockTextGenService("")
	svc.Err = &textgen.UpstreamError{
		Kind:       textgen.UpstreamErrorKindRateLimited,
		Status:     http.StatusTooManyRequests,
		RetryAfter: "30",
	}
	router, _ := newTestRouter(svc)

	resp := postGenerate(t, router, `{"name": "Alex Chen", "profession": "Software Developer"}`)

	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Retry-After"); got != "30" {
		t.Errorf("expected Retry-After 30, got %q", got)
	}

	var problem respond.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if problem.Message != msgRateLimited {
		t.Errorf("expected %q, got %q", msgRateLimited, problem.Message)
	}
}

func TestGenerateRateLimitedWithoutRetryAfter(t *testing.T) {
	svc := textgen.NewMockTextGenService("")
	svc.Err = &textgen.UpstreamError{
		Kind:   textgen.UpstreamErrorKindRateLimited,
		Status: http.StatusTooManyRequests,
	}
	router, _ := newTestRouter(svc)

	resp := postGenerate(t, router, `{"name": "Alex Chen", "profession": "Software Developer"}`)

	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Retry-After"); got != "" {
		t.Errorf("expected no Retry-After header, got %q", got)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	svc := textgen.NewMockTextGenService("")
	svc.Err = &textgen.UpstreamError{
		Kind:   textgen.UpstreamErrorKindUnavailable,
		Status: http.StatusServiceUnavailable,
	}
	router, store := newTestRouter(svc)

	resp := postGenerate(t, router, `{"name": "Alex Chen", "profession": "Software Developer"}`)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}

	var problem respond.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !strings.Contains(problem.Message, "groq upstream error") {
		t.Errorf("expected upstream error message, got %q", problem.Message)
	}

	counters, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load counters: %v", err)
	}
	if counters.TotalGenerations != 0 {
		t.Errorf("expected no generations tracked on failure, got %d", counters.TotalGenerations)
	}
}
