package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forgefolio/forgefolio/internal/portfolio"
	"github.com/forgefolio/forgefolio/internal/templates"
)

func newTestServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func newTestClient(serverURL string) *Client {
	client, _ := NewClient("test-key", WithBaseURL(serverURL))
	return client
}

func testProfile() portfolio.Profile {
	return portfolio.Profile{
		Name:       "Alex Chen",
		Profession: "Software Developer",
		Experience: "6 years of experience",
		Skills:     []string{"Go", "Python", "React"},
		Projects:   []string{"Payments Platform"},
	}
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(chatResponse{
		Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: content}}},
	})
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(""); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := NewClient("   "); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for blank key, got %v", err)
	}
	if _, err := NewClient("gsk-test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateSendsChatRequest(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}

		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if payload.Model != defaultModel {
			t.Errorf("expected model %q, got %q", defaultModel, payload.Model)
		}
		if payload.Temperature != temperature {
			t.Errorf("expected temperature %v, got %v", temperature, payload.Temperature)
		}
		if payload.MaxTokens != maxTokens {
			t.Errorf("expected max_tokens %d, got %d", maxTokens, payload.MaxTokens)
		}
		if len(payload.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(payload.Messages))
		}
		if payload.Messages[0].Role != "system" || payload.Messages[1].Role != "user" {
			t.Errorf("unexpected roles: %s, %s", payload.Messages[0].Role, payload.Messages[1].Role)
		}
		if !strings.Contains(payload.Messages[0].Content, "Modern Tech Professional") {
			t.Errorf("system message missing template name: %q", payload.Messages[0].Content)
		}
		if !strings.Contains(payload.Messages[0].Content, "Use the modern style") {
			t.Errorf("system message missing style: %q", payload.Messages[0].Content)
		}

		writeCompletion(w, "**Professional Summary**\nAlex ships software.")
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	content, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, "Alex ships software.") {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestGeneratePromptCarriesProfileAndTemplate(t *testing.T) {
	var prompt string
	srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		prompt = payload.Messages[1].Content
		writeCompletion(w, "ok")
	})
	defer srv.Close()

	profile := testProfile()
	profile.Education = &portfolio.Education{
		Records: []portfolio.EducationRecord{
			{School: "MIT", Degree: "BS", Field: "Computer Science", StartDate: "2020-09", EndDate: "2024-06"},
		},
	}

	client := newTestClient(srv.URL)
	if _, err := client.Generate(context.Background(), profile, templates.Get("academic_researcher")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Name: Alex Chen",
		"Profession: Software Developer",
		"Skills: Go, Python, React",
		"Projects: Payments Platform",
		"MIT, BS, Computer Science",
		"Sep 2020 - Jun 2024",
		"Template Style: academic",
		"Tone: scholarly and measured",
		"Required Sections: summary, research, publications, education, awards, contact",
		"clearly distinct from portfolios written in the other styles",
		"**Professional Summary**",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGeneratePromptMarksMissingLists(t *testing.T) {
	var prompt string
	srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		prompt = payload.Messages[1].Content
		writeCompletion(w, "ok")
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	profile := portfolio.Profile{Name: "Sam Lee", Profession: "Writer"}
	if _, err := client.Generate(context.Background(), profile, templates.Get("tech_modern")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "Skills: Not specified") {
		t.Errorf("prompt missing skills placeholder: %q", prompt)
	}
	if !strings.Contains(prompt, "Projects: Not specified") {
		t.Errorf("prompt missing projects placeholder: %q", prompt)
	}
	if strings.Contains(prompt, "Education:") {
		t.Errorf("prompt should omit education when absent: %q", prompt)
	}
}

func TestGenerateWithModelOverride(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if payload.Model != "llama-3.3-70b-versatile" {
			t.Errorf("expected model override, got %q", payload.Model)
		}
		writeCompletion(w, "ok")
	})
	defer srv.Close()

	client, err := NewClient("test-key", WithBaseURL(srv.URL), WithModel("llama-3.3-70b-versatile"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestGenerateBlankContent(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		writeCompletion(w, "   \n")
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestGenerateAuthError(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(chatErrorResponse{
			Error: chatErrorDetail{Message: "Invalid API Key", Type: "invalid_request_error"},
		})
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if !errors.Is(err, ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upstreamErr.Kind != UpstreamErrorKindAuth {
		t.Fatalf("expected kind %q, got %q", UpstreamErrorKindAuth, upstreamErr.Kind)
	}
	if upstreamErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", upstreamErr.Status)
	}
	if !strings.Contains(err.Error(), "Invalid API Key") {
		t.Fatalf("expected groq message in error, got %q", err.Error())
	}
}

func TestGenerateRateLimitedError(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upstreamErr.Kind != UpstreamErrorKindRateLimited {
		t.Fatalf("expected kind %q, got %q", UpstreamErrorKindRateLimited, upstreamErr.Kind)
	}
	if upstreamErr.Status != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", upstreamErr.Status)
	}
	if upstreamErr.RetryAfter != "30" {
		t.Fatalf("expected retry after 30, got %q", upstreamErr.RetryAfter)
	}
}

func TestGenerateUnavailableError(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upstreamErr.Kind != UpstreamErrorKindUnavailable {
		t.Fatalf("expected kind %q, got %q", UpstreamErrorKindUnavailable, upstreamErr.Kind)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(chatErrorResponse{
			Error: chatErrorDetail{Message: "model not found", Type: "invalid_request_error"},
		})
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upstreamErr.Kind != UpstreamErrorKindUpstream {
		t.Fatalf("expected kind %q, got %q", UpstreamErrorKindUpstream, upstreamErr.Kind)
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Fatalf("expected groq message in error, got %q", err.Error())
	}
}

func TestGenerateMalformedJSON(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{invalid json"))
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), testProfile(), templates.Get("tech_modern"))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestPing(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if payload.MaxTokens != pingMaxTokens {
			t.Errorf("expected max_tokens %d, got %d", pingMaxTokens, payload.MaxTokens)
		}
		if len(payload.Messages) != 1 || payload.Messages[0].Content != "Hello" {
			t.Errorf("unexpected ping messages: %+v", payload.Messages)
		}
		writeCompletion(w, "Hi")
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPingAuthError(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	if err := client.Ping(context.Background()); !errors.Is(err, ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestGenerateContextCanceled(t *testing.T) {
	srv := newTestServer(func(w http.ResponseWriter, _ *http.Request) {
		writeCompletion(w, "ok")
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(srv.URL)
	if _, err := client.Generate(ctx, testProfile(), templates.Get("tech_modern")); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
