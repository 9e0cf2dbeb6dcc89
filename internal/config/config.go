package config

import (
	"os"
	"strconv"
	"strings"
)

// Mode describes how portfolio text is produced.
type Mode string

const (
	// ModeLocal synthesizes portfolio text in-process without any network calls.
	ModeLocal Mode = "local"
	// ModeRemote generates portfolio text through the Groq chat completion API.
	ModeRemote Mode = "remote"
	// ModeUnconfigured means neither demo mode nor an API key is set;
	// generation requests fail until one of them is provided.
	ModeUnconfigured Mode = "unconfigured"
)

// Analytics backend names accepted in ANALYTICS_BACKEND.
const (
	BackendMemory    = "memory"
	BackendFile      = "file"
	BackendFirestore = "firestore"
)

type Config struct {
	// Groq
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string
	DemoMode    bool

	// Server
	Port  int
	Debug bool

	// Analytics
	AnalyticsBackend   string
	AnalyticsFile      string
	GoogleCloudProject string
}

func Load() Config {
	return Config{
		// Groq
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqModel:   getenv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL: getenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		DemoMode:    getenvBool("DEMO_MODE"),

		// Server
		Port:  getenvInt("PORT", 8080),
		Debug: getenvBool("DEBUG"),

		// Analytics
		AnalyticsBackend:   getenv("ANALYTICS_BACKEND", BackendFile),
		AnalyticsFile:      getenv("ANALYTICS_FILE", "analytics.json"),
		GoogleCloudProject: os.Getenv("GOOGLE_CLOUD_PROJECT"),
	}
}

// Mode derives the generation mode. Demo mode wins over a configured key so
// local synthesis can be forced even when credentials are present.
func (c Config) Mode() Mode {
	switch {
	case c.DemoMode:
		return ModeLocal
	case c.GroqAPIKey != "":
		return ModeRemote
	default:
		return ModeUnconfigured
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// getenvBool treats exactly "true", case-insensitively, as true.
func getenvBool(k string) bool {
	return strings.EqualFold(os.Getenv(k), "true")
}
