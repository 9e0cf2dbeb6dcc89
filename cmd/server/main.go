package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/forgefolio/forgefolio/internal/config"
	"github.com/forgefolio/forgefolio/internal/enhance"
	"github.com/forgefolio/forgefolio/internal/http/health"
	"github.com/forgefolio/forgefolio/internal/http/v1/routes"
	applog "github.com/forgefolio/forgefolio/internal/platform/logging"
	appmiddleware "github.com/forgefolio/forgefolio/internal/platform/middleware"
	"github.com/forgefolio/forgefolio/internal/platform/respond"
	analyticssvc "github.com/forgefolio/forgefolio/internal/service/analytics"
	"github.com/forgefolio/forgefolio/internal/service/generator"
	"github.com/forgefolio/forgefolio/internal/service/textgen"
)

// Version is stamped by the release build via -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := config.Load()

	applog.Init(cfg.Debug)
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	router, err := buildRouter(cfg)
	if err != nil {
		applog.LogError(context.Background(), "startup failed", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		// Generation requests hold the connection while Groq completes, so
		// the write timeout must exceed the Groq client timeout.
		WriteTimeout:   90 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("mode", string(cfg.Mode())),
			zap.String("analytics", cfg.AnalyticsBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// buildRouter assembles the middleware stack, the API, and the configured
// generation and analytics backends.
func buildRouter(cfg config.Config) (chi.Router, error) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For, so the server must sit behind a
		// proxy that sets it.
		chimiddleware.RealIP,
		// Profile payloads are small; anything past 1 MB is not a profile.
		chimiddleware.RequestSize(1<<20),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	// Liveness probe, served outside the API framework.
	router.Get("/health", health.Handler)

	humaCfg := huma.DefaultConfig("ForgeFolio API", Version)
	humaCfg.DocsPath = "/api-docs"
	api := humachi.New(router, humaCfg)

	// Mirror every JSON request/response body as CBOR in the OpenAPI document.
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

	store, err := newAnalyticsStore(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := newTextGen(cfg)
	if err != nil {
		return nil, err
	}

	gen := generator.New(svc, enhance.New(rand.New(rand.NewSource(time.Now().UnixNano()))))
	routes.Register(api, gen, analyticssvc.NewService(store))
	return router, nil
}

func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func newAnalyticsStore(cfg config.Config) (analyticssvc.Store, error) {
	switch cfg.AnalyticsBackend {
	case config.BackendMemory:
		return analyticssvc.NewMemoryStore(), nil
	case config.BackendFile:
		return analyticssvc.NewFileStore(cfg.AnalyticsFile), nil
	case config.BackendFirestore:
		client, err := firestore.NewClient(context.Background(), cfg.GoogleCloudProject)
		if err != nil {
			return nil, fmt.Errorf("creating firestore client: %w", err)
		}
		return analyticssvc.NewFirestoreStore(client), nil
	default:
		return nil, fmt.Errorf("unknown analytics backend %q", cfg.AnalyticsBackend)
	}
}

// newTextGen selects the text source from the configured mode. Unconfigured
// deployments still serve the catalog routes; only generation fails.
func newTextGen(cfg config.Config) (textgen.Service, error) {
	switch cfg.Mode() {
	case config.ModeLocal:
		applog.LogInfo(context.Background(), "demo mode enabled, synthesizing portfolios locally")
		return textgen.NewSynthesizer(), nil
	case config.ModeRemote:
		return textgen.NewClient(cfg.GroqAPIKey,
			textgen.WithModel(cfg.GroqModel),
			textgen.WithBaseURL(cfg.GroqBaseURL),
		)
	default:
		applog.LogWarn(context.Background(), "GROQ_API_KEY not set and DEMO_MODE off, generation requests will fail")
		return textgen.Unconfigured{}, nil
	}
}
