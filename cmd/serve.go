package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/wixenlabs/nova/internal/agent"
	"github.com/wixenlabs/nova/internal/api"
	"github.com/wixenlabs/nova/internal/chat"
	"github.com/wixenlabs/nova/internal/config"
	"github.com/wixenlabs/nova/internal/log"
	"github.com/wixenlabs/nova/internal/sanitize"
)

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 2 * time.Minute
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

// runServe initializes and starts the HTTP API server.
func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New(log.Config{Level: log.LevelFromEnv(), JSON: cfg.LogJSON})
	logger.Info("starting Nova backend", "version", AppVersion, "model", cfg.ModelName)

	responder, err := provideResponder(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing model responder: %w", err)
	}

	registry := agent.NewRegistry()

	service, err := chat.New(chat.Config{
		Registry:         registry,
		Responder:        responder,
		Sanitizer:        sanitize.New(cfg.RedactedOrgs, cfg.MaxResponseChars),
		Logger:           logger,
		MaxMessageLength: cfg.MaxMessageLength,
		MaxContextTurns:  cfg.MaxContextTurns,
	})
	if err != nil {
		return fmt.Errorf("creating chat service: %w", err)
	}

	quotaCount, quotaWindow, err := config.ParseQuota(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("parsing rate limit quota: %w", err)
	}

	apiServer, err := api.NewServer(api.ServerConfig{
		Logger:           logger,
		ChatService:      service,
		Registry:         registry,
		Version:          AppVersion,
		MaxMessageLength: cfg.MaxMessageLength,
		CORSOrigins:      cfg.CORSOrigins,
		TrustProxy:       cfg.TrustProxy,
		RateLimitCount:   quotaCount,
		RateLimitWindow:  quotaWindow,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("HTTP server ready",
		"addr", srv.Addr,
		"api", "/api/chat, /api/agent-profiles",
		"health", "/api/health",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}

// provideResponder initializes Genkit with the Gemini plugin and wraps it in
// a chat.Responder. Without a credential the server starts degraded: a nil
// responder makes every chat request fail with a 503 instead of crashing
// the process at startup.
func provideResponder(ctx context.Context, cfg *config.Config, logger log.Logger) (chat.Responder, error) {
	if !cfg.HasCredential() {
		logger.Error("GEMINI_API_KEY not set, starting in degraded mode: chat requests will return 503")
		return nil, nil
	}

	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
	if g == nil {
		return nil, errors.New("initializing genkit with gemini provider")
	}
	logger.Info("initialized Genkit with gemini provider", "model", cfg.ModelName)

	return chat.NewModelResponder(g, cfg.FullModelName(), chat.Sampling{
		Temperature:      cfg.Temperature,
		TopP:             cfg.TopP,
		FrequencyPenalty: cfg.FrequencyPenalty,
		PresencePenalty:  cfg.PresencePenalty,
		MaxOutputTokens:  cfg.MaxTokens,
	}, logger)
}
