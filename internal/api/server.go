// Package api exposes the Nova backend over a JSON HTTP API: the chat
// endpoint, the persona directory, and health probes, wrapped in the
// shared middleware stack.
package api

import (
	"errors"
	"net/http"

	"github.com/wixenlabs/nova/internal/agent"
	"github.com/wixenlabs/nova/internal/log"
)

// ServerConfig contains configuration for creating the API server.
type ServerConfig struct {
	Logger           log.Logger
	ChatService      ChatService     // Required
	Registry         *agent.Registry // Required
	Version          string
	MaxMessageLength int      // For the 413 error message
	CORSOrigins      []string // Allowed origins for CORS
	TrustProxy       bool     // Trust X-Real-IP/X-Forwarded-For headers (behind reverse proxy)
	RateLimitCount   int      // Requests allowed per window
	RateLimitWindow  int      // Window length in seconds
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.ChatService == nil {
		return nil, errors.New("chat service is required")
	}
	if cfg.Registry == nil {
		return nil, errors.New("agent registry is required")
	}
	if cfg.RateLimitCount <= 0 || cfg.RateLimitWindow <= 0 {
		return nil, errors.New("rate limit quota is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	ch := &chatHandler{
		service:          cfg.ChatService,
		maxMessageLength: cfg.MaxMessageLength,
		logger:           logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", ch.send)
	mux.HandleFunc("GET /api/agent-profiles", profilesHandler(cfg.Registry, logger))

	rl := newRateLimiter(cfg.RateLimitCount, cfg.RateLimitWindow)

	// Build middleware stack (outermost first):
	//   Recovery → RequestID → Logging → CORS → RateLimit → Routes
	// RequestID must be before Logging so request_id is available in log
	// attributes. CORS must be before RateLimit so preflight OPTIONS gets
	// proper CORS headers.
	var handler http.Handler = mux
	handler = rateLimitMiddleware(rl, cfg.TrustProxy, logger)(handler)
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	// Use a top-level mux to keep the health probe outside the middleware
	// stack: probes must never be rate limited.
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /api/health", healthHandler(cfg.Version, logger))
	topMux.Handle("/", handler)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}
