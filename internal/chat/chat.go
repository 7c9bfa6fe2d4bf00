// Package chat implements the request-handling core of the Nova backend:
// per-request validation, the persona handoff decision, bounded context
// rendering, model completion, and output sanitization.
//
// The package holds no per-session state. Conversation history travels with
// each request; the only process-wide state is the agent registry's
// rotation cursor.
package chat

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/wixenlabs/nova/internal/agent"
	"github.com/wixenlabs/nova/internal/log"
	"github.com/wixenlabs/nova/internal/sanitize"
)

// Sentinel errors classifying request failures. The API layer maps these
// to HTTP statuses; anything else is treated as an internal error.
var (
	// ErrEmptyMessage indicates the inbound message was empty.
	ErrEmptyMessage = errors.New("empty message")

	// ErrMessageTooLong indicates the inbound message exceeds the cap.
	ErrMessageTooLong = errors.New("message too long")

	// ErrModelUnavailable indicates the model provider could not be
	// reached, including the degraded no-credential mode.
	ErrModelUnavailable = errors.New("model unavailable")
)

// logPreviewLen caps how much of a user message ever reaches the logs.
const logPreviewLen = 50

// Request is one inbound chat request.
type Request struct {
	Message string
	History []Turn
	AgentID int // 0 (the AI persona) when the client sent no current agent
}

// Result is the structured outcome of a handled request.
type Result struct {
	Response        string
	SwitchedToHuman bool
	NewAgent        *agent.Profile // set only when SwitchedToHuman
}

// Config contains all parameters for the chat service.
type Config struct {
	Registry  *agent.Registry
	Responder Responder // nil enables degraded mode: every request fails with ErrModelUnavailable
	Sanitizer *sanitize.Sanitizer
	Logger    log.Logger

	MaxMessageLength int
	MaxContextTurns  int
}

func (cfg Config) validate() error {
	if cfg.Registry == nil {
		return errors.New("registry is required")
	}
	if cfg.Sanitizer == nil {
		return errors.New("sanitizer is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.MaxMessageLength <= 0 {
		return errors.New("max message length must be positive")
	}
	if cfg.MaxContextTurns <= 0 {
		return errors.New("max context turns must be positive")
	}
	return nil
}

// Service orchestrates one chat request end to end. Stateless per request;
// safe for concurrent use.
type Service struct {
	registry  *agent.Registry
	policy    *HandoffPolicy
	responder Responder
	sanitizer *sanitize.Sanitizer
	logger    log.Logger

	maxMessageLength int
	maxContextTurns  int
}

// New creates a chat service. A nil Responder is allowed: the service then
// runs degraded and classifies every generation as ErrModelUnavailable,
// keeping the process alive when the provider credential is missing.
func New(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid chat config: %w", err)
	}
	return &Service{
		registry:         cfg.Registry,
		policy:           NewHandoffPolicy(),
		responder:        cfg.Responder,
		sanitizer:        cfg.Sanitizer,
		logger:           cfg.Logger,
		maxMessageLength: cfg.MaxMessageLength,
		maxContextTurns:  cfg.MaxContextTurns,
	}, nil
}

// Handle processes one request: validate, decide handoff, generate,
// sanitize. Handoff replies are fixed strings and bypass the sanitizer;
// every model-generated reply passes through it unconditionally.
func (s *Service) Handle(ctx context.Context, req Request) (*Result, error) {
	if req.Message == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(req.Message) > s.maxMessageLength {
		return nil, fmt.Errorf("%w: max %d characters", ErrMessageTooLong, s.maxMessageLength)
	}

	current := s.registry.Profile(req.AgentID)

	if s.policy.ShouldSwitch(current.ID, req.Message) {
		next := s.registry.NextHumanAgent(current.ID)
		s.logger.Info("switching persona",
			"from", current.Name,
			"to", next.Name,
			"message", preview(req.Message),
		)
		return &Result{
			Response:        handoffResponse,
			SwitchedToHuman: true,
			NewAgent:        &next,
		}, nil
	}

	if s.responder == nil {
		s.logger.Error("chat request rejected: no model responder configured")
		return nil, ErrModelUnavailable
	}

	contextBlock := RenderContext(req.History, s.maxContextTurns)

	raw, err := s.responder.Respond(ctx, current, contextBlock, req.Message)
	if err != nil {
		// Full detail stays server-side; callers get the typed class only.
		s.logger.Error("model call failed",
			"error", err,
			"persona", current.Name,
			"message", preview(req.Message),
		)
		return nil, ErrModelUnavailable
	}

	response := s.sanitizer.Sanitize(raw)

	s.logger.Info("chat handled",
		"persona", current.Name,
		"message", preview(req.Message),
		"response", preview(response),
	)

	return &Result{Response: response}, nil
}

// preview truncates a string for logging so full message content never
// lands in the logs.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= logPreviewLen {
		return s
	}
	return string(runes[:logPreviewLen]) + "..."
}
