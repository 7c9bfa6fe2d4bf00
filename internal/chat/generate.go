package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"google.golang.org/genai"

	"github.com/wixenlabs/nova/internal/agent"
	"github.com/wixenlabs/nova/internal/log"
)

// fallbackResponse is returned when the model produces an empty completion.
const fallbackResponse = "I apologize, but I couldn't generate a response. Please try rephrasing your question."

// Responder generates a reply for a persona from the rendered context block
// and the current user message.
type Responder interface {
	Respond(ctx context.Context, persona agent.Profile, contextBlock, message string) (string, error)
}

// Sampling holds the model sampling parameters sent with every completion.
type Sampling struct {
	Temperature      float32
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
	MaxOutputTokens  int
}

// ModelResponder is the Genkit-backed Responder. The completion call is
// synchronous; cancellation is the caller's concern via ctx.
type ModelResponder struct {
	g         *genkit.Genkit
	modelName string // provider-qualified, e.g. "googleai/gemini-2.5-flash"
	sampling  Sampling
	logger    log.Logger
}

// NewModelResponder creates a ModelResponder.
func NewModelResponder(g *genkit.Genkit, modelName string, sampling Sampling, logger log.Logger) (*ModelResponder, error) {
	if g == nil {
		return nil, fmt.Errorf("genkit instance is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &ModelResponder{g: g, modelName: modelName, sampling: sampling, logger: logger}, nil
}

// Respond builds the persona system prompt and requests a single completion.
func (r *ModelResponder) Respond(ctx context.Context, persona agent.Profile, contextBlock, message string) (string, error) {
	resp, err := genkit.Generate(ctx, r.g,
		ai.WithModelName(r.modelName),
		ai.WithSystem(systemPrompt(persona, contextBlock)),
		ai.WithMessages(ai.NewUserMessage(ai.NewTextPart(message))),
		ai.WithConfig(&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(r.sampling.Temperature),
			TopP:             genai.Ptr(r.sampling.TopP),
			FrequencyPenalty: genai.Ptr(r.sampling.FrequencyPenalty),
			PresencePenalty:  genai.Ptr(r.sampling.PresencePenalty),
			MaxOutputTokens:  int32(r.sampling.MaxOutputTokens),
		}),
	)
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		r.logger.Warn("model returned empty response", "persona", persona.Name)
		return fallbackResponse, nil
	}
	return text, nil
}
