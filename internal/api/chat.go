package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wixenlabs/nova/internal/agent"
	"github.com/wixenlabs/nova/internal/chat"
	"github.com/wixenlabs/nova/internal/log"
)

// maxRequestBody caps the chat request body size. Generous relative to the
// message length cap because conversation history travels with each request.
const maxRequestBody = 1024 * 1024

// ChatService handles one chat request end to end.
type ChatService interface {
	Handle(ctx context.Context, req chat.Request) (*chat.Result, error)
}

// chatRequest is the JSON body of POST /api/chat.
type chatRequest struct {
	Message             string      `json:"message"`
	ConversationHistory []chat.Turn `json:"conversation_history"`
	CurrentAgent        *agentRef   `json:"current_agent"`
}

// agentRef identifies the client's active persona. Only the ID is trusted;
// the server resolves the rest from its own directory.
type agentRef struct {
	ID int `json:"id"`
}

// chatResponse is the JSON body of a successful POST /api/chat.
type chatResponse struct {
	Response      string         `json:"response"`
	SwitchToHuman bool           `json:"switch_to_human"`
	NewAgent      *agent.Profile `json:"new_agent,omitempty"`
	Success       bool           `json:"success"`
}

// chatHandler adapts the chat service to HTTP.
type chatHandler struct {
	service          ChatService
	maxMessageLength int
	logger           log.Logger
}

// send handles POST /api/chat.
func (h *chatHandler) send(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", h.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	var agentID int
	if req.CurrentAgent != nil {
		agentID = req.CurrentAgent.ID
	}

	result, err := h.service.Handle(r.Context(), chat.Request{
		Message: req.Message,
		History: req.ConversationHistory,
		AgentID: agentID,
	})
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:      result.Response,
		SwitchToHuman: result.SwitchedToHuman,
		NewAgent:      result.NewAgent,
		Success:       true,
	}, h.logger)
}

// writeChatError maps service error classes to HTTP statuses. Anything
// unclassified becomes an opaque 500; detail stays in the server logs.
func (h *chatHandler) writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "Message is required", h.logger)
	case errors.Is(err, chat.ErrMessageTooLong):
		msg := fmt.Sprintf("Message too long (max %d characters)", h.maxMessageLength)
		writeError(w, http.StatusRequestEntityTooLarge, msg, h.logger)
	case errors.Is(err, chat.ErrModelUnavailable):
		writeError(w, http.StatusServiceUnavailable, "AI service unavailable", h.logger)
	default:
		h.logger.Error("chat request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An error occurred processing your message", h.logger)
	}
}
