package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wixenlabs/nova/internal/agent"
	"github.com/wixenlabs/nova/internal/chat"
)

// stubChatService returns a fixed result or error and records the request.
type stubChatService struct {
	result *chat.Result
	err    error
	got    chat.Request
}

func (s *stubChatService) Handle(_ context.Context, req chat.Request) (*chat.Result, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newChatHandler(svc ChatService) *chatHandler {
	return &chatHandler{service: svc, maxMessageLength: 1000, logger: discardLogger()}
}

func postChat(t *testing.T, h *chatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	h.send(w, r)
	return w
}

func TestChatHandler_Success(t *testing.T) {
	svc := &stubChatService{result: &chat.Result{Response: "Hello! How can I help?"}}
	h := newChatHandler(svc)

	w := postChat(t, h, `{
		"message": "hi",
		"conversation_history": [{"role": "user", "content": "earlier"}],
		"current_agent": {"id": 3}
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var body chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Response != "Hello! How can I help?" {
		t.Errorf("response = %q", body.Response)
	}
	if body.SwitchToHuman {
		t.Error("switch_to_human = true, want false")
	}
	if body.NewAgent != nil {
		t.Error("new_agent should be absent when not switching")
	}
	if !body.Success {
		t.Error("success = false, want true")
	}

	// The handler must pass the full request through to the service.
	if svc.got.Message != "hi" {
		t.Errorf("service message = %q, want %q", svc.got.Message, "hi")
	}
	if svc.got.AgentID != 3 {
		t.Errorf("service agent ID = %d, want 3", svc.got.AgentID)
	}
	if len(svc.got.History) != 1 || svc.got.History[0].Content != "earlier" {
		t.Errorf("service history = %+v", svc.got.History)
	}
}

func TestChatHandler_MissingCurrentAgentDefaultsToAI(t *testing.T) {
	svc := &stubChatService{result: &chat.Result{Response: "ok"}}
	h := newChatHandler(svc)

	w := postChat(t, h, `{"message": "hi"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if svc.got.AgentID != 0 {
		t.Errorf("service agent ID = %d, want 0", svc.got.AgentID)
	}
}

func TestChatHandler_HandoffResponse(t *testing.T) {
	next := agent.Profile{ID: 1, Name: "Alex", Role: "Senior Support Specialist"}
	svc := &stubChatService{result: &chat.Result{
		Response:        "I'll connect you with a human expert right away. Please hold on...",
		SwitchedToHuman: true,
		NewAgent:        &next,
	}}
	h := newChatHandler(svc)

	w := postChat(t, h, `{"message": "talk to human"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if !body.SwitchToHuman {
		t.Error("switch_to_human = false, want true")
	}
	if body.NewAgent == nil || body.NewAgent.ID != 1 || body.NewAgent.Name != "Alex" {
		t.Errorf("new_agent = %+v", body.NewAgent)
	}
}

func TestChatHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"empty message", chat.ErrEmptyMessage, http.StatusBadRequest, "Message is required"},
		{"message too long", chat.ErrMessageTooLong, http.StatusRequestEntityTooLarge, "Message too long (max 1000 characters)"},
		{"wrapped too long", errors.Join(chat.ErrMessageTooLong), http.StatusRequestEntityTooLarge, "Message too long (max 1000 characters)"},
		{"model unavailable", chat.ErrModelUnavailable, http.StatusServiceUnavailable, "AI service unavailable"},
		{"unclassified", errors.New("disk on fire"), http.StatusInternalServerError, "An error occurred processing your message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newChatHandler(&stubChatService{err: tt.err})

			w := postChat(t, h, `{"message": "hi"}`)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
			if body.Success {
				t.Error("success = true, want false")
			}
		})
	}
}

func TestChatHandler_InvalidJSON(t *testing.T) {
	h := newChatHandler(&stubChatService{result: &chat.Result{Response: "ok"}})

	w := postChat(t, h, `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestChatHandler_OversizedBody(t *testing.T) {
	h := newChatHandler(&stubChatService{result: &chat.Result{Response: "ok"}})

	big := `{"message": "` + strings.Repeat("x", maxRequestBody) + `"}`
	w := postChat(t, h, big)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}
