package chat

import "strings"

// noHistoryPlaceholder is rendered when the conversation has no prior turns.
const noHistoryPlaceholder = "No previous conversation"

// Turn is a single conversation turn owned by the caller. The service keeps
// no per-session state; the full history travels with each request.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RenderContext renders the most recent maxTurns turns as "<role>: <content>"
// lines joined by newlines, oldest first. A missing role defaults to "user".
// The input slice is never mutated.
func RenderContext(history []Turn, maxTurns int) string {
	if len(history) == 0 || maxTurns <= 0 {
		return noHistoryPlaceholder
	}

	start := 0
	if len(history) > maxTurns {
		start = len(history) - maxTurns
	}

	var b strings.Builder
	for i, turn := range history[start:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		role := turn.Role
		if role == "" {
			role = "user"
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(turn.Content)
	}
	return b.String()
}
