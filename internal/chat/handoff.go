package chat

import "strings"

// Trigger phrase sets for persona transitions. Matching is case-insensitive
// substring search; the two sets are checked under mutually exclusive guards
// on the current persona, so a human-request phrase never re-triggers while
// a human persona is already active.
var (
	// humanRequestPhrases switch from the AI persona to the human pool.
	humanRequestPhrases = []string{
		"human agent", "real person", "talk to human", "speak to human",
		"human support", "real agent", "customer service",
		"talk to a human", "speak to a human", "connect me", "talk with a human",
	}

	// switchAgentPhrases rotate to the next human persona.
	switchAgentPhrases = []string{
		"new agent", "different agent", "another agent", "meet new",
		"switch agent", "change agent",
	}
)

// handoffResponse is the fixed transitional reply returned on a persona
// switch. It short-circuits the model call so the acknowledgment is
// deterministic and instantaneous.
const handoffResponse = "I'll connect you with a human expert right away. Please hold on..."

// HandoffPolicy decides persona transitions from the inbound message and
// the currently active persona. It is a pure decision function; the only
// state involved lives in the caller-supplied persona and the registry's
// rotation cursor.
type HandoffPolicy struct {
	toHuman []string
	toNext  []string
}

// NewHandoffPolicy creates a policy with the default trigger phrase sets.
func NewHandoffPolicy() *HandoffPolicy {
	return &HandoffPolicy{
		toHuman: humanRequestPhrases,
		toNext:  switchAgentPhrases,
	}
}

// ShouldSwitch reports whether the message triggers a persona transition
// given the current persona. currentID 0 means the AI persona is active.
// Matching multiple phrases yields a single transition.
func (p *HandoffPolicy) ShouldSwitch(currentID int, message string) bool {
	lower := strings.ToLower(message)

	phrases := p.toHuman
	if currentID != 0 {
		phrases = p.toNext
	}
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
