// Package agent defines the persona directory for the Nova backend.
//
// The directory holds one AI persona (ID 0) and a fixed pool of human
// personas. Both sets are immutable after process start; the only mutable
// state is the process-wide rotation cursor that determines which human
// persona is handed out next.
package agent

import (
	"slices"
	"sync"
)

// Profile describes a single persona presented to the end user.
type Profile struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Country  string `json:"country,omitempty"`
	Avatar   string `json:"avatar"`
	Greeting string `json:"greeting"`
}

// IsHuman reports whether the profile is a human persona.
func (p Profile) IsHuman() bool {
	return p.ID != 0
}

// Registry is the static persona directory plus the global rotation cursor.
// Safe for concurrent use: the cursor is guarded by a single mutex so two
// simultaneous handoffs never receive the same persona.
type Registry struct {
	ai     Profile
	humans []Profile

	mu     sync.Mutex
	cursor int // index into humans, -1 before the first handoff
}

// NewRegistry creates a registry with the built-in persona set and the
// rotation cursor positioned before the first human profile.
func NewRegistry() *Registry {
	return &Registry{
		ai:     aiProfile,
		humans: slices.Clone(humanProfiles),
		cursor: -1,
	}
}

// AIProfile returns the AI persona.
func (r *Registry) AIProfile() Profile {
	return r.ai
}

// Profile returns the persona with the given ID. ID 0 and any unknown ID
// resolve to the AI persona; an unknown ID means no persona was selected yet.
func (r *Registry) Profile(id int) Profile {
	if id == 0 {
		return r.ai
	}
	for _, p := range r.humans {
		if p.ID == id {
			return p
		}
	}
	return r.ai
}

// HumanProfiles returns the human persona pool in rotation order.
// The returned slice is a copy; callers may not mutate registry state.
func (r *Registry) HumanProfiles() []Profile {
	return slices.Clone(r.humans)
}

// NextHumanAgent advances the global rotation cursor by one position
// (modulo pool size) and returns the persona there.
//
// excludeID is accepted for API symmetry but does not filter the result:
// the rotation is strictly sequential regardless of which persona is
// currently active, so the process-wide hand-out order stays a
// deterministic 1→2→3→4→5→1… cycle even under concurrent handoffs from
// different sessions.
func (r *Registry) NextHumanAgent(excludeID int) Profile {
	_ = excludeID

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = (r.cursor + 1) % len(r.humans)
	return r.humans[r.cursor]
}
