package chat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContext(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
		{Role: "user", Content: "tell me more"},
	}

	tests := []struct {
		name     string
		history  []Turn
		maxTurns int
		want     string
	}{
		{
			"empty history yields placeholder",
			nil, 10,
			"No previous conversation",
		},
		{
			"window larger than history keeps everything",
			history, 10,
			"user: hello\nassistant: hi there\nuser: tell me more",
		},
		{
			"window keeps most recent turns in order",
			history, 2,
			"assistant: hi there\nuser: tell me more",
		},
		{
			"window of one keeps last turn",
			history, 1,
			"user: tell me more",
		},
		{
			"missing role defaults to user",
			[]Turn{{Content: "anonymous"}}, 5,
			"user: anonymous",
		},
		{
			"empty content renders role only",
			[]Turn{{Role: "assistant"}}, 5,
			"assistant: ",
		},
		{
			"zero window yields placeholder",
			history, 0,
			"No previous conversation",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, RenderContext(tc.history, tc.maxTurns))
		})
	}
}

func TestRenderContext_ExactTurnCount(t *testing.T) {
	t.Parallel()

	// For history length L and window K, the output must contain exactly
	// min(L, K) lines, being the most recent turns.
	for _, l := range []int{0, 1, 5, 10, 25} {
		for _, k := range []int{1, 5, 10} {
			history := make([]Turn, l)
			for i := range history {
				history[i] = Turn{Role: "user", Content: fmt.Sprintf("turn %d", i)}
			}

			got := RenderContext(history, k)
			if l == 0 {
				assert.Equal(t, "No previous conversation", got)
				continue
			}

			lines := strings.Split(got, "\n")
			want := min(l, k)
			assert.Len(t, lines, want, "L=%d K=%d", l, k)
			assert.Equal(t, fmt.Sprintf("user: turn %d", l-1), lines[len(lines)-1])
		}
	}
}

func TestRenderContext_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	history := []Turn{{Role: "", Content: "x"}}
	_ = RenderContext(history, 10)
	assert.Empty(t, history[0].Role)
}
