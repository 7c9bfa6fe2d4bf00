package api

import (
	"net/http"

	"github.com/wixenlabs/nova/internal/agent"
	"github.com/wixenlabs/nova/internal/log"
)

// profilesResponse lists every persona the frontend may display.
type profilesResponse struct {
	AIAgent     agent.Profile   `json:"ai_agent"`
	HumanAgents []agent.Profile `json:"human_agents"`
	Success     bool            `json:"success"`
}

// profilesHandler serves the full persona directory. Reading the directory
// never advances the rotation cursor.
func profilesHandler(registry *agent.Registry, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, profilesResponse{
			AIAgent:     registry.AIProfile(),
			HumanAgents: registry.HumanProfiles(),
			Success:     true,
		}, logger)
	}
}
