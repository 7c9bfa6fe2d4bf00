package api

import (
	"net/http"

	"github.com/wixenlabs/nova/internal/log"
)

// healthResponse is the fixed payload of the health probe.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// healthHandler answers liveness probes. It does not touch the model
// provider: a degraded process without a credential still reports healthy.
func healthHandler(version string, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "healthy",
			Service: "Nova AI Backend",
			Version: version,
		}, logger)
	}
}
