package rest

import (
	"net/http"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
)

// HealthHandler serves the health endpoint.
type HealthHandler struct {
	caps domain.Capabilities
}

// NewHealthHandler creates a HealthHandler reporting caps.
func NewHealthHandler(caps domain.Capabilities) *HealthHandler {
	return &HealthHandler{caps: caps}
}

// HealthResponse is the JSON response for /api/health.
type HealthResponse struct {
	Status           string `json:"status"`
	GPTSMAvailable   bool   `json:"gp_tsm_available"`
	OpenAIConfigured bool   `json:"openai_configured"`
}

// Health always returns 200; degraded scoring is reported through the
// flags, not the status code.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:           "healthy",
		GPTSMAvailable:   h.caps.ScorerAvailable,
		OpenAIConfigured: h.caps.CredentialConfigured,
	})
}
