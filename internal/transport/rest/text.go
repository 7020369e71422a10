package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"github.com/heartmarshall/wordahead-backend/internal/service/scoring"
)

type scoringService interface {
	ProcessText(ctx context.Context, input scoring.ProcessTextInput) (*domain.ScoringResult, error)
}

// TextHandler serves the text scoring endpoint.
type TextHandler struct {
	svc scoringService
	log *slog.Logger
}

// NewTextHandler creates a TextHandler.
func NewTextHandler(svc scoringService, logger *slog.Logger) *TextHandler {
	return &TextHandler{svc: svc, log: logger.With("handler", "text")}
}

type processTextRequest struct {
	Text *string `json:"text"`
}

// WordScoreResponse is one scored token.
type WordScoreResponse struct {
	Word       string  `json:"word"`
	Importance int     `json:"importance"`
	Opacity    float64 `json:"opacity"`
}

// ProcessTextResponse is the JSON body of a successful scoring request.
type ProcessTextResponse struct {
	Words     []WordScoreResponse `json:"words"`
	UsingMock bool                `json:"using_mock"`
	Warning   *string             `json:"warning"`
}

// ProcessText handles POST /api/process-text.
func (h *TextHandler) ProcessText(w http.ResponseWriter, r *http.Request) {
	var req processTextRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ProcessText(r.Context(), scoring.ProcessTextInput{Text: req.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, NewProcessTextResponse(result))
}

// NewProcessTextResponse converts a scoring result to its wire form.
func NewProcessTextResponse(result *domain.ScoringResult) ProcessTextResponse {
	words := make([]WordScoreResponse, 0, len(result.Words))
	for _, ws := range result.Words {
		words = append(words, WordScoreResponse{
			Word:       ws.Word,
			Importance: int(ws.Importance),
			Opacity:    ws.Opacity,
		})
	}
	return ProcessTextResponse{
		Words:     words,
		UsingMock: result.UsingMock,
		Warning:   result.Warning,
	}
}
