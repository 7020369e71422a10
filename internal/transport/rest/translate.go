package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"github.com/heartmarshall/wordahead-backend/internal/service/translation"
)

type translationService interface {
	TranslateWord(ctx context.Context, input translation.TranslateWordInput) (*domain.WordTranslation, error)
	TranslateSentence(ctx context.Context, input translation.TranslateSentenceInput) (*domain.SentenceTranslation, error)
}

// TranslateHandler serves the translation endpoints.
type TranslateHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translationService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

// ExampleSentenceResponse is an English/Hebrew example pair.
type ExampleSentenceResponse struct {
	English string `json:"english"`
	Hebrew  string `json:"hebrew"`
}

// WordTranslationResponse is the JSON body of the word endpoint.
type WordTranslationResponse struct {
	Word             string                    `json:"word"`
	Translation      string                    `json:"translation"`
	Transliteration  string                    `json:"transliteration"`
	Root             string                    `json:"root"`
	CEFRLevel        string                    `json:"cefr_level"`
	ExampleSentences []ExampleSentenceResponse `json:"example_sentences"`
	Note             string                    `json:"note"`
}

type translateSentenceRequest struct {
	Sentence string `json:"sentence"`
}

// SentenceTranslationResponse is the JSON body of the sentence endpoint.
type SentenceTranslationResponse struct {
	English         string `json:"english"`
	Hebrew          string `json:"hebrew"`
	Transliteration string `json:"transliteration"`
	Note            string `json:"note"`
}

// Word handles GET /api/translate/word/{word}.
func (h *TranslateHandler) Word(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.TranslateWord(r.Context(), translation.TranslateWordInput{
		Word: r.PathValue("word"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, NewWordTranslationResponse(result))
}

// Sentence handles POST /api/translate/sentence. A missing sentence
// field is treated as the empty string.
func (h *TranslateHandler) Sentence(w http.ResponseWriter, r *http.Request) {
	var req translateSentenceRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.TranslateSentence(r.Context(), translation.TranslateSentenceInput{
		Sentence: req.Sentence,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, NewSentenceTranslationResponse(result))
}

// NewWordTranslationResponse converts a word record to its wire form.
func NewWordTranslationResponse(result *domain.WordTranslation) WordTranslationResponse {
	examples := make([]ExampleSentenceResponse, 0, len(result.ExampleSentences))
	for _, ex := range result.ExampleSentences {
		examples = append(examples, ExampleSentenceResponse{English: ex.English, Hebrew: ex.Hebrew})
	}
	return WordTranslationResponse{
		Word:             result.Word,
		Translation:      result.Translation,
		Transliteration:  result.Transliteration,
		Root:             result.Root,
		CEFRLevel:        result.CEFRLevel,
		ExampleSentences: examples,
		Note:             result.Note,
	}
}

// NewSentenceTranslationResponse converts a sentence translation to its
// wire form.
func NewSentenceTranslationResponse(result *domain.SentenceTranslation) SentenceTranslationResponse {
	return SentenceTranslationResponse{
		English:         result.English,
		Hebrew:          result.Hebrew,
		Transliteration: result.Transliteration,
		Note:            result.Note,
	}
}
