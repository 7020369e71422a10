package gptsm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/wordahead-backend/internal/provider"
)

const maxErrorBody = 4 << 10

// Provider scores paragraphs through a GP-TSM sidecar service.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the sidecar at baseURL. apiKey is
// forwarded as a bearer token; a zero timeout disables the client timeout.
func NewProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "gptsm"),
	}
}

// Probe checks that the sidecar answers GET /health with a 2xx status.
func (p *Provider) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("gptsm: create probe request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gptsm: probe: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gptsm: probe: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// ProcessParagraph sends text to the sidecar and returns the scored tokens
// in the order the sidecar produced them. Failures are not retried.
func (p *Provider) ProcessParagraph(ctx context.Context, text string) ([]provider.WordImportance, error) {
	payload, err := json.Marshal(apiRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("gptsm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/process-paragraph", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gptsm: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	p.log.DebugContext(ctx, "gptsm request", slog.Int("text_len", len(text)))

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "gptsm request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("gptsm: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("gptsm: decode json: %w", err)
	}

	result := make([]provider.WordImportance, 0, len(body.Words))
	for _, w := range body.Words {
		result = append(result, provider.WordImportance{Word: w.Word, Importance: w.Importance})
	}

	p.log.DebugContext(ctx, "gptsm response",
		slog.Int("status", resp.StatusCode),
		slog.Int("words", len(result)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// statusError builds an error from a non-200 response, preferring the
// sidecar's own error message when it sent one.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body apiError
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return fmt.Errorf("gptsm: unexpected status %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("gptsm: unexpected status %d", resp.StatusCode)
}
