package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordahead-backend/internal/adapter/provider/gptsm"
	"github.com/heartmarshall/wordahead-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/wordahead-backend/internal/config"
	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"github.com/heartmarshall/wordahead-backend/internal/service/scoring"
	"github.com/heartmarshall/wordahead-backend/internal/service/translation"
	"github.com/heartmarshall/wordahead-backend/internal/transport/rest"
)

// Components are the services assembled once at startup. The scorer choice
// recorded in Capabilities does not change for the lifetime of the process.
type Components struct {
	Capabilities domain.Capabilities
	Scoring      *scoring.Service
	Translation  *translation.Service
}

// Build detects the external scorer and wires the services. The GP-TSM
// sidecar is used only when it answers its probe and an OpenAI key is
// configured; otherwise the length heuristic takes over.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	caps := domain.Capabilities{CredentialConfigured: cfg.OpenAI.Configured()}

	var external *gptsm.Provider
	if cfg.Scorer.Enabled() {
		external = gptsm.NewProvider(cfg.Scorer.URL, cfg.OpenAI.APIKey, cfg.Scorer.Timeout, logger)

		probeCtx, cancel := context.WithTimeout(ctx, cfg.Scorer.ProbeTimeout)
		err := external.Probe(probeCtx)
		cancel()

		if err != nil {
			logger.Warn("GP-TSM not available, using mock scoring", slog.String("error", err.Error()))
		} else {
			caps.ScorerAvailable = true
		}
	} else {
		logger.Warn("GP-TSM not configured, using mock scoring")
	}

	if !caps.CredentialConfigured {
		logger.Warn("OPENAI_API_KEY not set")
	}

	var scoringSvc *scoring.Service
	if caps.UseExternalScorer() {
		scoringSvc = scoring.NewService(logger, external, false)
	} else {
		scoringSvc = scoring.NewService(logger, scoring.NewHeuristic(), true)
	}

	stub, err := translate.NewStub()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	return &Components{
		Capabilities: caps,
		Scoring:      scoringSvc,
		Translation:  translation.NewService(logger, stub),
	}, nil
}

// NewHandler returns the HTTP handler serving c.
func NewHandler(cfg *config.Config, c *Components, logger *slog.Logger) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Scoring:      c.Scoring,
		Translation:  c.Translation,
		Capabilities: c.Capabilities,
		CORS:         cfg.CORS,
		Debug:        cfg.Server.Debug,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       logger,
	})
}

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, cfg.Server.Debug)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("debug", cfg.Server.Debug),
	)

	components, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("services ready",
		slog.Bool("gp_tsm_available", components.Capabilities.ScorerAvailable),
		slog.Bool("openai_configured", components.Capabilities.CredentialConfigured),
		slog.Bool("using_mock", components.Scoring.UsingMock()),
		slog.String("frontend_url", cfg.CORS.AllowedOrigins),
	)

	return Serve(ctx, cfg.Server, NewHandler(cfg, components, logger), logger)
}

// Serve runs an HTTP server for handler until ctx is cancelled, then shuts
// it down gracefully within cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
