package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordahead-backend/internal/config"
	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"github.com/heartmarshall/wordahead-backend/internal/transport/middleware"
)

// RouterDeps are the collaborators the HTTP boundary needs.
type RouterDeps struct {
	Scoring      scoringService
	Translation  translationService
	Capabilities domain.Capabilities
	CORS         config.CORSConfig
	Debug        bool
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewRouter builds the full HTTP handler: routes, CORS on /api/* and the
// recovery, request-id and logging middleware around everything.
func NewRouter(d RouterDeps) http.Handler {
	health := NewHealthHandler(d.Capabilities)
	text := NewTextHandler(d.Scoring, d.Logger)
	translate := NewTranslateHandler(d.Translation, d.Logger)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/health", health.Health)
	api.HandleFunc("POST /api/process-text", text.ProcessText)
	api.HandleFunc("GET /api/translate/word/{word}", translate.Word)
	api.HandleFunc("POST /api/translate/sentence", translate.Sentence)

	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.CORS(d.CORS)(limitBody(d.MaxBodyBytes)(api)))

	return middleware.Chain(
		middleware.Recovery(d.Logger, d.Debug),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
	)(mux)
}

func limitBody(n int64) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
