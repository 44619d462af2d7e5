package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cmdhint/internal/metrics"
)

// RouterConfig holds the cross-cutting settings of the HTTP stack.
type RouterConfig struct {
	APIKeys        []string
	AllowedOrigins []string
}

// NewRouter mounts the server behind the standard middleware chain.
func NewRouter(server ServerInterface, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(logger))
	r.Use(CORSMiddleware(cfg.AllowedOrigins))
	r.Use(BearerAuthMiddleware(cfg.APIKeys))
	r.Use(metrics.Middleware())

	return HandlerWithOptions(server, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			logger.Debug("bad request parameters", zap.Error(err))
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		},
	})
}
