// Package chi exposes the service over HTTP with a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	healthuc "github.com/kailas-cloud/cmdhint/internal/usecase/health"
)

// Plain-text bodies for searches without a hit.
const (
	msgNoCommand = "No command found"
	msgNoGuide   = "No guide found"
)

// errorHandler maps a domain error to a status and client message. ok is false when it does not apply.
type errorHandler func(err error) (status int, msg string, ok bool)

// Server implements ServerInterface.
type Server struct {
	search        Searcher
	loader        Loader
	documents     DocumentLister
	health        HealthChecker
	metrics       http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	search Searcher,
	loader Loader,
	documents DocumentLister,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:    search,
		loader:    loader,
		documents: documents,
		health:    health,
		metrics:   promhttp.Handler(),
		logger:    logger,
		errorHandlers: []errorHandler{
			sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, true),
			sentinelHandler(domain.ErrInvalidDocument, http.StatusBadRequest, true),
			sentinelHandler(domain.ErrNotFound, http.StatusNotFound, true),
			sentinelHandler(domain.ErrSourceUnavailable, http.StatusInternalServerError, true),
		},
	}
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// CheckHealth handles GET /checkhealth.
func (s *Server) CheckHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	if report.Status != healthuc.Healthy {
		msg := "search engine unavailable"
		if report.Err != nil {
			msg = report.Err.Error()
		}
		s.logger.Warn("health check failed", zap.String("error", msg))
		writeJSON(w, http.StatusInternalServerError, checkHealthResponse{
			AppStatus:          statusResponse{Status: "error"},
			SearchEngineStatus: "unavailable",
			Error:              msg,
		})
		return
	}

	writeJSON(w, http.StatusOK, checkHealthResponse{
		AppStatus:          statusResponse{Status: string(report.Checks[healthuc.ComponentApp])},
		SearchEngineStatus: "available",
	})
}

// RefreshData handles POST /refresh_data.
func (s *Server) RefreshData(w http.ResponseWriter, r *http.Request) {
	res, err := s.loader.RefreshData(r.Context())
	if err != nil {
		s.writeJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshDataResponse{
		Message: "Bulk load completed",
		Count:   res.Commands,
		Guides:  res.Guides,
	})
}

// RefreshSynonyms handles POST /refresh_synonyms.
func (s *Server) RefreshSynonyms(w http.ResponseWriter, r *http.Request) {
	groups, err := s.loader.RefreshSynonyms(r.Context())
	if err != nil {
		s.writeJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshSynonymsResponse{Message: "Synonyms updated", Groups: groups})
}

// ListAllDocs handles GET /all_docs.
func (s *Server) ListAllDocs(w http.ResponseWriter, r *http.Request, params ListAllDocsParams) {
	page, err := s.documents.List(r.Context(), derefInt(params.Offset), derefInt(params.Limit))
	if err != nil {
		s.writeJSONError(w, err)
		return
	}

	results := page.Results
	if results == nil {
		results = []json.RawMessage{}
	}

	writeJSON(w, http.StatusOK, allDocsResponse{
		Results: results,
		Total:   len(results),
		Offset:  page.Offset,
		Limit:   page.Limit,
	})
}

// FindCommand handles GET /{subject}/{query}.
func (s *Server) FindCommand(w http.ResponseWriter, r *http.Request, subject, query string) {
	line, err := s.search.FindCommand(r.Context(), subject, query)
	if err != nil {
		s.writeTextError(w, err, msgNoCommand)
		return
	}
	writeText(w, http.StatusOK, line)
}

// FindGuide handles GET /guide/{subject}/{query}.
func (s *Server) FindGuide(w http.ResponseWriter, r *http.Request, subject, query string) {
	text, err := s.search.FindGuide(r.Context(), subject, query)
	if err != nil {
		s.writeTextError(w, err, msgNoGuide)
		return
	}
	writeText(w, http.StatusOK, text)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// verbose handlers pass the wrapped message to the client; others send the sentinel text only.
func sentinelHandler(sentinel error, status int, verbose bool) errorHandler {
	return func(err error) (int, string, bool) {
		if !errors.Is(err, sentinel) {
			return 0, "", false
		}
		if verbose {
			return status, err.Error(), true
		}
		return status, sentinel.Error(), true
	}
}

// resolveError runs the handler chain. Unmatched errors become a bare 500.
func (s *Server) resolveError(err error) (int, string) {
	for _, h := range s.errorHandlers {
		if status, msg, ok := h(err); ok {
			s.logger.Warn("domain error", zap.Int("status", status), zap.Error(err))
			return status, msg
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	return http.StatusInternalServerError, "internal error"
}

func (s *Server) writeJSONError(w http.ResponseWriter, err error) {
	status, msg := s.resolveError(err)
	writeError(w, status, msg)
}

// writeTextError answers searches; a miss gets the fixed notFound body.
func (s *Server) writeTextError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeText(w, http.StatusNotFound, notFound)
		return
	}
	status, msg := s.resolveError(err)
	writeText(w, status, msg)
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
