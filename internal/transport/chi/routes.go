package chi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	Health(w http.ResponseWriter, r *http.Request)
	// (GET /checkhealth)
	CheckHealth(w http.ResponseWriter, r *http.Request)
	// (POST /refresh_data)
	RefreshData(w http.ResponseWriter, r *http.Request)
	// (POST /refresh_synonyms)
	RefreshSynonyms(w http.ResponseWriter, r *http.Request)
	// (GET /all_docs)
	ListAllDocs(w http.ResponseWriter, r *http.Request, params ListAllDocsParams)
	// (GET /{subject}/{query})
	FindCommand(w http.ResponseWriter, r *http.Request, subject string, query string)
	// (GET /guide/{subject}/{query})
	FindGuide(w http.ResponseWriter, r *http.Request, subject string, query string)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// ListAllDocsParams defines parameters for ListAllDocs.
type ListAllDocsParams struct {
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// MiddlewareFunc wraps a single operation handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts HTTP requests to typed handler calls.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

// InvalidParamFormatError reports a parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

func (siw *ServerInterfaceWrapper) wrap(h http.Handler) http.Handler {
	for _, middleware := range siw.HandlerMiddlewares {
		h = middleware(h)
	}
	return h
}

// Health operation middleware.
func (siw *ServerInterfaceWrapper) Health(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.Health)).ServeHTTP(w, r)
}

// CheckHealth operation middleware.
func (siw *ServerInterfaceWrapper) CheckHealth(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.CheckHealth)).ServeHTTP(w, r)
}

// RefreshData operation middleware.
func (siw *ServerInterfaceWrapper) RefreshData(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.RefreshData)).ServeHTTP(w, r)
}

// RefreshSynonyms operation middleware.
func (siw *ServerInterfaceWrapper) RefreshSynonyms(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.RefreshSynonyms)).ServeHTTP(w, r)
}

// ListAllDocs operation middleware.
func (siw *ServerInterfaceWrapper) ListAllDocs(w http.ResponseWriter, r *http.Request) {
	var params ListAllDocsParams

	err := runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	siw.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListAllDocs(w, r, params)
	})).ServeHTTP(w, r)
}

// FindCommand operation middleware.
func (siw *ServerInterfaceWrapper) FindCommand(w http.ResponseWriter, r *http.Request) {
	subject, query, ok := siw.bindSubjectQuery(w, r)
	if !ok {
		return
	}

	siw.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.FindCommand(w, r, subject, query)
	})).ServeHTTP(w, r)
}

// FindGuide operation middleware.
func (siw *ServerInterfaceWrapper) FindGuide(w http.ResponseWriter, r *http.Request) {
	subject, query, ok := siw.bindSubjectQuery(w, r)
	if !ok {
		return
	}

	siw.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.FindGuide(w, r, subject, query)
	})).ServeHTTP(w, r)
}

// Metrics operation middleware.
func (siw *ServerInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	siw.wrap(http.HandlerFunc(siw.Handler.Metrics)).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) bindSubjectQuery(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	var subject, query string
	opts := runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}

	err := runtime.BindStyledParameterWithOptions("simple", "subject", escapedParam(r, "subject"), &subject, opts)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "subject", Err: err})
		return "", "", false
	}

	err = runtime.BindStyledParameterWithOptions("simple", "query", escapedParam(r, "query"), &query, opts)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "query", Err: err})
		return "", "", false
	}

	return subject, query, true
}

// escapedParam returns a path parameter in its escaped form. chi matches on
// RawPath when it is set and on the decoded Path otherwise, so the value is
// re-escaped in the latter case and the binder decodes it exactly once.
func escapedParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return url.PathEscape(v)
	}
	return v
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.Health)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/checkhealth", wrapper.CheckHealth)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/metrics", wrapper.Metrics)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/refresh_data", wrapper.RefreshData)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/refresh_synonyms", wrapper.RefreshSynonyms)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/all_docs", wrapper.ListAllDocs)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/guide/{subject}/{query}", wrapper.FindGuide)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/{subject}/{query}", wrapper.FindCommand)
	})

	return r
}
