package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ListWordsParams defines parameters for ListWords.
type ListWordsParams struct {
	// Length keeps words that are exactly this many characters long.
	Length *int `form:"length,omitempty" json:"length,omitempty"`
	// StartsWith keeps words beginning with this single character.
	StartsWith *string `form:"startsWith,omitempty" json:"startsWith,omitempty"`
}

// RandomWordsParams defines parameters for RandomWords.
type RandomWordsParams struct {
	Length     *int    `form:"length,omitempty" json:"length,omitempty"`
	StartsWith *string `form:"startsWith,omitempty" json:"startsWith,omitempty"`
	// Count is the number of words to draw, with replacement. Defaults to 1.
	Count *int `form:"count,omitempty" json:"count,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List vocabularies with their index statistics
	// (GET /vocabularies)
	ListVocabularies(w http.ResponseWriter, r *http.Request)
	// List words of a vocabulary
	// (GET /vocabularies/{vocabulary}/words)
	ListWords(w http.ResponseWriter, r *http.Request, vocabulary string, params ListWordsParams)
	// Draw random words from a vocabulary
	// (GET /vocabularies/{vocabulary}/words/random)
	RandomWords(w http.ResponseWriter, r *http.Request, vocabulary string, params RandomWordsParams)
	// Liveness probe
	// (GET /healthz)
	Healthz(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts request parameters into typed arguments.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ListVocabularies operation middleware
func (siw *ServerInterfaceWrapper) ListVocabularies(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListVocabularies(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListWords operation middleware
func (siw *ServerInterfaceWrapper) ListWords(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "vocabulary" -------------
	var vocabulary string

	err = runtime.BindStyledParameterWithOptions("simple", "vocabulary", chi.URLParam(r, "vocabulary"), &vocabulary, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "vocabulary", Err: err})
		return
	}

	var params ListWordsParams

	// ------------- Optional query parameter "length" -------------

	err = runtime.BindQueryParameter("form", true, false, "length", r.URL.Query(), &params.Length)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "length", Err: err})
		return
	}

	// ------------- Optional query parameter "startsWith" -------------

	err = runtime.BindQueryParameter("form", true, false, "startsWith", r.URL.Query(), &params.StartsWith)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "startsWith", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListWords(w, r, vocabulary, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// RandomWords operation middleware
func (siw *ServerInterfaceWrapper) RandomWords(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "vocabulary" -------------
	var vocabulary string

	err = runtime.BindStyledParameterWithOptions("simple", "vocabulary", chi.URLParam(r, "vocabulary"), &vocabulary, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "vocabulary", Err: err})
		return
	}

	var params RandomWordsParams

	// ------------- Optional query parameter "length" -------------

	err = runtime.BindQueryParameter("form", true, false, "length", r.URL.Query(), &params.Length)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "length", Err: err})
		return
	}

	// ------------- Optional query parameter "startsWith" -------------

	err = runtime.BindQueryParameter("form", true, false, "startsWith", r.URL.Query(), &params.StartsWith)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "startsWith", Err: err})
		return
	}

	// ------------- Optional query parameter "count" -------------

	err = runtime.BindQueryParameter("form", true, false, "count", r.URL.Query(), &params.Count)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "count", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.RandomWords(w, r, vocabulary, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// Healthz operation middleware
func (siw *ServerInterfaceWrapper) Healthz(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.Healthz(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// InvalidParamFormatError is reported when a parameter cannot be bound to its
// declared type.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching the API.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching the API, using
// the provided router as base.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/vocabularies", wrapper.ListVocabularies)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/vocabularies/{vocabulary}/words", wrapper.ListWords)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/vocabularies/{vocabulary}/words/random", wrapper.RandomWords)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/healthz", wrapper.Healthz)
	})

	return r
}
