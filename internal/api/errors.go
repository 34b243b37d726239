package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"random-word/internal/logger"
	"random-word/internal/wordsdb"
)

const (
	codeBadRequest = "bad_request"
	codeNotFound   = "not_found"
	codeInternal   = "internal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", "status", status, "message", message)
	}
	writeJSON(w, status, Error{Code: code, Message: message})
}

// writeDBError maps a database error to a response. Integrity errors mean
// the shipped data is broken; their details stay in the log.
func writeDBError(w http.ResponseWriter, r *http.Request, err error) {
	var ie *wordsdb.IntegrityError
	switch {
	case errors.Is(err, wordsdb.ErrUnknownVocabulary):
		writeError(w, r, http.StatusNotFound, codeNotFound, err.Error())
	case errors.As(err, &ie):
		logger.FromContext(r.Context()).Error("vocabulary integrity failure",
			"vocabulary", ie.Vocabulary, "stage", ie.Stage, "error", ie.Err)
		writeError(w, r, http.StatusInternalServerError, codeInternal, "vocabulary "+string(ie.Vocabulary)+" is unavailable")
	default:
		writeError(w, r, http.StatusInternalServerError, codeInternal, "internal error")
	}
}
