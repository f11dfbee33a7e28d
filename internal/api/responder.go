package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
)

const (
	internalErrorKind = "InternalError"
	errorKindHeader   = "X-Error"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, kind string, err error, message string, fields map[string]string) {
	canonlog.AddRequestError(r.Context(), err)
	canonlog.AddRequestFields(r.Context(), map[string]any{
		"error_kind": kind,
	})
	w.Header().Set(errorKindHeader, kind)
	sanitizedMessage := sanitizeErrorMessage(message, statusCode)
	renderJSON(w, statusCode, NewErrorEnvelope(statusCode, kind, sanitizedMessage, fields))
}

func sanitizeErrorMessage(message string, statusCode int) string {
	lowerMsg := strings.ToLower(message)

	if strings.Contains(lowerMsg, "sql") ||
		strings.Contains(lowerMsg, "database") ||
		strings.Contains(lowerMsg, "postgres") {
		if statusCode >= 500 {
			return "An internal error occurred"
		}
		return "Invalid request"
	}

	if statusCode >= 500 && statusCode != http.StatusServiceUnavailable && statusCode != http.StatusGatewayTimeout {
		return "An internal error occurred"
	}

	return message
}

func Success(w http.ResponseWriter, message string, data any) {
	renderJSON(w, http.StatusOK, NewEnvelope(message, data))
}

func Created(w http.ResponseWriter, message string, data any) {
	renderJSON(w, http.StatusCreated, NewEnvelope(message, data))
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, r *http.Request, kind string, err error, message string, fields map[string]string) {
	renderError(w, r, http.StatusBadRequest, kind, err, message, fields)
}

func NotFound(w http.ResponseWriter, r *http.Request, kind string, err error, message string) {
	renderError(w, r, http.StatusNotFound, kind, err, message, nil)
}

func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusInternalServerError, internalErrorKind, err, message, nil)
}

func ServiceUnavailable(w http.ResponseWriter, r *http.Request, kind string, err error, message string) {
	renderError(w, r, http.StatusServiceUnavailable, kind, err, message, nil)
}

func GatewayTimeout(w http.ResponseWriter, r *http.Request, kind string, err error, message string) {
	renderError(w, r, http.StatusGatewayTimeout, kind, err, message, nil)
}
