package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/krongr/adboard/internal/redact"
)

// ErrorResponse defines the standard error envelope. Every failure path in
// the API renders this shape. Reason is a plain string for most errors and a
// list of FieldProblem values for validation failures.
type ErrorResponse struct {
	Status  string `json:"status"`
	Reason  any    `json:"reason"`
	TraceID string `json:"trace_id,omitempty"`
}

// StatusResponse is the fixed success body for mutations that return no data.
type StatusResponse struct {
	Status string `json:"status"`
}

// OK is the canonical success body: {"status":"ok"}.
var OK = StatusResponse{Status: "ok"}

// RespondWithJSON writes a JSON response with the given status code and data.
// HTML escaping is disabled so non-ASCII text in ads passes through verbatim.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the JSON error envelope with the given status code
// and reason. It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, reason any) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Status:  "error",
		Reason:  reason,
		TraceID: traceID,
	}

	slog.Debug("sending error response",
		"status_code", status,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, errorResponse)
}

// RespondWithErrorAndLog writes the JSON error envelope and also logs the
// detailed error. This is used when the full error should be visible in the
// logs while the client only sees a sanitized reason.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - 4xx errors: logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	reason any,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}

	// Only the redacted error text goes into the logs; the raw error never
	// reaches the client at all.
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", redact.Error(err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Status:  "error",
		Reason:  reason,
		TraceID: traceID,
	})
}
