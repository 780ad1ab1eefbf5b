package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code. notFound is the detail sent for
// core.ErrNotFound.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	ctx := r.Context()
	logger := applog.FromContext(ctx)

	switch {
	case errors.Is(err, core.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
	case errors.Is(err, core.ErrNotFound):
		if notFound == "" {
			notFound = "Not Found"
		}
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: notFound})
	case errors.Is(err, core.ErrStoreUnavailable):
		logger.ErrorContext(ctx, "Store unavailable", applog.FieldPath, r.URL.Path, applog.FieldError, err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Detail: "store unavailable"})
	default:
		logger.ErrorContext(ctx, "Unhandled error", applog.FieldPath, r.URL.Path, applog.FieldError, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}
