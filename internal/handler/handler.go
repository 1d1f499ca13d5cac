package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, code and
// message, echoing the request's correlation ID when one was assigned.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	correlationID := w.Header().Get(middleware.RequestIDHeader)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message, CorrelationID: correlationID})
}

// writeServiceError maps a service error onto an HTTP status. Errors that are
// not domain errors are reported as 500 without exposing their text.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var de *model.DomainError
	if !errors.As(err, &de) {
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}
	writeError(w, statusFor(err), de.Code, de.Message, logger)
}

// statusFor returns the HTTP status for a domain error.
func statusFor(err error) int {
	if model.IsNotFound(err) {
		return http.StatusNotFound
	}
	switch model.ErrorCode(err) {
	case model.ErrCodeEmptyCart, model.ErrCodeInvalidQuantity, model.ErrCodeMissingField,
		model.ErrCodeInvalidJSON, model.ErrCodeInvalidID:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised, model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeOrderTokenExhausted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// callerID returns the authenticated user, writing a 401 when the request
// carries none.
func callerID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", logger)
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses the named path wildcard as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid "+name+" format", logger)
		return uuid.Nil, false
	}
	return id, true
}

// decodeJSON decodes the request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}
