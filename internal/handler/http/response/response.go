package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the shape of every failed response. The client shows Message
// in its toast.
type ErrorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageBody is the body of a success that only confirms an action.
type MessageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response encode error", "error", err)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func SuccessWithMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageBody{Message: message})
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// File streams a generated download.
func File(w http.ResponseWriter, fileName, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		slog.Error("response write error", "error", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	writeJSON(w, statusCode, ErrorBody{
		Message: message,
		Code:    code,
		Details: details,
	})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func ValidationError(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", message, details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, "CONFLICT", message, nil)
}

func ServiceUnavailable(w http.ResponseWriter, message string) {
	writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}
