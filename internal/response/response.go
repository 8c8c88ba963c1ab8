// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/drivedrop/service/internal/apperr"
)

// ErrorBody is the body of every failed request.
type ErrorBody struct {
	Error string      `json:"error" example:"Server configuration error: GOOGLE_DRIVE_FOLDER_ID environment variable is not set"`
	Code  apperr.Kind `json:"code"  example:"CONFIGURATION_ERROR"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusOK, payload)
}

// Error writes an error body with the status derived from kind.
func Error(w http.ResponseWriter, kind apperr.Kind, message string) {
	JSON(w, kind.Status(), ErrorBody{Error: message, Code: kind})
}

// FromError writes err, using its kind when it is an *apperr.Error.
func FromError(w http.ResponseWriter, err error) {
	Error(w, apperr.KindOf(err), err.Error())
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, apperr.KindInvalidInput, message)
}
