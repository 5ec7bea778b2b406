package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes used in the response envelope
const (
	CodeInvalidJSON         = "INVALID_JSON"
	CodeMissingFields       = "MISSING_FIELDS"
	CodeInvalidDate         = "INVALID_DATE"
	CodeInvalidRange        = "INVALID_RANGE"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeCapacityUnavailable = "CAPACITY_UNAVAILABLE"
	CodeNotFound            = "NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// Every endpoint answers with the same envelope:
// {"success": true, "data": ...} or
// {"success": false, "error": {"code": ..., "message": ...}}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON writes a success envelope
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeEnvelope(w, status, envelope{Success: true, Data: data})
}

// RespondError writes an error envelope
func RespondError(w http.ResponseWriter, status int, code, message string) {
	writeEnvelope(w, status, envelope{Success: false, Error: &errorBody{Code: code, Message: message}})
}

// RespondBadRequest writes a 400 error envelope
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondNotFound writes a 404 error envelope
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondConflict writes a 409 error envelope
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondInternalError writes a generic 500 error envelope
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError,
		"Something went wrong on our side. Please try again or call 01753 682707.")
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// DecodeJSON decodes a JSON request body, rejecting unknown syntax but
// not unknown fields (the wizard evolves independently of the API).
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}
