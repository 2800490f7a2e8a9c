package common

import (
	"encoding/json"
	"net/http"

	apperrors "shoplist-backend/pkg/errors"
)

// ErrorDetail is a single entry in the uuAppErrorMap
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorMap maps error codes to their details; empty on success
type ErrorMap map[string]ErrorDetail

// NewErrorMap builds an error map with a single entry
func NewErrorMap(code, message string) ErrorMap {
	return ErrorMap{
		code: {
			Type:    "Error",
			Message: message,
		},
	}
}

// Envelope is the uuApp-style response wrapper. Every response, success or
// failure, carries the awid tag and an uuAppErrorMap so clients can inspect
// for error keys uniformly.
type Envelope map[string]interface{}

// NewEnvelope builds a success envelope with the given payload fields
func NewEnvelope(awid string, fields map[string]interface{}) Envelope {
	env := Envelope{
		"awid":          awid,
		"uuAppErrorMap": ErrorMap{},
	}
	for k, v := range fields {
		env[k] = v
	}
	return env
}

// RespondJSON writes an envelope as JSON
func RespondJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// RespondSuccess writes a 200 success envelope
func RespondSuccess(w http.ResponseWriter, awid string, fields map[string]interface{}) {
	RespondJSON(w, http.StatusOK, NewEnvelope(awid, fields))
}

// RespondError writes a failure envelope carrying only the error map
func RespondError(w http.ResponseWriter, status int, awid, code, message string) {
	RespondJSON(w, status, Envelope{
		"awid":          awid,
		"uuAppErrorMap": NewErrorMap(code, message),
	})
}

// RespondAppError maps an application error onto the envelope using the
// error's HTTP status and code
func RespondAppError(w http.ResponseWriter, awid, fallbackCode string, err error) {
	status := apperrors.HTTPStatusFor(err)
	code := fallbackCode
	message := "Internal error."

	if appErr := apperrors.GetAppError(err); appErr != nil {
		message = appErr.Message
		if appErr.Code != "" {
			code = appErr.Code
		}
	}

	RespondError(w, status, awid, code, message)
}

// ParseJSONBody parses a JSON request body with a size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return err
	}

	return nil
}
