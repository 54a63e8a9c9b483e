package main

import (
	"encoding/json"
	"net/http"
)

// Machine-readable api error codes carried by every failure envelope.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// APIError is the data model sent when an error occurred during
// request processing. Code identifies the error kind so clients
// never have to match on the message text.
type APIError struct {
	RequestID string      `json:"requestid"`
	Status    int         `json:"status"`
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// APIResponse is the data model sent when a request succeed. The
// total field is only set on list responses.
type APIResponse struct {
	RequestID string      `json:"requestid"`
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Total     *int        `json:"total,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func NewAPIError(requestid string, status int, code, message string, details interface{}) *APIError {
	return &APIError{
		RequestID: requestid,
		Status:    status,
		Code:      code,
		Message:   message,
		Details:   details,
	}
}

func GenericResponse(requestid string, status int, message string, total *int, data interface{}) *APIResponse {
	return &APIResponse{
		RequestID: requestid,
		Status:    status,
		Message:   message,
		Total:     total,
		Data:      data,
	}
}

// WriteErrorResponse is used to send an error response to the client.
func WriteErrorResponse(w http.ResponseWriter, errResp *APIError) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(errResp.Status)
	return json.NewEncoder(w).Encode(errResp)
}

// WriteResponse is used to send a success api response to the client.
func WriteResponse(w http.ResponseWriter, resp *APIResponse) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(resp.Status)
	return json.NewEncoder(w).Encode(resp)
}

// statusRecorder wraps http.ResponseWriter to record the final status
// code of each response for the per-status statistics.
type statusRecorder struct {
	http.ResponseWriter
	code  int
	wrote bool
}

// newStatusRecorder provides a recorder with 200 as default status code.
func newStatusRecorder(rw http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: rw, code: http.StatusOK}
}

// WriteHeader records the first status code written.
func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.wrote {
		sr.code = code
		sr.wrote = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

// Status returns the recorded status code.
func (sr *statusRecorder) Status() int {
	return sr.code
}

// Unwrap returns the native response writer and is used by
// the http.ResponseController during its operation.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
