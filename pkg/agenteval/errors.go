package agenteval

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotSupported is returned by operations the evaluation service does
// not implement, such as cancelling an evaluation or listing agents.
var ErrNotSupported = errors.New("operation not supported by the evaluation service")

// ErrorCode classifies a failed service call.
type ErrorCode string

const (
	// CodeAuth marks a rejected API key (HTTP 401).
	CodeAuth ErrorCode = "auth_error"
	// CodeNotFound marks a missing resource (HTTP 404).
	CodeNotFound ErrorCode = "not_found"
	// CodeServer marks a service-side failure (HTTP 5xx).
	CodeServer ErrorCode = "server_error"
	// CodeTimeout marks a request that timed out in transit.
	CodeTimeout ErrorCode = "timeout"
	// CodeConnection marks a transport failure before a response arrived.
	CodeConnection ErrorCode = "connection_error"
	// CodeRequest marks any other rejected or malformed request.
	CodeRequest ErrorCode = "request_error"
)

// ServiceError reports a failed call to the evaluation service.
// HTTPStatus is zero when the failure happened before a response arrived.
type ServiceError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *ServiceError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s (http %d): %s", e.Code, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// EvaluationFailedError reports an evaluation that reached the failed state.
type EvaluationFailedError struct {
	EvaluationID string
}

func (e *EvaluationFailedError) Error() string {
	return fmt.Sprintf("evaluation %s failed", e.EvaluationID)
}

// WaitTimeoutError reports a polling window that closed before the
// evaluation reached a terminal state. The remote evaluation keeps running.
type WaitTimeoutError struct {
	EvaluationID string
	Timeout      time.Duration
}

func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("evaluation %s did not complete within %s", e.EvaluationID, e.Timeout)
}

// InconsistentStateError reports an evaluation the service marked completed
// without attaching a results payload. This is a service contract violation.
type InconsistentStateError struct {
	EvaluationID string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("evaluation %s completed without results", e.EvaluationID)
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeServiceError(status int, body []byte) *ServiceError {
	msg := fmt.Sprintf("http %d", status)
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		msg = resp.Error
	}
	return &ServiceError{Code: codeForStatus(status), Message: msg, HTTPStatus: status}
}

func codeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusUnauthorized:
		return CodeAuth
	case status == http.StatusNotFound:
		return CodeNotFound
	case status >= 500:
		return CodeServer
	default:
		return CodeRequest
	}
}
