// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for the session (web) API.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// AgentError is the error envelope for the machine-to-machine /api/agent and
// /api/chat surface: {ok:false, error}.
type AgentError struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func NewAgent(msg string) *AgentError {
	return &AgentError{OK: false, Error: msg}
}
