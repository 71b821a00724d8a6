// Package apierror defines the JSON error envelopes the API returns.
// Handlers never serialize raw service errors; everything a client sees
// passes through one of these two shapes.
package apierror

// APIError is the envelope for every 4xx/5xx response.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field failures from DTO validation,
// keyed by field name with the failing rule as value.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
