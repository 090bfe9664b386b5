package services

// Service error types, mapped to HTTP statuses at the handler boundary.

// ConfigurationError means the upstream credential is missing. Operator-fixable,
// never caused by the visitor.
type ConfigurationError struct{ Message string }

func (e *ConfigurationError) Error() string { return e.Message }

// ValidationError means the request was structurally valid JSON but is missing
// a required field.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError means an external collaborator rejected or failed the call.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }
