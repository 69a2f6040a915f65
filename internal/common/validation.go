package common

// ValidationError identifies the offending field and carries the exact
// client-facing message. The messages are part of the API contract and must
// not be reworded.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
