package domain

import "fmt"

// ValidationError indica que um campo da entidade violou uma restrição.
// O campo ofensor é sempre identificado para o cliente.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo '%s' inválido: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
