package domain

import (
	"fmt"
	"strings"
)

// ValidationReason classifies why a record was rejected on save.
type ValidationReason string

const (
	// ReasonMissingFields means at least one field was empty.
	ReasonMissingFields ValidationReason = "missing_fields"

	// ReasonMalformedDate means the date did not have the YYYY-MM-DD shape.
	ReasonMalformedDate ValidationReason = "malformed_date"
)

// ValidationError reports user input that cannot be saved.
// It is recoverable: the save is aborted and the edit buffer is kept.
type ValidationError struct {
	Reason ValidationReason
	Fields []Field
}

// Error implements error.
func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	switch e.Reason {
	case ReasonMissingFields:
		return fmt.Sprintf("validation failed: missing required fields: %s", strings.Join(names, ", "))
	case ReasonMalformedDate:
		return "validation failed: date must have the form YYYY-MM-DD"
	default:
		return "validation failed"
	}
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Message returns the fixed user-facing text for the failure.
func (e *ValidationError) Message() string {
	switch e.Reason {
	case ReasonMalformedDate:
		return "Formato de data inválido. Utilize o formato YYYY-MM-DD."
	default:
		return "Todos os campos são obrigatórios. Preencha todos antes de salvar."
	}
}
