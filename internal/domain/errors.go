package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrDefinitionParse = errors.New("definition parse error")
	ErrUnknownParser   = errors.New("unknown parser")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DefinitionParseError reports a language definition document that could
// not be decoded into a key-value mapping.
type DefinitionParseError struct {
	Source string
	Err    error
}

func (e *DefinitionParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parse definition: %v", e.Err)
	}
	return fmt.Sprintf("parse definition %s: %v", e.Source, e.Err)
}

func (e *DefinitionParseError) Unwrap() error { return e.Err }

func (e *DefinitionParseError) Is(target error) bool { return target == ErrDefinitionParse }

// UnknownParserError reports a parser type with no registered implementation.
type UnknownParserError struct {
	Tag string
}

func (e *UnknownParserError) Error() string {
	return fmt.Sprintf("unknown parser type %q", e.Tag)
}

func (e *UnknownParserError) Is(target error) bool { return target == ErrUnknownParser }
