package model

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Param   string            `json:"param"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FieldErrors returns the per-field messages, falling back to Param/Message
// for errors raised against a single field.
func (e *ValidationError) FieldErrors() map[string]string {
	if len(e.Fields) > 0 {
		return e.Fields
	}

	if e.Param == "" {
		return map[string]string{"message": e.Message}
	}

	return map[string]string{e.Param: e.Message}
}

type ErrorKind string

const (
	ErrKindStorage     ErrorKind = "STORAGE_ERROR"
	ErrKindPersistence ErrorKind = "PERSISTENCE_ERROR"
	ErrKindConflict    ErrorKind = "CONFLICT_ERROR"
)

// OperationError is an infrastructure failure that happened after the input
// was accepted. Kind tells callers which layer failed.
type OperationError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}

	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &OperationError{Kind: ErrKindStorage, Op: op, Err: err}
}

func NewPersistenceError(op string, err error) error {
	return &OperationError{Kind: ErrKindPersistence, Op: op, Err: err}
}

func NewConflictError(op string, err error) error {
	return &OperationError{Kind: ErrKindConflict, Op: op, Err: err}
}

func IsErrorKind(err error, kind ErrorKind) bool {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind == kind
	}

	return false
}
