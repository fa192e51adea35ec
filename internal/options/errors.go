package options

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName reports a container or field name that is not a Go identifier.
	ErrInvalidName = errors.New("invalid name")
	// ErrDuplicateAttrName reports two fields of one container sharing an external name.
	ErrDuplicateAttrName = errors.New("duplicate attribute name")
)

// FieldError attaches container and field context to a field's failure.
type FieldError struct {
	Container string
	Field     string
	Err       error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Container, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ContainerError collects every failure found while resolving one container.
// Err is set when the container's own directives failed; Fields holds the
// per-field failures in field order.
type ContainerError struct {
	Container string
	Err       error
	Fields    []*FieldError
}

func (e *ContainerError) Error() string {
	var parts []string
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("%s: %v", e.Container, e.Err))
	}

	for _, fe := range e.Fields {
		parts = append(parts, fe.Error())
	}

	return strings.Join(parts, "; ")
}

// Unwrap exposes every collected error to errors.Is and errors.As.
func (e *ContainerError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields)+1)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	for _, fe := range e.Fields {
		errs = append(errs, fe)
	}

	return errs
}
