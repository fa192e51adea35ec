package directive

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is against the structured errors below.
var (
	ErrUnknownDirective   = errors.New("unknown directive")
	ErrValueShapeMismatch = errors.New("value shape mismatch")
	ErrSyntax             = errors.New("directive syntax error")
)

// UnknownDirectiveError reports a directive name outside the vocabulary of
// the element it is attached to.
type UnknownDirectiveError struct {
	Name string
	// Suggestion is the closest known directive name, if any was close enough.
	Suggestion string
}

func (e *UnknownDirectiveError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown directive %q (did you mean %q?)", e.Name, e.Suggestion)
	}

	return fmt.Sprintf("unknown directive %q", e.Name)
}

// Is matches ErrUnknownDirective.
func (e *UnknownDirectiveError) Is(target error) bool {
	return target == ErrUnknownDirective
}

// ShapeMismatchError reports a directive value that cannot be converted to
// the type its directive expects.
type ShapeMismatchError struct {
	Name string
	// Want describes the expected shape, e.g. "bool" or "path or string".
	Want string
	Got  Kind
	// Err is the underlying conversion failure, if any.
	Err error
}

func (e *ShapeMismatchError) Error() string {
	msg := fmt.Sprintf("directive %q: expected %s, got %s", e.Name, e.Want, kindLabel(e.Got))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is matches ErrValueShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrValueShapeMismatch
}

func (e *ShapeMismatchError) Unwrap() error {
	return e.Err
}

// SyntaxError reports malformed directive text.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid directives %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

// Is matches ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Code classifies err into a stable diagnostic code, or "" if err is not a
// directive error.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnknownDirective):
		return "unknown_directive"
	case errors.Is(err, ErrValueShapeMismatch):
		return "value_shape_mismatch"
	case errors.Is(err, ErrSyntax):
		return "directive_syntax"
	default:
		return ""
	}
}

// Name returns the directive name carried by err, or "".
func Name(err error) string {
	var unknown *UnknownDirectiveError
	if errors.As(err, &unknown) {
		return unknown.Name
	}

	var shape *ShapeMismatchError
	if errors.As(err, &shape) {
		return shape.Name
	}

	return ""
}

func kindLabel(k Kind) string {
	switch k {
	case KindWord:
		return "no value"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindPath:
		return "path"
	case KindList:
		return "list"
	default:
		return k.String()
	}
}
