package pipeline

import (
	"errors"

	"optgen/internal/codegen"
	"optgen/internal/diagnostic"
	"optgen/internal/directive"
	"optgen/internal/options"
)

// Diagnostic codes for failures that are not directive errors.
const (
	CodeInvalidContainer  = "invalid_container"
	CodeInvalidName       = "invalid_name"
	CodeDuplicateAttrName = "duplicate_attr_name"
	CodeInvalidPath       = "invalid_path"
)

// diagnose turns a ResolveContainer failure into one diagnostic per
// underlying error.
func diagnose(in options.ContainerInput, err error) []diagnostic.Diagnostic {
	var ce *options.ContainerError
	if !errors.As(err, &ce) {
		return []diagnostic.Diagnostic{newDiagnostic(in, "", err)}
	}

	var diags []diagnostic.Diagnostic

	if ce.Err != nil {
		diags = append(diags, newDiagnostic(in, "", ce.Err))
	}

	for _, fe := range ce.Fields {
		diags = append(diags, newDiagnostic(in, fe.Field, fe.Err))
	}

	return diags
}

func newDiagnostic(in options.ContainerInput, field string, err error) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity:  diagnostic.SeverityError,
		Code:      code(err),
		Message:   err.Error(),
		Container: in.Name,
		Field:     field,
		Directive: directive.Name(err),
		Source:    in.Source,
	}
}

func code(err error) string {
	if c := directive.Code(err); c != "" {
		return c
	}

	switch {
	case errors.Is(err, options.ErrDuplicateAttrName):
		return CodeDuplicateAttrName
	case errors.Is(err, options.ErrInvalidName):
		return CodeInvalidName
	default:
		return CodeInvalidContainer
	}
}

// pathDiagnostic reports a function path the generator refuses to render.
func pathDiagnostic(c *options.Container, err error) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity:  diagnostic.SeverityError,
		Code:      CodeInvalidPath,
		Message:   err.Error(),
		Container: c.Name(),
		Source:    c.Source(),
	}

	var pe *codegen.PathError
	if errors.As(err, &pe) {
		d.Field = pe.Field
		d.Directive = pe.Directive
	}

	return d
}
