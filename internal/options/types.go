package options

import (
	"optgen/internal/directive"
)

// Type is an opaque descriptor of a field's Go type: its expression as
// written in the generated package and the imports that expression needs.
type Type struct {
	Expr    string
	Imports []Import
}

// String returns the type expression.
func (t Type) String() string {
	return t.Expr
}

// Import is a package referenced by a type expression.
type Import struct {
	Name string // package name used in Expr
	Path string // import path
}

// FieldInput is the raw description of one field, as read from Go source
// or a schema file.
type FieldInput struct {
	Name       string
	Type       Type
	Directives directive.List
}

// ContainerInput is the raw description of a container and its fields.
type ContainerInput struct {
	Name       string
	Directives directive.List
	Fields     []FieldInput
	// Source locates the container for error messages, e.g. "settings/server.go:12".
	Source string
	// Imports are the imports in scope where the container is declared. They
	// let generated code import the packages named by "with" and "default" paths.
	Imports []Import
}
