// Package codegen projects resolved containers and fields into read-only
// views and generates Go parsing functions from them.
//
// Generation uses text/template + go/format. For every container the
// generator emits
//
//	func Parse<Container>(values map[string]any) (<Container>, error)
//
// which reads each non-skipped field from values by its attribute name,
// converts it with the field's parser (fromvalue.Parse[T] unless the field
// names its own "with" function), and falls back to the field's default
// expression when the key is absent.
package codegen
