// Package analyze discovers containers in Go source.
//
// It loads packages with golang.org/x/tools/go/packages and reads two kinds
// of annotations:
//
//	// Server configures the listener.
//	//
//	//optgen:rename_all='snake_case', default
//	type Server struct {
//		Port int `opt:"rename='listen_port'"`
//	}
//
// A struct whose doc comment holds an "//optgen:" line is a container; the
// rest of the line is its directive list. Each exported, non-embedded field
// becomes a field input whose directives come from the "opt" struct tag.
// Field types are rendered as seen from the declaring package, and the
// packages they mention are recorded as imports.
package analyze
