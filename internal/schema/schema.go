package schema

import (
	"fmt"

	"optgen/internal/directive"
	"optgen/internal/options"
)

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// File is the root of a schema file.
type File struct {
	Version string `yaml:"version"`
	// Package is the Go package the containers live in.
	Package string `yaml:"package,omitempty"`
	// Imports are in scope for every container, as imports of a Go file would be.
	Imports    []Import    `yaml:"imports,omitempty"`
	Containers []Container `yaml:"containers"`

	// Path is where the file was loaded from, if anywhere.
	Path string `yaml:"-"`
}

// Import is a package reference.
type Import struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path"`
}

// Container declares one container.
type Container struct {
	Name       string     `yaml:"name"`
	Directives Directives `yaml:"directives,omitempty"`
	Fields     []Field    `yaml:"fields"`

	// Line is the container's line in the file.
	Line int `yaml:"-"`
}

// Field declares one field of a container.
type Field struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Imports    []Import   `yaml:"imports,omitempty"`
	Directives Directives `yaml:"directives,omitempty"`
}

// Directives is a directive list decoded from YAML.
type Directives directive.List

// Inputs converts the file into resolver inputs, in file order.
func (f *File) Inputs() []options.ContainerInput {
	imports := convertImports(f.Imports)

	inputs := make([]options.ContainerInput, 0, len(f.Containers))
	for _, c := range f.Containers {
		in := options.ContainerInput{
			Name:       c.Name,
			Directives: directive.List(c.Directives),
			Source:     f.source(c.Line),
			Imports:    imports,
		}

		for _, fd := range c.Fields {
			in.Fields = append(in.Fields, options.FieldInput{
				Name:       fd.Name,
				Type:       options.Type{Expr: fd.Type, Imports: convertImports(fd.Imports)},
				Directives: directive.List(fd.Directives),
			})
		}

		inputs = append(inputs, in)
	}

	return inputs
}

func (f *File) source(line int) string {
	switch {
	case f.Path != "" && line > 0:
		return fmt.Sprintf("%s:%d", f.Path, line)
	case f.Path != "":
		return f.Path
	case line > 0:
		return fmt.Sprintf("line %d", line)
	default:
		return ""
	}
}

func convertImports(in []Import) []options.Import {
	if len(in) == 0 {
		return nil
	}

	out := make([]options.Import, len(in))
	for i, imp := range in {
		out[i] = options.Import{Name: imp.Name, Path: imp.Path}
	}

	return out
}
