package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"optgen/internal/directive"
)

// LoadFile loads, parses and validates a schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path

	return f, nil
}

// Parse parses and validates YAML schema data.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// Validate checks the structure of a schema file. Directive names and
// values are not checked here; that is the resolver's job.
func Validate(f *File) error {
	var errs []error

	if f.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported schema version %q", f.Version))
	}

	if f.Package != "" && !directive.IsIdent(f.Package) {
		errs = append(errs, fmt.Errorf("invalid package name %q", f.Package))
	}

	for i, imp := range f.Imports {
		if imp.Path == "" {
			errs = append(errs, fmt.Errorf("imports[%d]: missing path", i))
		}
	}

	seen := make(map[string]bool, len(f.Containers))

	for i, c := range f.Containers {
		if !directive.IsIdent(c.Name) {
			errs = append(errs, fmt.Errorf("containers[%d]: invalid name %q", i, c.Name))
			continue
		}

		if seen[c.Name] {
			errs = append(errs, fmt.Errorf("container %s: declared twice", c.Name))
		}

		seen[c.Name] = true

		for j, fd := range c.Fields {
			if !directive.IsIdent(fd.Name) {
				errs = append(errs, fmt.Errorf("container %s: fields[%d]: invalid name %q", c.Name, j, fd.Name))
				continue
			}

			if fd.Type == "" {
				errs = append(errs, fmt.Errorf("container %s: field %s: missing type", c.Name, fd.Name))
			}
		}
	}

	return errors.Join(errs...)
}
