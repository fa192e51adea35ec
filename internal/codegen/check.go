package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// ErrKeywordPath is matched by PathError.
var ErrKeywordPath = errors.New("function path uses a Go keyword")

// PathError reports a "with" or "default" function path that generated code
// cannot spell because a segment is a Go keyword, e.g. my.default.
type PathError struct {
	Container string
	// Field is empty for the container's own default.
	Field     string
	Directive string
	Path      string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("directive %q: %s: %s", e.Directive, ErrKeywordPath, e.Path)
}

// Is matches ErrKeywordPath.
func (e *PathError) Is(target error) bool {
	return target == ErrKeywordPath
}

// CheckView returns a *PathError for every function path of c that
// contains a keyword segment. Skipped fields are not checked.
func CheckView(c ContainerView) []error {
	var errs []error

	check := func(field, directive, path string) {
		if hasKeyword(path) {
			errs = append(errs, &PathError{Container: c.Name, Field: field, Directive: directive, Path: path})
		}
	}

	check("", "default", c.Default.Path)

	for _, f := range c.Fields {
		if f.Skip {
			continue
		}

		check(f.NameInStruct, "with", f.WithPath)
		check(f.NameInStruct, "default", f.Default.Path)
	}

	return errs
}

func hasKeyword(path string) bool {
	for _, seg := range strings.Split(path, ".") {
		if token.IsKeyword(seg) {
			return true
		}
	}

	return false
}
