package directive

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// ParsePath parses a path such as "settings.DefaultPort" or "my::default".
// Both "." and "::" separate segments. A segment is an identifier or a Go
// keyword; keywords are accepted here and rejected by the generator, which
// is the only consumer that needs them to be valid Go.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty path")
	}

	normalized := strings.ReplaceAll(s, "::", ".")

	// A leading "::" marks an absolute path; Go has no such notion.
	normalized = strings.TrimPrefix(normalized, ".")

	var p Path

	for part := range strings.SplitSeq(normalized, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", s)
		}

		if !IsIdent(part) && !token.IsKeyword(part) {
			return nil, fmt.Errorf("invalid path %q: invalid identifier %q", s, part)
		}

		p = append(p, part)
	}

	return p, nil
}

// ParseImportPath parses a path that may name its package by import path,
// such as "example.com/app/durations.Parse". It returns the package's import
// path ("example.com/app/durations") and the path as written in Go code
// ("durations.Parse"). Without a "/" it behaves like ParsePath and returns
// an empty import path.
func ParseImportPath(s string) (string, Path, error) {
	s = strings.TrimSpace(s)

	i := strings.LastIndex(s, "/")
	if i < 0 {
		p, err := ParsePath(s)
		return "", p, err
	}

	dir, rest := s[:i], s[i+1:]
	if dir == "" {
		return "", nil, fmt.Errorf("invalid path %q: empty import path", s)
	}

	p, err := ParsePath(rest)
	if err != nil {
		return "", nil, err
	}

	if len(p) < 2 {
		return "", nil, fmt.Errorf("invalid path %q: want <import path>.<name>", s)
	}

	return dir + "/" + p[0], p, nil
}

// IsIdent reports whether s is a valid Go identifier and not a keyword.
func IsIdent(s string) bool {
	return token.IsIdentifier(s)
}
