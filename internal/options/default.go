package options

import (
	"optgen/internal/directive"
)

//go:generate go tool stringer -type=DefaultKind -trimprefix=Default -output=defaultkind_string.go

// DefaultKind selects how a missing field value is produced.
type DefaultKind int

const (
	_ DefaultKind = iota // zero value is invalid

	DefaultExplicit // call a user-supplied function
	DefaultInherit  // take the value from the container's default
	DefaultTrait    // use the type's zero value
)

// DefaultExpression describes how a field's or container's default value is
// produced. Path is set only for DefaultExplicit; Import is set when the
// path named its package by import path.
type DefaultExpression struct {
	Kind   DefaultKind
	Path   directive.Path
	Import Import
}

// Explicit returns a default produced by calling the function at path.
func Explicit(path directive.Path) DefaultExpression {
	return DefaultExpression{Kind: DefaultExplicit, Path: path}
}

// Inherit returns a default taken from the enclosing container's default.
func Inherit() DefaultExpression {
	return DefaultExpression{Kind: DefaultInherit}
}

// Trait returns a default that uses the type's zero value.
func Trait() DefaultExpression {
	return DefaultExpression{Kind: DefaultTrait}
}

// String renders the expression for diagnostics.
func (e DefaultExpression) String() string {
	if e.Kind == DefaultExplicit {
		return "explicit(" + e.Path.String() + ")"
	}

	return e.Kind.String()
}

// decodeDefault converts a "default" directive. A bare word selects the zero
// value; a path, or a string holding a path, names a default function.
// DefaultInherit is never produced here: only the container merge assigns it.
func decodeDefault(d directive.Directive) (DefaultExpression, error) {
	switch d.Value.Kind {
	case directive.KindWord:
		return Trait(), nil

	case directive.KindPath, directive.KindString:
		p, imp, err := funcPath(d)
		if err != nil {
			return DefaultExpression{}, err
		}

		expr := Explicit(p)
		expr.Import = imp

		return expr, nil

	default:
		return DefaultExpression{}, d.Mismatch("no value, path or string")
	}
}

// funcPath converts a function reference. A quoted string may name the
// function's package by import path, as in
// with='example.com/app/conv.Count'; the returned path is then "conv.Count".
func funcPath(d directive.Directive) (directive.Path, Import, error) {
	if d.Value.Kind != directive.KindString {
		p, err := d.AsPath()
		return p, Import{}, err
	}

	importPath, p, err := directive.ParseImportPath(d.Value.Str)
	if err != nil {
		return nil, Import{}, &directive.ShapeMismatchError{
			Name: d.Name,
			Want: "path",
			Got:  d.Value.Kind,
			Err:  err,
		}
	}

	if importPath == "" {
		return p, Import{}, nil
	}

	return p, Import{Name: p[0], Path: importPath}, nil
}
