package directive

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the shape of a directive value.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindWord   // name only, no value
	KindString // quoted string literal
	KindBool   // true or false
	KindPath   // identifier path
	KindList   // nested directive list
)

// Path is a reference to a named Go entity, such as a function, as a list of
// identifier segments.
type Path []string

// String joins the segments with dots, the form used in generated Go code.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// IsZero reports whether the path has no segments.
func (p Path) IsZero() bool {
	return len(p) == 0
}

// Value is the payload of a directive. Only the field matching Kind is set.
type Value struct {
	Kind Kind
	Str  string
	Bool bool
	Path Path
	List []Directive
}

// WordValue returns the value of a bare directive such as "skip".
func WordValue() Value {
	return Value{Kind: KindWord}
}

// StringValue returns a string literal value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// BoolValue returns a boolean literal value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// PathValue returns a path value.
func PathValue(p Path) Value {
	return Value{Kind: KindPath, Path: p}
}

// ListValue returns a nested list value.
func ListValue(items ...Directive) Value {
	return Value{Kind: KindList, List: items}
}

// String renders the value in directive syntax.
func (v Value) String() string {
	switch v.Kind {
	case KindWord:
		return ""
	case KindString:
		return quote(v.Str)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindPath:
		return v.Path.String()
	case KindList:
		return "(" + List(v.List).String() + ")"
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}

// Directive is one annotation entry: a name and its value.
type Directive struct {
	Name  string
	Value Value
}

// Word returns a bare directive.
func Word(name string) Directive {
	return Directive{Name: name, Value: WordValue()}
}

// New returns a directive with the given value.
func New(name string, v Value) Directive {
	return Directive{Name: name, Value: v}
}

// String renders the directive in directive syntax.
func (d Directive) String() string {
	if d.Value.Kind == KindWord {
		return d.Name
	}

	if d.Value.Kind == KindList {
		return d.Name + d.Value.String()
	}

	return d.Name + "=" + d.Value.String()
}

// List is an ordered sequence of directives.
type List []Directive

// String renders the list as comma separated directives.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, d := range l {
		parts[i] = d.String()
	}

	return strings.Join(parts, ", ")
}

// Names returns the directive names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, d := range l {
		names[i] = d.Name
	}

	return names
}

func quote(s string) string {
	var sb strings.Builder

	sb.WriteByte('\'')

	for _, r := range s {
		if r == '\'' || r == '\\' {
			sb.WriteByte('\\')
		}

		sb.WriteRune(r)
	}

	sb.WriteByte('\'')

	return sb.String()
}
