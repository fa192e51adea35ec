package options

import (
	"fmt"
	"slices"

	"optgen/internal/directive"
	"optgen/internal/match"
)

// fieldHandler applies one recognized directive to a field being parsed.
type fieldHandler func(f *ParsedField, d directive.Directive) error

// fieldDirectives is the closed vocabulary of field directives, in the order
// used for suggestions.
var fieldDirectives = []string{"rename", "default", "with", "skip"}

var fieldHandlers = map[string]fieldHandler{
	"rename": func(f *ParsedField, d directive.Directive) error {
		name, err := d.AsString()
		if err != nil {
			return err
		}

		if name == "" {
			return d.Mismatch("non-empty string")
		}

		f.attrName = name

		return nil
	},
	"default": func(f *ParsedField, d directive.Directive) error {
		expr, err := decodeDefault(d)
		if err != nil {
			return err
		}

		f.def = &expr

		return nil
	},
	"with": func(f *ParsedField, d directive.Directive) error {
		p, imp, err := funcPath(d)
		if err != nil {
			return err
		}

		f.with = p
		f.withImport = imp

		return nil
	},
	"skip": func(f *ParsedField, d directive.Directive) error {
		skip, err := d.AsBool()
		if err != nil {
			return err
		}

		f.skip = skip

		return nil
	},
}

// ParsedField holds a field's own settings after its directives have been
// read, before any container policy is applied.
type ParsedField struct {
	settings
}

// settings is the state shared by ParsedField and Field.
type settings struct {
	targetName string
	attrName   string // "" until set
	ty         Type
	def        *DefaultExpression
	with       directive.Path
	withImport Import // set when "with" named its package by import path
	skip       bool
}

// ParseField reads a field's directives in order. It stops at the first
// directive that is unknown or carries a value of the wrong shape. A
// directive given twice overwrites the earlier setting.
func ParseField(in FieldInput) (ParsedField, error) {
	if !directive.IsIdent(in.Name) {
		return ParsedField{}, fmt.Errorf("%w: %q", ErrInvalidName, in.Name)
	}

	f := ParsedField{settings: settings{targetName: in.Name, ty: in.Type}}

	for _, d := range in.Directives {
		handle, ok := fieldHandlers[d.Name]
		if !ok {
			return ParsedField{}, &directive.UnknownDirectiveError{
				Name:       d.Name,
				Suggestion: match.Suggest(d.Name, fieldDirectives),
			}
		}

		if err := handle(&f, d); err != nil {
			return ParsedField{}, err
		}
	}

	return f, nil
}

// Resolve merges container policy into the parsed field and returns the
// final field. A field without an explicit rename takes the container's
// rename rule; a field without a default inherits when the container has a
// default of any kind.
func (p ParsedField) Resolve(parent *Container) Field {
	if parent == nil {
		return p.Finish()
	}

	s := p.settings

	if s.attrName == "" {
		s.attrName = parent.renameRule.Apply(s.targetName)
	}

	if s.def == nil && parent.def != nil {
		inherit := Inherit()
		s.def = &inherit
	}

	return Field{settings: s}
}

// Finish returns the parsed field unchanged as a final field, for fields
// resolved without a container.
func (p ParsedField) Finish() Field {
	return Field{settings: p.settings}
}

// FromField parses a field and, when parent is non-nil, merges its policy.
// Either the whole field resolves or an error is returned.
func FromField(in FieldInput, parent *Container) (Field, error) {
	parsed, err := ParseField(in)
	if err != nil {
		return Field{}, err
	}

	if parent == nil {
		return parsed.Finish(), nil
	}

	return parsed.Resolve(parent), nil
}

// Field is a fully resolved field. It has no setters.
type Field struct {
	settings
}

// TargetName returns the field's Go name.
func (f Field) TargetName() string {
	return f.targetName
}

// AttrName returns the external name, if one was set explicitly or by a
// container rename rule.
func (f Field) AttrName() (string, bool) {
	return f.attrName, f.attrName != ""
}

// Type returns the field's type descriptor.
func (f Field) Type() Type {
	return f.ty
}

// Default returns the field's default expression, if any.
func (f Field) Default() (DefaultExpression, bool) {
	if f.def == nil {
		return DefaultExpression{}, false
	}

	return *f.def, true
}

// With returns the custom parser function path, if one was set.
func (f Field) With() (directive.Path, bool) {
	return slices.Clone(f.with), !f.with.IsZero()
}

// FuncImports returns the packages named by import path in the field's
// "with" and "default" functions.
func (f Field) FuncImports() []Import {
	var imports []Import

	if f.withImport.Path != "" {
		imports = append(imports, f.withImport)
	}

	if f.def != nil && f.def.Import.Path != "" {
		imports = append(imports, f.def.Import)
	}

	return imports
}

// Skip reports whether generated code ignores the field.
func (f Field) Skip() bool {
	return f.skip
}
