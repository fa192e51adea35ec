package codegen

import (
	"slices"

	"optgen/internal/options"
)

// Well-known parser used for fields without a "with" directive. Generated
// code calls it as fromvalue.Parse[T](v).
const (
	DefaultParserPath   = "fromvalue.Parse"
	DefaultParserImport = "optgen/pkg/fromvalue"
)

// DefaultView is the projection of a default expression. The zero value means
// "no default".
type DefaultView struct {
	Kind options.DefaultKind
	// Path is the function called for DefaultExplicit.
	Path string
	// Field is the container default's field copied for DefaultInherit.
	Field string
}

// IsSet reports whether a default is present.
func (d DefaultView) IsSet() bool {
	return d.Kind != 0
}

// MarshalYAML renders the view as "explicit: pkg.Func", "inherit: Field",
// "trait" or null.
func (d DefaultView) MarshalYAML() (any, error) {
	switch d.Kind {
	case options.DefaultExplicit:
		return map[string]string{"explicit": d.Path}, nil
	case options.DefaultInherit:
		return map[string]string{"inherit": d.Field}, nil
	case options.DefaultTrait:
		return "trait", nil
	default:
		return nil, nil
	}
}

// FieldView is the read-only projection of a resolved field handed to the
// generator.
type FieldView struct {
	NameInStruct string      `yaml:"name_in_struct"`
	NameInAttr   string      `yaml:"name_in_attr"`
	Type         string      `yaml:"type"`
	Default      DefaultView `yaml:"default"`
	WithPath     string      `yaml:"with"`
	Skip         bool        `yaml:"skip"`

	imports     []options.Import
	funcImports []options.Import
}

// UsesDefaultParser reports whether the field is parsed by fromvalue.Parse.
func (v FieldView) UsesDefaultParser() bool {
	return v.WithPath == DefaultParserPath
}

// Imports returns the packages the field's type expression refers to.
func (v FieldView) Imports() []options.Import {
	return slices.Clone(v.imports)
}

// FuncImports returns the packages the "with" and "default" functions name
// by import path.
func (v FieldView) FuncImports() []options.Import {
	return slices.Clone(v.funcImports)
}

// NewFieldView projects a resolved field. It never modifies f and returns
// equal views for equal fields.
func NewFieldView(f options.Field) FieldView {
	attr, ok := f.AttrName()
	if !ok {
		attr = f.TargetName()
	}

	with := DefaultParserPath
	if p, ok := f.With(); ok {
		with = p.String()
	}

	ty := f.Type()

	return FieldView{
		NameInStruct: f.TargetName(),
		NameInAttr:   attr,
		Type:         ty.Expr,
		Default:      newFieldDefaultView(f),
		WithPath:     with,
		Skip:         f.Skip(),
		imports:      slices.Clone(ty.Imports),
		funcImports:  f.FuncImports(),
	}
}

func newFieldDefaultView(f options.Field) DefaultView {
	expr, ok := f.Default()
	if !ok {
		return DefaultView{}
	}

	switch expr.Kind {
	case options.DefaultExplicit:
		return DefaultView{Kind: expr.Kind, Path: expr.Path.String()}
	case options.DefaultInherit:
		return DefaultView{Kind: expr.Kind, Field: f.TargetName()}
	default:
		return DefaultView{Kind: expr.Kind}
	}
}

// ContainerView is the read-only projection of a resolved container.
type ContainerView struct {
	Name       string      `yaml:"name"`
	Source     string      `yaml:"source,omitempty"`
	RenameRule string      `yaml:"rename_all"`
	Default    DefaultView `yaml:"default"`
	Fields     []FieldView `yaml:"fields"`

	imports []options.Import
}

// Imports returns the imports in scope at the container's declaration,
// plus the package of an import-qualified container default.
func (v ContainerView) Imports() []options.Import {
	return slices.Clone(v.imports)
}

// NewContainerView projects a resolved container and its fields.
func NewContainerView(c *options.Container) ContainerView {
	view := ContainerView{
		Name:       c.Name(),
		Source:     c.Source(),
		RenameRule: c.RenameRule().String(),
		imports:    c.Imports(),
	}

	if expr, ok := c.Default(); ok {
		view.Default = DefaultView{Kind: expr.Kind}
		if expr.Kind == options.DefaultExplicit {
			view.Default.Path = expr.Path.String()
		}

		if expr.Import.Path != "" {
			view.imports = append(view.imports, expr.Import)
		}
	}

	for _, f := range c.Fields() {
		view.Fields = append(view.Fields, NewFieldView(f))
	}

	return view
}
