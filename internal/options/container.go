package options

import (
	"fmt"
	"slices"

	"optgen/internal/directive"
	"optgen/internal/match"
	"optgen/internal/rename"
)

var containerDirectives = []string{"rename_all", "default"}

// Container holds container-wide policy and, once resolved, its fields.
type Container struct {
	name       string
	source     string
	imports    []Import
	renameRule rename.Rule
	def        *DefaultExpression
	fields     []Field
}

// NewContainer parses container directives:
//
//	rename_all='snake_case'   rename rule for fields without an explicit rename
//	default                   container has a zero-value default
//	default=pkg.NewServer     container default comes from a function
func NewContainer(name string, directives directive.List) (*Container, error) {
	if !directive.IsIdent(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	c := &Container{name: name}

	// A directive given twice overwrites the earlier setting.
	for _, d := range directives {
		switch d.Name {
		case "rename_all":
			s, err := d.AsString()
			if err != nil {
				return nil, err
			}

			rule, err := rename.Parse(s)
			if err != nil {
				return nil, &directive.ShapeMismatchError{Name: d.Name, Want: "rename rule", Got: d.Value.Kind, Err: err}
			}

			c.renameRule = rule

		case "default":
			expr, err := decodeDefault(d)
			if err != nil {
				return nil, err
			}

			c.def = &expr

		default:
			return nil, &directive.UnknownDirectiveError{
				Name:       d.Name,
				Suggestion: match.Suggest(d.Name, containerDirectives),
			}
		}
	}

	return c, nil
}

// ResolveContainer builds a container from its input and resolves every
// field against it. Field failures do not stop the remaining fields from
// being checked; all of them are returned together in a *ContainerError.
func ResolveContainer(in ContainerInput) (*Container, error) {
	c, err := NewContainer(in.Name, in.Directives)
	if err != nil {
		return nil, &ContainerError{Container: in.Name, Err: err}
	}

	c.source = in.Source
	c.imports = slices.Clone(in.Imports)

	var errs []*FieldError

	fields := make([]Field, 0, len(in.Fields))
	owners := make(map[string]string, len(in.Fields))

	for _, fi := range in.Fields {
		f, err := FromField(fi, c)
		if err != nil {
			errs = append(errs, &FieldError{Container: in.Name, Field: fi.Name, Err: err})
			continue
		}

		if !f.Skip() {
			attr, _ := f.AttrName()
			if owner, taken := owners[attr]; taken {
				errs = append(errs, &FieldError{
					Container: in.Name,
					Field:     fi.Name,
					Err:       fmt.Errorf("%w: %q is already used by %s", ErrDuplicateAttrName, attr, owner),
				})

				continue
			}

			owners[attr] = fi.Name
		}

		fields = append(fields, f)
	}

	if len(errs) > 0 {
		return nil, &ContainerError{Container: in.Name, Fields: errs}
	}

	c.fields = fields

	return c, nil
}

// Name returns the container's Go type name.
func (c *Container) Name() string {
	return c.name
}

// Source returns where the container was declared, if known.
func (c *Container) Source() string {
	return c.source
}

// Imports returns the imports in scope at the container's declaration.
func (c *Container) Imports() []Import {
	return slices.Clone(c.imports)
}

// RenameRule returns the rule applied to fields without an explicit rename.
func (c *Container) RenameRule() rename.Rule {
	return c.renameRule
}

// Default returns the container's default policy, if it declared one.
func (c *Container) Default() (DefaultExpression, bool) {
	if c.def == nil {
		return DefaultExpression{}, false
	}

	return *c.def, true
}

// Fields returns the resolved fields in declaration order.
func (c *Container) Fields() []Field {
	return slices.Clone(c.fields)
}
