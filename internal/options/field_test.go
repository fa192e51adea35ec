package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optgen/internal/directive"
	"optgen/internal/rename"
)

var intType = Type{Expr: "int"}

func mustContainer(t *testing.T, input string) *Container {
	t.Helper()

	ds, err := directive.Parse(input)
	require.NoError(t, err)

	c, err := NewContainer("Settings", ds)
	require.NoError(t, err)

	return c
}

func fieldInput(t *testing.T, name, directives string) FieldInput {
	t.Helper()

	ds, err := directive.Parse(directives)
	require.NoError(t, err)

	return FieldInput{Name: name, Type: intType, Directives: ds}
}

func TestFromField_InheritsRenameRule(t *testing.T) {
	tests := []struct {
		rule     string
		field    string
		expected string
	}{
		{"none", "ListenPort", "ListenPort"},
		{"snake_case", "ListenPort", "listen_port"},
		{"kebab-case", "ListenPort", "listen-port"},
		{"camelCase", "ListenPort", "listenPort"},
		{"SCREAMING_SNAKE_CASE", "ListenPort", "LISTEN_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			c := mustContainer(t, "rename_all='"+tt.rule+"'")

			f, err := FromField(fieldInput(t, tt.field, ""), c)
			require.NoError(t, err)

			attr, ok := f.AttrName()
			require.True(t, ok)
			assert.Equal(t, tt.expected, attr)
			assert.Equal(t, c.RenameRule().Apply(tt.field), attr)
		})
	}
}

func TestFromField_ExplicitRenameWins(t *testing.T) {
	for _, rule := range rename.Names() {
		t.Run(rule, func(t *testing.T) {
			c := mustContainer(t, "rename_all='"+rule+"'")

			f, err := FromField(fieldInput(t, "ListenPort", "rename='port'"), c)
			require.NoError(t, err)

			attr, _ := f.AttrName()
			assert.Equal(t, "port", attr)
		})
	}
}

func TestFromField_DefaultInheritance(t *testing.T) {
	tests := []struct {
		name      string
		container string
		field     string
		expected  *DefaultExpression
	}{
		{
			name:      "no defaults anywhere",
			container: "",
			field:     "",
			expected:  nil,
		},
		{
			name:      "container zero-value default",
			container: "default",
			field:     "",
			expected:  &DefaultExpression{Kind: DefaultInherit},
		},
		{
			name:      "container function default",
			container: "default=settings.NewSettings",
			field:     "",
			expected:  &DefaultExpression{Kind: DefaultInherit},
		},
		{
			name:      "field trait beats container",
			container: "default",
			field:     "default",
			expected:  &DefaultExpression{Kind: DefaultTrait},
		},
		{
			name:      "field explicit beats container",
			container: "default=settings.NewSettings",
			field:     "default=settings.DefaultPort",
			expected:  &DefaultExpression{Kind: DefaultExplicit, Path: directive.Path{"settings", "DefaultPort"}},
		},
		{
			name:      "field explicit without container default",
			container: "",
			field:     "default='my::default'",
			expected:  &DefaultExpression{Kind: DefaultExplicit, Path: directive.Path{"my", "default"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustContainer(t, tt.container)

			f, err := FromField(fieldInput(t, "Port", tt.field), c)
			require.NoError(t, err)

			got, ok := f.Default()
			if tt.expected == nil {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, *tt.expected, got)
		})
	}
}

func TestFromField_Scenarios(t *testing.T) {
	t.Run("count inherits", func(t *testing.T) {
		c := mustContainer(t, "default")

		f, err := FromField(FieldInput{Name: "count", Type: intType}, c)
		require.NoError(t, err)

		attr, _ := f.AttrName()
		assert.Equal(t, "count", attr)

		def, ok := f.Default()
		require.True(t, ok)
		assert.Equal(t, DefaultInherit, def.Kind)
	})

	t.Run("count explicit", func(t *testing.T) {
		for _, container := range []string{"", "default", "rename_all='UPPERCASE', default=x.Y"} {
			c := mustContainer(t, container)

			f, err := FromField(fieldInput(t, "count", "rename='cnt', default=my::default"), c)
			require.NoError(t, err)

			attr, _ := f.AttrName()
			assert.Equal(t, "cnt", attr)

			def, _ := f.Default()
			assert.Equal(t, Explicit(directive.Path{"my", "default"}), def)
		}
	})

	t.Run("unknown directive", func(t *testing.T) {
		_, err := FromField(fieldInput(t, "x", "frobnicate=true"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, directive.ErrUnknownDirective)

		var unknown *directive.UnknownDirectiveError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "frobnicate", unknown.Name)
		assert.Empty(t, unknown.Suggestion)
	})

	t.Run("skip with string", func(t *testing.T) {
		_, err := FromField(fieldInput(t, "y", "skip='yes'"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, directive.ErrValueShapeMismatch)
		assert.Equal(t, "skip", directive.Name(err))
	})
}

func TestParseField_FailsFast(t *testing.T) {
	// The unknown directive stops parsing before the malformed skip is reached.
	_, err := ParseField(fieldInput(t, "x", "rename='a', frobnicate, skip='yes'"))
	assert.ErrorIs(t, err, directive.ErrUnknownDirective)

	_, err = ParseField(fieldInput(t, "x", "skip='yes', frobnicate"))
	assert.ErrorIs(t, err, directive.ErrValueShapeMismatch)
}

func TestParseField_ValueShapes(t *testing.T) {
	tests := []struct {
		name       string
		directives string
		wantErr    error
	}{
		{"rename word", "rename", directive.ErrValueShapeMismatch},
		{"rename path", "rename=cnt", directive.ErrValueShapeMismatch},
		{"rename empty", "rename=''", directive.ErrValueShapeMismatch},
		{"default bool", "default=true", directive.ErrValueShapeMismatch},
		{"default bad string", "default='not a path'", directive.ErrValueShapeMismatch},
		{"default list", "default(x)", directive.ErrValueShapeMismatch},
		{"with word", "with", directive.ErrValueShapeMismatch},
		{"with bool", "with=false", directive.ErrValueShapeMismatch},
		{"skip path", "skip=yes", directive.ErrValueShapeMismatch},
		{"default bad import path", "default='example.com/conv'", directive.ErrValueShapeMismatch},
		{"typo", "renam='x'", directive.ErrUnknownDirective},
		{"ok", "rename='x', default, with=codec.Parse, skip=false", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseField(fieldInput(t, "Field", tt.directives))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseField_RepeatedDirectiveLastWins(t *testing.T) {
	f, err := FromField(fieldInput(t, "Count", "rename='a', skip, rename='b', skip=false"), nil)
	require.NoError(t, err)

	attr, ok := f.AttrName()
	require.True(t, ok)
	assert.Equal(t, "b", attr)
	assert.False(t, f.Skip())
}

func TestParseField_ImportQualifiedFunctions(t *testing.T) {
	f, err := FromField(fieldInput(t, "Timeout",
		"with='example.com/app/durations.Parse', default='example.com/app/presets::Timeout'"), nil)
	require.NoError(t, err)

	with, ok := f.With()
	require.True(t, ok)
	assert.Equal(t, "durations.Parse", with.String())

	def, ok := f.Default()
	require.True(t, ok)
	assert.Equal(t, directive.Path{"presets", "Timeout"}, def.Path)

	assert.Equal(t, []Import{
		{Name: "durations", Path: "example.com/app/durations"},
		{Name: "presets", Path: "example.com/app/presets"},
	}, f.FuncImports())
}

func TestParseField_LocalFunctionsImportNothing(t *testing.T) {
	f, err := FromField(fieldInput(t, "Count", "with='codec.ParseCount', default=codec.Zero"), nil)
	require.NoError(t, err)

	assert.Empty(t, f.FuncImports())
}

func TestParseField_Suggestion(t *testing.T) {
	_, err := ParseField(fieldInput(t, "Field", "defualt"))

	var unknown *directive.UnknownDirectiveError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "default", unknown.Suggestion)
}

func TestParseField_InvalidName(t *testing.T) {
	_, err := ParseField(FieldInput{Name: "", Type: intType})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = ParseField(FieldInput{Name: "not-ident", Type: intType})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestParsedField_Finish(t *testing.T) {
	parsed, err := ParseField(fieldInput(t, "Count", "with=codec.ParseCount, skip"))
	require.NoError(t, err)

	f := parsed.Finish()

	_, ok := f.AttrName()
	assert.False(t, ok, "no container means no rename rule")

	_, ok = f.Default()
	assert.False(t, ok)

	with, ok := f.With()
	require.True(t, ok)
	assert.Equal(t, "codec.ParseCount", with.String())
	assert.True(t, f.Skip())
	assert.Equal(t, "Count", f.TargetName())
	assert.Equal(t, intType, f.Type())

	// Resolving against a nil container is the same as finishing.
	assert.Equal(t, f, parsed.Resolve(nil))
}

func TestParsedField_ResolveDoesNotMutate(t *testing.T) {
	parsed, err := ParseField(fieldInput(t, "ListenPort", ""))
	require.NoError(t, err)

	snake := mustContainer(t, "rename_all='snake_case', default")
	kebab := mustContainer(t, "rename_all='kebab-case'")

	a := parsed.Resolve(snake)
	b := parsed.Resolve(kebab)

	attrA, _ := a.AttrName()
	attrB, _ := b.AttrName()
	assert.Equal(t, "listen_port", attrA)
	assert.Equal(t, "listen-port", attrB)

	_, hasDefault := b.Default()
	assert.False(t, hasDefault, "default from the first container must not leak")
}

func TestField_WithReturnsCopy(t *testing.T) {
	f, err := FromField(fieldInput(t, "Count", "with=codec.ParseCount"), nil)
	require.NoError(t, err)

	with, _ := f.With()
	with[0] = "mutated"

	again, _ := f.With()
	assert.Equal(t, "codec.ParseCount", again.String())
}

func TestDefaultExpression_String(t *testing.T) {
	assert.Equal(t, "explicit(a.b)", Explicit(directive.Path{"a", "b"}).String())
	assert.Equal(t, "Inherit", Inherit().String())
	assert.Equal(t, "Trait", Trait().String())
	assert.Equal(t, "DefaultKind(0)", DefaultExpression{}.String())
}
