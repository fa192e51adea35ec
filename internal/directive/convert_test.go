package directive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirective_AsBool(t *testing.T) {
	v, err := Word("skip").AsBool()
	require.NoError(t, err)
	assert.True(t, v)

	v, err = New("skip", BoolValue(false)).AsBool()
	require.NoError(t, err)
	assert.False(t, v)

	_, err = New("skip", StringValue("yes")).AsBool()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValueShapeMismatch)

	var shape *ShapeMismatchError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, "skip", shape.Name)
	assert.Equal(t, KindString, shape.Got)
	assert.Equal(t, `directive "skip": expected bool, got string`, err.Error())
}

func TestDirective_AsString(t *testing.T) {
	v, err := New("rename", StringValue("cnt")).AsString()
	require.NoError(t, err)
	assert.Equal(t, "cnt", v)

	_, err = Word("rename").AsString()
	assert.ErrorIs(t, err, ErrValueShapeMismatch)

	_, err = New("rename", PathValue(Path{"cnt"})).AsString()
	assert.ErrorIs(t, err, ErrValueShapeMismatch)
}

func TestDirective_AsPath(t *testing.T) {
	p, err := New("with", PathValue(Path{"codec", "Parse"})).AsPath()
	require.NoError(t, err)
	assert.Equal(t, "codec.Parse", p.String())

	p, err = New("with", StringValue("my::parse")).AsPath()
	require.NoError(t, err)
	assert.Equal(t, Path{"my", "parse"}, p)

	_, err = New("with", StringValue("not a path")).AsPath()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValueShapeMismatch)
	assert.Contains(t, err.Error(), "invalid identifier")

	_, err = Word("with").AsPath()
	assert.ErrorIs(t, err, ErrValueShapeMismatch)
}

func TestErrors(t *testing.T) {
	unknown := &UnknownDirectiveError{Name: "frobnicate"}
	assert.ErrorIs(t, unknown, ErrUnknownDirective)
	assert.NotErrorIs(t, unknown, ErrValueShapeMismatch)
	assert.Equal(t, `unknown directive "frobnicate"`, unknown.Error())

	suggested := &UnknownDirectiveError{Name: "renam", Suggestion: "rename"}
	assert.Equal(t, `unknown directive "renam" (did you mean "rename"?)`, suggested.Error())

	tests := []struct {
		err  error
		code string
		name string
	}{
		{unknown, "unknown_directive", "frobnicate"},
		{New("skip", StringValue("yes")).Mismatch("bool"), "value_shape_mismatch", "skip"},
		{errors.New("other"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, Code(tt.err))
			assert.Equal(t, tt.name, Name(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Word", KindWord.String())
	assert.Equal(t, "List", KindList.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "'it\\'s'", StringValue("it's").String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "a.b", PathValue(Path{"a", "b"}).String())
	assert.Equal(t, "(x, y=false)", ListValue(Word("x"), New("y", BoolValue(false))).String())
	assert.Equal(t, "skip", Word("skip").String())
}
