package fromvalue

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type port int

type level int

func (l *level) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return errors.New("bad level")
	}

	return nil
}

func TestParse_Scalars(t *testing.T) {
	s, err := Parse[string]("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	n, err := Parse[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	u, err := Parse[uint16](int64(8080))
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), u)

	b, err := Parse[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	f, err := Parse[float64]("1.5")
	require.NoError(t, err)
	assert.InEpsilon(t, 1.5, f, 1e-9)

	s, err = Parse[string](7)
	require.NoError(t, err)
	assert.Equal(t, "7", s)
}

func TestParse_NamedTypes(t *testing.T) {
	p, err := Parse[port]("8080")
	require.NoError(t, err)
	assert.Equal(t, port(8080), p)

	l, err := Parse[level]("HIGH")
	require.NoError(t, err)
	assert.Equal(t, level(2), l)

	_, err = Parse[level]("medium")
	assert.EqualError(t, err, "bad level")
}

func TestParse_Time(t *testing.T) {
	d, err := Parse[time.Duration]("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	ts, err := Parse[time.Time]("2026-10-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())
}

func TestParse_Collections(t *testing.T) {
	ss, err := Parse[[]string]([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ss)

	is, err := Parse[[]int]([]any{1, "2"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, is)

	m, err := Parse[map[string]string](map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "v"}, m)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse[int]("forty-two")
	assert.Error(t, err)

	type point struct{ X, Y int }

	_, err = Parse[point]("1,2")
	require.Error(t, err)

	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Contains(t, err.Error(), "cannot convert string to")

	same, err := Parse[point](point{X: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, same.X)
}

func TestErrors(t *testing.T) {
	assert.Equal(t, `unknown field "x"`, (&UnknownFieldError{Name: "x"}).Error())
	assert.Equal(t, `missing field "x"`, (&MissingFieldError{Name: "x"}).Error())

	inner := errors.New("boom")
	fe := &FieldError{Name: "x", Err: inner}
	assert.Equal(t, `field "x": boom`, fe.Error())
	assert.ErrorIs(t, fe, inner)
}
