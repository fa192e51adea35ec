// Package fromvalue is the runtime support for parsers generated by optgen.
//
// Parse is the default field parser: generated code calls
// fromvalue.Parse[T](v) for every field without a custom "with" function.
package fromvalue

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// Parse converts v to T. Values already of type T are returned as is.
// Otherwise the conversion follows T's kind, so named types such as
// "type Port int" parse like their underlying type:
//   - strings, bools, integers and floats use github.com/spf13/cast
//   - time.Duration accepts "1m30s" style strings and integer nanoseconds
//   - time.Time accepts RFC 3339 strings and integer Unix seconds
//   - []string, []int, map[string]any and map[string]string
//   - types whose pointer implements encoding.TextUnmarshaler accept strings
func Parse[T any](v any) (T, error) {
	var zero T

	if t, ok := v.(T); ok {
		return t, nil
	}

	if s, ok := v.(string); ok {
		if u, ok := any(&zero).(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(s)); err != nil {
				return zero, err
			}

			return zero, nil
		}
	}

	rt := reflect.TypeFor[T]()

	out, err := convert(rt, v)
	if err != nil {
		return zero, err
	}

	rv := reflect.ValueOf(out)
	if !rv.IsValid() || !rv.Type().ConvertibleTo(rt) {
		return zero, &TypeError{Want: rt.String(), Got: v}
	}

	return rv.Convert(rt).Interface().(T), nil
}

func convert(rt reflect.Type, v any) (any, error) {
	switch rt {
	case durationType:
		return cast.ToDurationE(v)
	case timeType:
		return cast.ToTimeE(v)
	}

	switch rt.Kind() {
	case reflect.String:
		return cast.ToStringE(v)
	case reflect.Bool:
		return cast.ToBoolE(v)
	case reflect.Int:
		return cast.ToIntE(v)
	case reflect.Int8:
		return cast.ToInt8E(v)
	case reflect.Int16:
		return cast.ToInt16E(v)
	case reflect.Int32:
		return cast.ToInt32E(v)
	case reflect.Int64:
		return cast.ToInt64E(v)
	case reflect.Uint:
		return cast.ToUintE(v)
	case reflect.Uint8:
		return cast.ToUint8E(v)
	case reflect.Uint16:
		return cast.ToUint16E(v)
	case reflect.Uint32:
		return cast.ToUint32E(v)
	case reflect.Uint64:
		return cast.ToUint64E(v)
	case reflect.Float32:
		return cast.ToFloat32E(v)
	case reflect.Float64:
		return cast.ToFloat64E(v)
	case reflect.Slice:
		switch rt.Elem().Kind() {
		case reflect.String:
			return cast.ToStringSliceE(v)
		case reflect.Int:
			return cast.ToIntSliceE(v)
		}
	case reflect.Map:
		if rt.Key().Kind() == reflect.String {
			switch rt.Elem().Kind() {
			case reflect.Interface:
				return cast.ToStringMapE(v)
			case reflect.String:
				return cast.ToStringMapStringE(v)
			}
		}
	}

	return nil, &TypeError{Want: rt.String(), Got: v}
}

// TypeError reports a value Parse has no conversion for.
type TypeError struct {
	Want string
	Got  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot convert %T to %s", e.Got, e.Want)
}

// UnknownFieldError reports a key that matches no field.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

// MissingFieldError reports an absent key for a field without a default.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Name)
}

// FieldError reports a value that failed to parse.
type FieldError struct {
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Name, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
