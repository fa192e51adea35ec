package directive

// AsString converts a string literal value.
func (d Directive) AsString() (string, error) {
	if d.Value.Kind != KindString {
		return "", d.mismatch("string", nil)
	}

	return d.Value.Str, nil
}

// AsBool converts a boolean value. A bare word means true.
func (d Directive) AsBool() (bool, error) {
	switch d.Value.Kind {
	case KindWord:
		return true, nil
	case KindBool:
		return d.Value.Bool, nil
	default:
		return false, d.mismatch("bool", nil)
	}
}

// AsPath converts a path value. A string literal is parsed as a path.
func (d Directive) AsPath() (Path, error) {
	switch d.Value.Kind {
	case KindPath:
		return d.Value.Path, nil
	case KindString:
		p, err := ParsePath(d.Value.Str)
		if err != nil {
			return nil, d.mismatch("path", err)
		}

		return p, nil
	default:
		return nil, d.mismatch("path", nil)
	}
}

// Mismatch returns a ShapeMismatchError for d, for consumers that accept a
// combination of shapes the As* helpers do not cover.
func (d Directive) Mismatch(want string) error {
	return d.mismatch(want, nil)
}

func (d Directive) mismatch(want string, cause error) error {
	return &ShapeMismatchError{
		Name: d.Name,
		Want: want,
		Got:  d.Value.Kind,
		Err:  cause,
	}
}
