// Package directive models the declarative key/value annotations attached to
// containers and fields, and converts their values into typed settings.
//
// A directive is a name plus a value. Values come in five shapes:
//
//	skip                      word (name only)
//	rename='cnt'              string
//	skip=true                 bool
//	default=settings.Default  path (also written settings::Default)
//	checks(min='1', strict)   nested list
//
// The same text syntax is accepted in struct tags (`opt:"rename='cnt',skip"`)
// and in container comments (//optgen:rename_all='snake_case').
//
// Conversions (AsString, AsBool, AsPath) fail with a ShapeMismatchError
// when the value's shape does not fit the requested type. Consumers report
// names outside their vocabulary with UnknownDirectiveError.
package directive
