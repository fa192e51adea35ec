// Package options resolves directive-annotated containers and fields into
// typed, immutable settings for code generation.
//
// Resolution of a field runs in two phases:
//
//  1. ParseField reads the field's own directives (rename, default, with,
//     skip) and returns a ParsedField. The first unknown directive or
//     malformed value aborts the field.
//  2. ParsedField.Resolve merges the container's policy into the parsed
//     settings and returns the final Field. Explicit field settings always
//     win: the container rename rule applies only to fields without a
//     rename, and the container default applies only to fields without a
//     default, as DefaultInherit.
//
// Fields resolved outside a container use ParsedField.Finish instead.
package options
