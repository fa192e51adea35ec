package invalid

// Mode is annotated but is not a struct.
//
//optgen:default
type Mode int

// Bad has a malformed field tag.
//
//optgen:
type Bad struct {
	Name string `opt:"rename='unterminated"`
}
