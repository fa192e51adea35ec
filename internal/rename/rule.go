// Package rename implements container-wide rules that map a Go field name to
// the external name its directive input is keyed by.
package rename

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"optgen/internal/common"
	"optgen/internal/match"
)

// Rule is a pure mapping from a field name to its external name.
type Rule int

const (
	None               Rule = iota // field name unchanged
	Lower                          // lowercase
	Upper                          // UPPERCASE
	Pascal                         // PascalCase
	Camel                          // camelCase
	Snake                          // snake_case
	ScreamingSnake                 // SCREAMING_SNAKE_CASE
	Kebab                          // kebab-case
	ScreamingKebab                 // SCREAMING-KEBAB-CASE
	ruleCount
)

var ruleNames = [...]string{
	None:           "none",
	Lower:          "lowercase",
	Upper:          "UPPERCASE",
	Pascal:         "PascalCase",
	Camel:          "camelCase",
	Snake:          "snake_case",
	ScreamingSnake: "SCREAMING_SNAKE_CASE",
	Kebab:          "kebab-case",
	ScreamingKebab: "SCREAMING-KEBAB-CASE",
}

// Names returns the accepted rule names in declaration order.
func Names() []string {
	return append([]string(nil), ruleNames[:]...)
}

// String returns the rule name as written in directives.
func (r Rule) String() string {
	if r < 0 || r >= ruleCount {
		return common.UnknownStr
	}

	return ruleNames[r]
}

// Parse looks up a rule by its directive name. The empty string is None.
func Parse(name string) (Rule, error) {
	if name == "" {
		return None, nil
	}

	for r, n := range ruleNames {
		if n == name {
			return Rule(r), nil
		}
	}

	if s := match.Suggest(name, ruleNames[:]); s != "" {
		return None, fmt.Errorf("unknown rename rule %q (did you mean %q?)", name, s)
	}

	return None, fmt.Errorf("unknown rename rule %q", name)
}

// Apply maps a field name to its external name.
// Casers are built per call since they are not safe for concurrent use.
func (r Rule) Apply(field string) string {
	if r == None {
		return field
	}

	words := match.Words(field)
	if len(words) == 0 {
		return field
	}

	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)
	title := cases.Title(language.Und)

	mapWords := func(c cases.Caser) []string {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = c.String(w)
		}

		return out
	}

	switch r {
	case Lower:
		return strings.Join(mapWords(lower), "")
	case Upper:
		return strings.Join(mapWords(upper), "")
	case Pascal:
		return strings.Join(mapWords(title), "")
	case Camel:
		titled := mapWords(title)
		titled[0] = lower.String(words[0])

		return strings.Join(titled, "")
	case Snake:
		return strings.Join(mapWords(lower), "_")
	case ScreamingSnake:
		return strings.Join(mapWords(upper), "_")
	case Kebab:
		return strings.Join(mapWords(lower), "-")
	case ScreamingKebab:
		return strings.Join(mapWords(upper), "-")
	default:
		return field
	}
}
