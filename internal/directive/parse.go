package directive

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses directive text such as "rename='cnt', default=my::default, skip".
//
// Grammar:
//
//	list  = [ entry { "," entry } [ "," ] ]
//	entry = name [ "=" value | "(" list ")" ]
//	value = quoted | "true" | "false" | path | "(" list ")"
//
// Quoted strings use single or double quotes with backslash escapes.
// Empty input yields an empty list.
func Parse(input string) (List, error) {
	p := &parser{input: input}

	items, err := p.list()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.peek())
	}

	return items, nil
}

type parser struct {
	input string
	pos   int
	depth int
}

func (p *parser) list() (List, error) {
	var items List

	for {
		p.skipSpace()

		if p.eof() || p.peek() == ')' {
			return items, nil
		}

		d, err := p.entry()
		if err != nil {
			return nil, err
		}

		items = append(items, d)

		p.skipSpace()

		if p.eof() || p.peek() == ')' {
			return items, nil
		}

		if p.peek() != ',' {
			return nil, p.errorf("expected ',' after %q, found %q", d.Name, p.peek())
		}

		p.pos++
	}
}

func (p *parser) entry() (Directive, error) {
	name := p.ident()
	if name == "" {
		return Directive{}, p.errorf("expected directive name")
	}

	p.skipSpace()

	if p.eof() {
		return Word(name), nil
	}

	switch p.peek() {
	case '=':
		p.pos++

		v, err := p.value()
		if err != nil {
			return Directive{}, err
		}

		return New(name, v), nil

	case '(':
		v, err := p.nested()
		if err != nil {
			return Directive{}, err
		}

		return New(name, v), nil

	default:
		return Word(name), nil
	}
}

func (p *parser) value() (Value, error) {
	p.skipSpace()

	if p.eof() {
		return Value{}, p.errorf("expected value")
	}

	switch c := p.peek(); c {
	case '\'', '"':
		s, err := p.quoted(c)
		if err != nil {
			return Value{}, err
		}

		return StringValue(s), nil

	case '(':
		return p.nested()
	}

	start := p.pos
	token := p.token()

	switch token {
	case "":
		return Value{}, p.errorf("expected value, found %q", p.peek())
	case "true":
		return BoolValue(true), nil
	case "false":
		return BoolValue(false), nil
	}

	path, err := ParsePath(token)
	if err != nil {
		return Value{}, &SyntaxError{Input: p.input, Offset: start, Msg: err.Error()}
	}

	return PathValue(path), nil
}

func (p *parser) nested() (Value, error) {
	const maxDepth = 32

	p.pos++ // '('
	p.depth++

	if p.depth > maxDepth {
		return Value{}, p.errorf("lists nested deeper than %d", maxDepth)
	}

	items, err := p.list()
	if err != nil {
		return Value{}, err
	}

	if p.eof() || p.peek() != ')' {
		return Value{}, p.errorf("unterminated list")
	}

	p.pos++
	p.depth--

	return ListValue(items...), nil
}

func (p *parser) quoted(q byte) (string, error) {
	start := p.pos
	p.pos++

	var sb strings.Builder

	for !p.eof() {
		c := p.input[p.pos]

		switch {
		case c == q:
			p.pos++
			return sb.String(), nil

		case c == '\\' && p.pos+1 < len(p.input):
			p.pos++
			sb.WriteByte(p.input[p.pos])
			p.pos++

		default:
			sb.WriteByte(c)
			p.pos++
		}
	}

	return "", &SyntaxError{Input: p.input, Offset: start, Msg: "unterminated string"}
}

// ident reads a directive name: letters, digits, '_' and '-'.
func (p *parser) ident() string {
	start := p.pos

	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		p.pos += size
	}

	return p.input[start:p.pos]
}

// token reads a bare value up to the next delimiter.
func (p *parser) token() string {
	start := p.pos

	for !p.eof() {
		c := p.input[p.pos]
		if c == ',' || c == '(' || c == ')' || c == '=' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			break
		}

		p.pos++
	}

	return p.input[start:p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Input: p.input, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}
