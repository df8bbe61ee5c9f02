package extract

import (
	"fmt"
	"strings"
	"unicode"
)

// The player script declares its arrays in relaxed JavaScript literal
// syntax (unquoted keys, single quotes, trailing commas), which
// encoding/json rejects. parseObjectArray is a strict literal parser for
// exactly that shape: an array of flat objects. Nothing is ever
// evaluated; anything outside the literal grammar is an error.

type literalParser struct {
	src string
	pos int
}

// parseObjectArray parses a relaxed array-of-objects literal into maps.
// Scalar values are kept as strings; nested arrays or objects are
// skipped and recorded as empty.
func parseObjectArray(src string) ([]map[string]string, error) {
	p := &literalParser{src: src}
	p.skipSpace()
	items, err := p.array()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing data after array")
	}
	return items, nil
}

func (p *literalParser) array() ([]map[string]string, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}

	var items []map[string]string
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated array")
		}
		if p.src[p.pos] == ']' {
			p.pos++
			return items, nil
		}

		obj, err := p.object()
		if err != nil {
			return nil, err
		}
		items = append(items, obj)

		p.skipSpace()
		if !p.eof() && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		p.skipSpace()
		if p.eof() || p.src[p.pos] != ']' {
			return nil, p.errorf("expected ',' or ']' after array element")
		}
	}
}

func (p *literalParser) object() (map[string]string, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}

	obj := make(map[string]string)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated object")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return obj, nil
		}

		key, err := p.key()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		p.skipSpace()
		value, err := p.value()
		if err != nil {
			return nil, err
		}
		obj[key] = value

		p.skipSpace()
		if !p.eof() && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		p.skipSpace()
		if p.eof() || p.src[p.pos] != '}' {
			return nil, p.errorf("expected ',' or '}' after object member")
		}
	}
}

// key accepts a bare identifier or a quoted string.
func (p *literalParser) key() (string, error) {
	if p.eof() {
		return "", p.errorf("expected object key")
	}
	if c := p.src[p.pos]; c == '"' || c == '\'' {
		return p.quoted()
	}

	start := p.pos
	for !p.eof() {
		c := rune(p.src[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '$' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected object key")
	}
	return p.src[start:p.pos], nil
}

// value accepts a quoted string, a bare scalar token, or a nested
// array/object (skipped, yielded as "").
func (p *literalParser) value() (string, error) {
	if p.eof() {
		return "", p.errorf("expected value")
	}
	switch c := p.src[p.pos]; {
	case c == '"' || c == '\'':
		return p.quoted()
	case c == '[' || c == '{':
		if err := p.skipBalanced(); err != nil {
			return "", err
		}
		return "", nil
	default:
		// Bare scalars only: numbers, true/false/null. Anything else
		// (identifiers, calls) is outside the literal grammar and will
		// trip the separator check that follows.
		start := p.pos
		for !p.eof() && strings.IndexByte("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_.+-", p.src[p.pos]) != -1 {
			p.pos++
		}
		if p.pos == start {
			return "", p.errorf("expected value")
		}
		return p.src[start:p.pos], nil
	}
}

// quoted parses a single- or double-quoted string with backslash escapes.
func (p *literalParser) quoted() (string, error) {
	quote := p.src[p.pos]
	p.pos++

	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if p.eof() {
				return "", p.errorf("unterminated escape")
			}
			switch esc := p.src[p.pos]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(esc)
			}
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}

// skipBalanced consumes a nested array or object, honoring strings so
// brackets inside quotes don't count.
func (p *literalParser) skipBalanced() error {
	depth := 0
	for !p.eof() {
		switch p.src[p.pos] {
		case '[', '{':
			depth++
			p.pos++
		case ']', '}':
			depth--
			p.pos++
			if depth == 0 {
				return nil
			}
		case '"', '\'':
			if _, err := p.quoted(); err != nil {
				return err
			}
		default:
			p.pos++
		}
	}
	return p.errorf("unterminated nested literal")
}

func (p *literalParser) expect(c byte) error {
	if p.eof() || p.src[p.pos] != c {
		return p.errorf("expected %q", string(c))
	}
	p.pos++
	return nil
}

func (p *literalParser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *literalParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *literalParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("literal at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}
