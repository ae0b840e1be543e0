package syntax

import (
	"strconv"
	"strings"
)

// Parse compiles pattern into an expression tree under the given flag
// set. Failures are reported as *SyntaxError; there is no partial
// result. The tree never contains a node whose enabling flag is absent
// from flags.
func Parse(pattern string, flags Flags) (*Expr, error) {
	p := &parser{src: []rune(pattern), flags: flags}
	if len(p.src) == 0 {
		return &Expr{Op: OpEmptyString}, nil
	}
	e, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.more() {
		// Typically an unmatched ')' after a complete expression.
		return nil, syntaxError(p.pos, "end-of-string expected")
	}
	return e, nil
}

// parser is a cursor over the pattern runes. The grammar needs no
// backtracking: operator characters in atom position are consumed as
// literals directly, which is what the literal-fallback rules amount to.
type parser struct {
	src   []rune
	pos   int
	flags Flags
}

func (p *parser) check(f Flags) bool { return p.flags&f != 0 }

func (p *parser) more() bool { return p.pos < len(p.src) }

// peek reports whether the next character is one of set.
func (p *parser) peek(set string) bool {
	return p.more() && strings.ContainsRune(set, p.src[p.pos])
}

// match consumes the next character if it equals r.
func (p *parser) match(r rune) bool {
	if p.more() && p.src[p.pos] == r {
		p.pos++
		return true
	}
	return false
}

// next consumes and returns the next character.
func (p *parser) next() (rune, error) {
	if !p.more() {
		return 0, syntaxError(p.pos, "unexpected end-of-string")
	}
	r := p.src[p.pos]
	p.pos++
	return r, nil
}

// parseUnion parses intersection ('|' intersection)*, right-nested.
// A '|' with no following operand is a hard error; a '|' with no valid
// preceding operand never reaches here because the atom parser consumes
// it as a literal.
func (p *parser) parseUnion() (*Expr, error) {
	e, err := p.parseIntersection()
	if err != nil {
		return nil, err
	}
	if p.match('|') {
		r, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		e = newUnion(e, r)
	}
	return e, nil
}

// parseIntersection parses concat ('&' concat)* when the Intersection
// flag is enabled; otherwise '&' stays an ordinary literal and is
// handled downstream.
func (p *parser) parseIntersection() (*Expr, error) {
	e, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if p.check(Intersection) && p.match('&') {
		r, err := p.parseIntersection()
		if err != nil {
			return nil, err
		}
		e = newIntersection(e, r)
	}
	return e, nil
}

// parseConcat parses one or more repetition-level terms. Concatenation
// stops at ')' and '|', and at '&' only when it is an operator.
func (p *parser) parseConcat() (*Expr, error) {
	e, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	if p.more() && !p.peek(")|") && (!p.check(Intersection) || !p.peek("&")) {
		r, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		e = newConcat(e, r)
	}
	return e, nil
}

// parseRepeat parses an atom followed by any number of postfix
// repetitions, composing left to right: a** is Star(Star(a)).
func (p *parser) parseRepeat() (*Expr, error) {
	e, err := p.parseComplement()
	if err != nil {
		return nil, err
	}
	for p.peek("?*+{") {
		switch {
		case p.match('?'):
			e = newOptional(e)
		case p.match('*'):
			e = newStar(e)
		case p.match('+'):
			e = newPlus(e)
		default:
			p.pos++ // '{'
			open := p.pos - 1
			min, err := p.parseInt()
			if err != nil {
				return nil, err
			}
			max := min
			if p.match(',') {
				max = Unbounded
				if p.peekDigit() {
					max, err = p.parseInt()
					if err != nil {
						return nil, err
					}
				}
			}
			if !p.match('}') {
				return nil, syntaxError(p.pos, "expected '}'")
			}
			if max != Unbounded && min > max {
				return nil, syntaxError(open, "invalid repeat range")
			}
			e = newRepeat(e, min, max)
		}
	}
	return e, nil
}

func (p *parser) peekDigit() bool { return p.peek("0123456789") }

// parseInt consumes a run of decimal digits.
func (p *parser) parseInt() (int, error) {
	start := p.pos
	for p.peekDigit() {
		p.pos++
	}
	if start == p.pos {
		return 0, syntaxError(p.pos, "integer expected")
	}
	n, err := strconv.Atoi(string(p.src[start:p.pos]))
	if err != nil {
		return 0, syntaxError(start, "integer expected")
	}
	return n, nil
}

// parseComplement parses '~' prefixes when the Complement flag is
// enabled. A disabled '~' falls through to the atom parser and becomes
// a literal.
func (p *parser) parseComplement() (*Expr, error) {
	if p.check(Complement) && p.match('~') {
		e, err := p.parseComplement()
		if err != nil {
			return nil, err
		}
		return newComplement(e), nil
	}
	return p.parseCharClassExpr()
}

// parseSimple parses a single atom. Any character without an enabled
// operator meaning at this position, and any escaped character, is a
// literal.
func (p *parser) parseSimple() (*Expr, error) {
	switch {
	case p.match('.'):
		return &Expr{Op: OpAnyChar}, nil
	case p.check(EmptyLanguage) && p.match('#'):
		return &Expr{Op: OpEmptyLanguage}, nil
	case p.check(AnyString) && p.match('@'):
		return &Expr{Op: OpAnyString}, nil
	case p.match('"'):
		return p.parseQuoted()
	case p.match('('):
		return p.parseGroup()
	case (p.check(AutomatonRef) || p.check(Interval)) && p.match('<'):
		return p.parseAngle()
	default:
		r, err := p.parseChar()
		if err != nil {
			return nil, err
		}
		return newLiteral(r), nil
	}
}

// parseQuoted consumes a literal run up to the closing quote. The run
// is raw: no character inside it has operator meaning.
func (p *parser) parseQuoted() (*Expr, error) {
	start := p.pos
	for p.more() && !p.peek("\"") {
		p.pos++
	}
	if !p.match('"') {
		return nil, syntaxError(start-1, "unterminated quoted string")
	}
	return newLiteralString(string(p.src[start : p.pos-1])), nil
}

// parseGroup parses a parenthesized union; () is the empty string.
func (p *parser) parseGroup() (*Expr, error) {
	if p.match(')') {
		return &Expr{Op: OpEmptyString}, nil
	}
	e, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if !p.match(')') {
		return nil, syntaxError(p.pos, "unterminated group")
	}
	return e, nil
}

// parseChar consumes one character, honoring a '\' escape. Escaping
// strips operator meaning from any character.
func (p *parser) parseChar() (rune, error) {
	p.match('\\')
	return p.next()
}
