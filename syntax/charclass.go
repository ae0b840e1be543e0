package syntax

// parseCharClassExpr parses a '[...]' character class, or defers to the
// atom parser. '^' negates only when it immediately follows '['. A ']'
// as the very first member is a literal; the class terminates at the
// first later ']'.
func (p *parser) parseCharClassExpr() (*Expr, error) {
	if !p.match('[') {
		return p.parseSimple()
	}
	open := p.pos - 1
	negated := p.match('^')
	ranges, err := p.parseClassMember(nil)
	if err != nil {
		return nil, err
	}
	for p.more() && !p.peek("]") {
		ranges, err = p.parseClassMember(ranges)
		if err != nil {
			return nil, err
		}
	}
	if !p.match(']') {
		return nil, syntaxError(open, "unterminated character class")
	}
	return newCharClass(ranges, negated), nil
}

// parseClassMember appends one class member: either a range, or a
// single character. A '-' with no right-hand character (trailing before
// ']') is a literal member, as is a leading '-'.
func (p *parser) parseClassMember(ranges []CharRange) ([]CharRange, error) {
	lo, err := p.parseChar()
	if err != nil {
		return nil, err
	}
	if p.match('-') {
		if p.peek("]") {
			return append(ranges, CharRange{lo, lo}, CharRange{'-', '-'}), nil
		}
		hi, err := p.parseChar()
		if err != nil {
			return nil, err
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		return append(ranges, CharRange{lo, hi}), nil
	}
	return append(ranges, CharRange{lo, lo}), nil
}
