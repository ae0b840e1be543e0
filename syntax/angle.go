package syntax

import (
	"strconv"
	"strings"
)

// parseAngle classifies the content between '<' and '>'. Content
// containing a '-' is a numeric interval and requires the Interval
// flag; anything else is an identifier and requires AutomatonRef. The
// '<' has already been consumed, which only happens when at least one
// of the two flags is enabled.
func (p *parser) parseAngle() (*Expr, error) {
	open := p.pos - 1
	start := p.pos
	for p.more() && !p.peek(">") {
		p.pos++
	}
	if !p.match('>') {
		return nil, syntaxError(open, "expected '>'")
	}
	s := string(p.src[start : p.pos-1])
	if !strings.ContainsRune(s, '-') {
		if !p.check(AutomatonRef) {
			return nil, syntaxError(p.pos-1, "interval syntax error")
		}
		return newAutomatonRef(s), nil
	}
	if !p.check(Interval) {
		return nil, syntaxError(p.pos-1, "illegal identifier")
	}
	return p.parseIntervalBody(s)
}

// parseIntervalBody parses digits '-' digits. The recorded digit width
// is the common length of the two bounds when they agree, so that
// <01-12> reprints with its leading zeros; reversed bounds are swapped.
func (p *parser) parseIntervalBody(s string) (*Expr, error) {
	i := strings.IndexByte(s, '-')
	if i == 0 || i == len(s)-1 || i != strings.LastIndexByte(s, '-') {
		return nil, syntaxError(p.pos-1, "interval syntax error")
	}
	smin, smax := s[:i], s[i+1:]
	min, err := strconv.Atoi(smin)
	if err != nil {
		return nil, syntaxError(p.pos-1, "interval syntax error")
	}
	max, err := strconv.Atoi(smax)
	if err != nil {
		return nil, syntaxError(p.pos-1, "interval syntax error")
	}
	digits := 0
	if len(smin) == len(smax) {
		digits = len(smin)
	}
	if min > max {
		min, max = max, min
	}
	return newInterval(min, max, digits), nil
}
