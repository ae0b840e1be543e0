package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// metaChars are the characters that can carry operator meaning in some
// position under some flag set. Literals drawn from this set are
// backslash-escaped when emitted bare, so the canonical form reparses
// identically under every flag combination.
const metaChars = "|&?*+{},![]()\"<>\\^-.#@~"

// Printer precedence levels, loosest to tightest. A child whose level
// is looser than its position requires parentheses. Complement sits
// above the postfix repetitions: ~a* means Star(Complement(a)), so
// Complement(Star(a)) must print as ~(a*).
const (
	precUnion = iota
	precIntersection
	precConcat
	precRepeat
	precComplement
	precAtom
)

// String renders the canonical textual form of the tree. It is total
// and never fails; reparsing the result under the tree's RequiredFlags
// (or any superset) yields a language-equivalent tree whose String is
// identical, so the canonical form is a fixpoint.
func (e *Expr) String() string {
	var b strings.Builder
	writeExpr(&b, e, precUnion)
	return b.String()
}

func exprPrec(e *Expr) int {
	switch e.Op {
	case OpUnion:
		return precUnion
	case OpIntersection:
		return precIntersection
	case OpConcat:
		return precConcat
	case OpLiteralString:
		if !strings.ContainsRune(e.Str, '"') && strings.ContainsAny(e.Str, metaChars) {
			return precAtom // prints as one quoted token
		}
		return precConcat // prints as a bare or escaped character run
	case OpStar, OpPlus, OpOptional, OpRepeat:
		return precRepeat
	case OpComplement:
		return precComplement
	default:
		return precAtom
	}
}

func writeExpr(b *strings.Builder, e *Expr, min int) {
	if exprPrec(e) < min {
		b.WriteByte('(')
		writeInner(b, e)
		b.WriteByte(')')
		return
	}
	writeInner(b, e)
}

func writeInner(b *strings.Builder, e *Expr) {
	switch e.Op {
	case OpLiteral:
		writeEscaped(b, e.Rune)
	case OpLiteralString:
		writeLiteralString(b, e.Str)
	case OpConcat:
		writeConcat(b, e)
	case OpUnion:
		writeExpr(b, e.Sub[0], precUnion)
		b.WriteByte('|')
		writeExpr(b, e.Sub[1], precUnion)
	case OpIntersection:
		writeExpr(b, e.Sub[0], precIntersection)
		b.WriteByte('&')
		writeExpr(b, e.Sub[1], precIntersection)
	case OpComplement:
		b.WriteByte('~')
		writeExpr(b, e.Sub[0], precComplement)
	case OpStar:
		writeExpr(b, e.Sub[0], precRepeat)
		b.WriteByte('*')
	case OpPlus:
		writeExpr(b, e.Sub[0], precRepeat)
		b.WriteByte('+')
	case OpOptional:
		writeExpr(b, e.Sub[0], precRepeat)
		b.WriteByte('?')
	case OpRepeat:
		writeExpr(b, e.Sub[0], precRepeat)
		if e.Max == Unbounded {
			fmt.Fprintf(b, "{%d,}", e.Min)
		} else {
			fmt.Fprintf(b, "{%d,%d}", e.Min, e.Max)
		}
	case OpAnyChar:
		b.WriteByte('.')
	case OpAnyString:
		b.WriteByte('@')
	case OpEmptyLanguage:
		b.WriteByte('#')
	case OpEmptyString:
		b.WriteString(`""`)
	case OpCharClass:
		writeCharClass(b, e)
	case OpInterval:
		b.WriteByte('<')
		writePadded(b, e.Min, e.Digits)
		b.WriteByte('-')
		writePadded(b, e.Max, e.Digits)
		b.WriteByte('>')
	case OpAutomatonRef:
		b.WriteByte('<')
		b.WriteString(e.Str)
		b.WriteByte('>')
	default:
		panic(fmt.Sprintf("syntax: cannot print unknown op %d", e.Op))
	}
}

// writeConcat prints the concat spine left to right, coalescing
// adjacent literal material into one maximal run first. The parser
// merges runs pairwise, but grouping can leave a run split across the
// spine; printed split, the pieces merge on reparse and the reparsed
// tree prints differently.
func writeConcat(b *strings.Builder, e *Expr) {
	var run strings.Builder
	hasRun := false
	flush := func() {
		if hasRun {
			writeExpr(b, newLiteralString(run.String()), precConcat)
			run.Reset()
			hasRun = false
		}
	}
	var walk func(*Expr)
	walk = func(e *Expr) {
		if e.Op == OpConcat {
			walk(e.Sub[0])
			walk(e.Sub[1])
			return
		}
		if s, ok := literalRun(e); ok {
			run.WriteString(s)
			hasRun = true
			return
		}
		flush()
		writeExpr(b, e, precConcat)
	}
	walk(e)
	flush()
}

func writeEscaped(b *strings.Builder, r rune) {
	if strings.ContainsRune(metaChars, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

// writeLiteralString renders a maximal literal run: bare when no
// character could be misread as an operator, quoted when the run has
// operator characters but no quote, and character by character with
// escapes otherwise.
func writeLiteralString(b *strings.Builder, s string) {
	switch {
	case strings.ContainsRune(s, '"'):
		for _, r := range s {
			writeEscaped(b, r)
		}
	case strings.ContainsAny(s, metaChars):
		b.WriteByte('"')
		b.WriteString(s)
		b.WriteByte('"')
	default:
		b.WriteString(s)
	}
}

// writeCharClass renders the class with every endpoint escaped, which
// keeps members like ']' and '-' unambiguous without tracking position.
func writeCharClass(b *strings.Builder, e *Expr) {
	b.WriteByte('[')
	if e.Negated {
		b.WriteByte('^')
	}
	for _, r := range e.Ranges {
		b.WriteByte('\\')
		b.WriteRune(r.Lo)
		if r.Hi != r.Lo {
			b.WriteString(`-\`)
			b.WriteRune(r.Hi)
		}
	}
	b.WriteByte(']')
}

func writePadded(b *strings.Builder, n, width int) {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
