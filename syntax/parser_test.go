package syntax

import (
	"errors"
	"testing"
)

func lit(r rune) *Expr        { return newLiteral(r) }
func str(s string) *Expr      { return &Expr{Op: OpLiteralString, Str: s} }
func concat(l, r *Expr) *Expr { return &Expr{Op: OpConcat, Sub: []*Expr{l, r}} }
func union(l, r *Expr) *Expr  { return newUnion(l, r) }
func empty() *Expr            { return &Expr{Op: OpEmptyString} }

func TestParseTreeShapes(t *testing.T) {
	tests := []struct {
		pattern     string
		flags       Flags
		want        *Expr
		description string
	}{
		{"", NoFlags, empty(), "empty pattern"},
		{"", AllFlags, empty(), "empty pattern all flags"},
		{"()", AllFlags, empty(), "empty group"},
		{"a", NoFlags, lit('a'), "single literal"},
		{"ab", NoFlags, str("ab"), "literal run"},
		{"a()b", NoFlags, str("ab"), "empty group merges into run"},
		{".", NoFlags, &Expr{Op: OpAnyChar}, "any char"},
		{"a|b", NoFlags, union(lit('a'), lit('b')), "union"},
		{"|a", NoFlags, str("|a"), "leading bare union operator is literal"},
		{"a|b|c", NoFlags, union(lit('a'), union(lit('b'), lit('c'))), "union right-nests"},
		{"a&b", Intersection, newIntersection(lit('a'), lit('b')), "intersection enabled"},
		{"a&b", NoFlags, str("a&b"), "intersection disabled"},
		{"&a", Intersection, str("&a"), "leading bare intersection operator is literal"},
		{"a*", NoFlags, newStar(lit('a')), "star"},
		{"a+", NoFlags, newPlus(lit('a')), "plus"},
		{"a?", NoFlags, newOptional(lit('a')), "optional"},
		{"a**", NoFlags, newStar(newStar(lit('a'))), "postfix composes left to right"},
		{"a{3}", NoFlags, newRepeat(lit('a'), 3, 3), "exact repeat"},
		{"a{2,4}", NoFlags, newRepeat(lit('a'), 2, 4), "bounded repeat"},
		{"a{2,}", NoFlags, newRepeat(lit('a'), 2, Unbounded), "open-ended repeat"},
		{"{{1}", NoFlags, newRepeat(lit('{'), 1, 1), "doubled brace repeats the brace"},
		{"{1,2}", AllFlags, str("{1,2}"), "brace in atom position is literal"},
		{"~a", Complement, newComplement(lit('a')), "complement enabled"},
		{"~a", NoFlags, str("~a"), "complement disabled"},
		{"~a*", Complement, newStar(newComplement(lit('a'))), "postfix binds outside complement"},
		{"~~a", Complement, newComplement(newComplement(lit('a'))), "complement nests"},
		{"@", AnyString, &Expr{Op: OpAnyString}, "any string enabled"},
		{"@", NoFlags, lit('@'), "any string disabled"},
		{"#", EmptyLanguage, &Expr{Op: OpEmptyLanguage}, "empty language enabled"},
		{"#", NoFlags, lit('#'), "empty language disabled"},
		{`\*`, NoFlags, lit('*'), "escaped operator"},
		{`\a`, NoFlags, lit('a'), "escape is identity on ordinary characters"},
		{`"a|b"`, NoFlags, str("a|b"), "quoted run is raw"},
		{`""`, NoFlags, empty(), "quoted empty string"},
		{"(a|b)c", NoFlags, concat(union(lit('a'), lit('b')), lit('c')), "grouping"},
		{"<net>", AutomatonRef, newAutomatonRef("net"), "automaton reference"},
		{"<3,4>", AutomatonRef, newAutomatonRef("3,4"), "comma content is an identifier"},
		{"<1-10>", Interval, newInterval(1, 10, 0), "interval, uneven widths"},
		{"<01-12>", Interval, newInterval(1, 12, 2), "interval keeps zero-padding width"},
		{"<7-3>", Interval, newInterval(3, 7, 1), "interval bounds swap into order"},
		{"<", NoFlags, lit('<'), "angle bracket literal without flags"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := Parse(tt.pattern, tt.flags)
			if err != nil {
				t.Fatalf("Parse(%q, %v) failed: %v", tt.pattern, tt.flags, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q, %v) = %s (%v), want %s (%v)",
					tt.pattern, tt.flags, got, got.Op, tt.want, tt.want.Op)
			}
		})
	}
}

func TestParseCharClasses(t *testing.T) {
	tests := []struct {
		pattern     string
		want        *Expr
		description string
	}{
		{"[abc]", newCharClass([]CharRange{{'a', 'a'}, {'b', 'b'}, {'c', 'c'}}, false), "individual members"},
		{"[a-c]", newCharClass([]CharRange{{'a', 'c'}}, false), "single range"},
		{"[z-a]", newCharClass([]CharRange{{'a', 'z'}}, false), "reversed range normalizes"},
		{"[^a-c]", newCharClass([]CharRange{{'a', 'c'}}, true), "negated"},
		{"[^a]", newCharClass([]CharRange{{'a', 'a'}}, true), "negated single stays a class"},
		{"[-z]", newCharClass([]CharRange{{'-', '-'}, {'z', 'z'}}, false), "leading dash is literal"},
		{"[a-]", newCharClass([]CharRange{{'a', 'a'}, {'-', '-'}}, false), "trailing dash is literal"},
		{"[]]", lit(']'), "initial bracket is literal and the class collapses"},
		{"[][]", newCharClass([]CharRange{{']', ']'}, {'[', '['}}, false), "bracket members"},
		{"[a^]", newCharClass([]CharRange{{'a', 'a'}, {'^', '^'}}, false), "caret is literal after the first position"},
		{`[\]a]`, newCharClass([]CharRange{{']', ']'}, {'a', 'a'}}, false), "escaped bracket member"},
		{"[a-c2-4]", newCharClass([]CharRange{{'a', 'c'}, {'2', '4'}}, false), "multiple ranges stay unmerged"},
		{"[a-ca-c]", newCharClass([]CharRange{{'a', 'c'}, {'a', 'c'}}, false), "duplicate ranges stay as written"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := Parse(tt.pattern, NoFlags)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.pattern, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern     string
		flags       Flags
		wantPos     int
		wantMsg     string
		description string
	}{
		{"a|", NoFlags, 2, "unexpected end-of-string", "trailing union operator"},
		{"a|", AllFlags, 2, "unexpected end-of-string", "trailing union operator all flags"},
		{"a&", Intersection, 2, "unexpected end-of-string", "trailing intersection operator"},
		{"~", Complement, 1, "unexpected end-of-string", "complement without operand"},
		{`a\`, NoFlags, 2, "unexpected end-of-string", "trailing backslash"},
		{"(", NoFlags, 1, "unexpected end-of-string", "lone open paren"},
		{"(a", NoFlags, 2, "unterminated group", "unterminated group"},
		{"a)b", NoFlags, 1, "end-of-string expected", "unmatched close paren after content"},
		{`"ab`, NoFlags, 0, "unterminated quoted string", "unterminated quote"},
		{"[a", NoFlags, 0, "unterminated character class", "unterminated class"},
		{"x[a-", NoFlags, 4, "unexpected end-of-string", "class ends inside a range"},
		{"a{", NoFlags, 2, "integer expected", "repeat without integer"},
		{"a{x}", NoFlags, 2, "integer expected", "repeat with junk"},
		{"a{1", NoFlags, 3, "expected '}'", "unterminated repeat"},
		{"a{1;2}", NoFlags, 3, "expected '}'", "repeat with bad separator"},
		{"a{3,1}", NoFlags, 1, "invalid repeat range", "repeat min above max"},
		{"<abc", AutomatonRef, 0, "expected '>'", "unterminated reference"},
		{"<a>", Interval, 2, "interval syntax error", "identifier needs the reference flag"},
		{"<1-2>", AutomatonRef, 4, "illegal identifier", "interval needs the interval flag"},
		{"<1-2-3>", Interval, 6, "interval syntax error", "multiple separators"},
		{"<-1>", Interval, 3, "interval syntax error", "missing lower bound"},
		{"<1->", Interval, 3, "interval syntax error", "missing upper bound"},
		{"<a-b>", Interval, 4, "interval syntax error", "non-numeric bounds"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := Parse(tt.pattern, tt.flags)
			if err == nil {
				t.Fatalf("Parse(%q, %v) succeeded, want error", tt.pattern, tt.flags)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Parse(%q, %v) error type %T, want *SyntaxError", tt.pattern, tt.flags, err)
			}
			if se.Msg != tt.wantMsg {
				t.Errorf("Parse(%q, %v) error msg %q, want %q", tt.pattern, tt.flags, se.Msg, tt.wantMsg)
			}
			if se.Pos != tt.wantPos {
				t.Errorf("Parse(%q, %v) error pos %d, want %d", tt.pattern, tt.flags, se.Pos, tt.wantPos)
			}
		})
	}
}

func TestFlagGating(t *testing.T) {
	tests := []struct {
		pattern string
		flag    Flags
	}{
		{"a&b", Intersection},
		{"~a", Complement},
		{"#", EmptyLanguage},
		{"@", AnyString},
		{"<x>", AutomatonRef},
		{"<1-2>", Interval},
	}

	for _, tt := range tests {
		t.Run(tt.flag.String(), func(t *testing.T) {
			e, err := Parse(tt.pattern, AllFlags)
			if err != nil {
				t.Fatalf("Parse(%q, AllFlags) failed: %v", tt.pattern, err)
			}
			if e.RequiredFlags()&tt.flag == 0 {
				t.Errorf("Parse(%q, AllFlags) produced no %v node", tt.pattern, tt.flag)
			}

			// Without the flag the pattern either fails or parses to a
			// tree free of the gated node kind.
			e, err = Parse(tt.pattern, AllFlags&^tt.flag)
			if err != nil {
				return
			}
			if got := e.RequiredFlags() & tt.flag; got != 0 {
				t.Errorf("Parse(%q, AllFlags&^%v) produced a gated node", tt.pattern, tt.flag)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("a|", NoFlags)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "syntax error at position 2: unexpected end-of-string"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
