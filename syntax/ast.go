package syntax

// Op tags the kind of an expression node.
type Op uint8

const (
	OpLiteral       Op = iota + 1 // single literal character
	OpLiteralString               // run of literal characters
	OpConcat                      // sequential composition, two operands
	OpUnion                       // alternation, two operands
	OpIntersection                // requires Intersection flag
	OpComplement                  // requires Complement flag
	OpStar                        // zero or more
	OpPlus                        // one or more
	OpOptional                    // zero or one
	OpRepeat                      // bounded or half-bounded repetition
	OpAnyChar                     // exactly one arbitrary character
	OpAnyString                   // requires AnyString flag
	OpEmptyLanguage               // requires EmptyLanguage flag
	OpEmptyString                 // the zero-length sequence
	OpCharClass                   // character class
	OpInterval                    // requires Interval flag
	OpAutomatonRef                // requires AutomatonRef flag
)

var opNames = []string{
	OpLiteral:       "Literal",
	OpLiteralString: "LiteralString",
	OpConcat:        "Concat",
	OpUnion:         "Union",
	OpIntersection:  "Intersection",
	OpComplement:    "Complement",
	OpStar:          "Star",
	OpPlus:          "Plus",
	OpOptional:      "Optional",
	OpRepeat:        "Repeat",
	OpAnyChar:       "AnyChar",
	OpAnyString:     "AnyString",
	OpEmptyLanguage: "EmptyLanguage",
	OpEmptyString:   "EmptyString",
	OpCharClass:     "CharClass",
	OpInterval:      "Interval",
	OpAutomatonRef:  "AutomatonRef",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Unknown"
}

// CharRange is a closed character range inside a character class.
// Lo <= Hi always holds; a single character is stored as Lo == Hi.
type CharRange struct {
	Lo, Hi rune
}

// Unbounded marks a Repeat with no upper bound.
const Unbounded = -1

// Expr is a node of the expression tree. Which fields are meaningful
// depends on Op. Trees are immutable once returned by Parse and may be
// shared freely between goroutines.
type Expr struct {
	Op      Op
	Sub     []*Expr     // operands: two for Concat/Union/Intersection, one for the repetitions and Complement
	Rune    rune        // OpLiteral
	Str     string      // OpLiteralString, OpAutomatonRef
	Min     int         // OpRepeat, OpInterval
	Max     int         // OpRepeat (Unbounded when open-ended), OpInterval
	Digits  int         // OpInterval: zero-padding width, 0 for none
	Ranges  []CharRange // OpCharClass
	Negated bool        // OpCharClass
}

// RequiredFlags returns the flag set a parser would need to reproduce
// this tree. A tree parsed under flags f always satisfies
// RequiredFlags() & ^f == 0.
func (e *Expr) RequiredFlags() Flags {
	var f Flags
	switch e.Op {
	case OpIntersection:
		f = Intersection
	case OpComplement:
		f = Complement
	case OpEmptyLanguage:
		f = EmptyLanguage
	case OpAnyString:
		f = AnyString
	case OpAutomatonRef:
		f = AutomatonRef
	case OpInterval:
		f = Interval
	}
	for _, sub := range e.Sub {
		f |= sub.RequiredFlags()
	}
	return f
}

// Equal reports whether two trees are structurally identical.
func (e *Expr) Equal(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Op != other.Op {
		return false
	}
	switch e.Op {
	case OpLiteral:
		if e.Rune != other.Rune {
			return false
		}
	case OpLiteralString, OpAutomatonRef:
		if e.Str != other.Str {
			return false
		}
	case OpRepeat:
		if e.Min != other.Min || e.Max != other.Max {
			return false
		}
	case OpInterval:
		if e.Min != other.Min || e.Max != other.Max || e.Digits != other.Digits {
			return false
		}
	case OpCharClass:
		if e.Negated != other.Negated || len(e.Ranges) != len(other.Ranges) {
			return false
		}
		for i := range e.Ranges {
			if e.Ranges[i] != other.Ranges[i] {
				return false
			}
		}
	}
	if len(e.Sub) != len(other.Sub) {
		return false
	}
	for i := range e.Sub {
		if !e.Sub[i].Equal(other.Sub[i]) {
			return false
		}
	}
	return true
}

func newLiteral(r rune) *Expr {
	return &Expr{Op: OpLiteral, Rune: r}
}

// newLiteralString normalizes degenerate runs: the empty run is the
// empty string and a one-character run is a plain literal.
func newLiteralString(s string) *Expr {
	rs := []rune(s)
	switch len(rs) {
	case 0:
		return &Expr{Op: OpEmptyString}
	case 1:
		return newLiteral(rs[0])
	}
	return &Expr{Op: OpLiteralString, Str: s}
}

// literalRun returns the character payload of nodes that participate in
// literal-run merging.
func literalRun(e *Expr) (string, bool) {
	switch e.Op {
	case OpLiteral:
		return string(e.Rune), true
	case OpLiteralString:
		return e.Str, true
	case OpEmptyString:
		return "", true
	}
	return "", false
}

// newConcat merges adjacent literal material into maximal runs, also
// across an existing concat boundary, so that e.g. a()b collapses to
// the literal string ab.
func newConcat(l, r *Expr) *Expr {
	sl, okl := literalRun(l)
	sr, okr := literalRun(r)
	if okl && okr {
		return newLiteralString(sl + sr)
	}
	if l.Op == OpConcat {
		if st, ok := literalRun(l.Sub[1]); ok && okr {
			return &Expr{Op: OpConcat, Sub: []*Expr{l.Sub[0], newLiteralString(st + sr)}}
		}
	}
	if okl && r.Op == OpConcat {
		if st, ok := literalRun(r.Sub[0]); ok {
			return &Expr{Op: OpConcat, Sub: []*Expr{newLiteralString(sl + st), r.Sub[1]}}
		}
	}
	return &Expr{Op: OpConcat, Sub: []*Expr{l, r}}
}

func newUnion(l, r *Expr) *Expr {
	return &Expr{Op: OpUnion, Sub: []*Expr{l, r}}
}

func newIntersection(l, r *Expr) *Expr {
	return &Expr{Op: OpIntersection, Sub: []*Expr{l, r}}
}

func newComplement(sub *Expr) *Expr {
	return &Expr{Op: OpComplement, Sub: []*Expr{sub}}
}

func newStar(sub *Expr) *Expr {
	return &Expr{Op: OpStar, Sub: []*Expr{sub}}
}

func newPlus(sub *Expr) *Expr {
	return &Expr{Op: OpPlus, Sub: []*Expr{sub}}
}

func newOptional(sub *Expr) *Expr {
	return &Expr{Op: OpOptional, Sub: []*Expr{sub}}
}

func newRepeat(sub *Expr, min, max int) *Expr {
	return &Expr{Op: OpRepeat, Sub: []*Expr{sub}, Min: min, Max: max}
}

// newCharClass normalizes a non-negated class holding a single
// character to a plain literal, so that []] parses to the literal ].
func newCharClass(ranges []CharRange, negated bool) *Expr {
	if !negated && len(ranges) == 1 && ranges[0].Lo == ranges[0].Hi {
		return newLiteral(ranges[0].Lo)
	}
	return &Expr{Op: OpCharClass, Ranges: ranges, Negated: negated}
}

func newInterval(min, max, digits int) *Expr {
	return &Expr{Op: OpInterval, Min: min, Max: max, Digits: digits}
}

func newAutomatonRef(name string) *Expr {
	return &Expr{Op: OpAutomatonRef, Str: name}
}
