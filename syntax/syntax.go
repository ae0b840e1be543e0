// Package syntax implements the flag-gated regular expression dialect:
// a parser that compiles pattern text into an expression tree suitable
// for automaton construction, and a canonical printer that renders any
// tree back to pattern text.
//
// The grammar is not fixed. A Flags bitmask selectively enables the
// extended operators (intersection, complement, empty language, any
// string, automaton references, numeric intervals). With an extension
// disabled, its operator character is an ordinary literal unless escaped.
package syntax

import "strings"

// Flags selects which syntax extensions are enabled during parsing.
type Flags uint16

const (
	// Intersection enables the '&' operator.
	Intersection Flags = 1 << iota
	// Complement enables the prefix '~' operator.
	Complement
	// EmptyLanguage enables the '#' literal (matches nothing).
	EmptyLanguage
	// AnyString enables the '@' literal (matches any string).
	AnyString
	// AutomatonRef enables '<identifier>' references to named automata.
	AutomatonRef
	// Interval enables '<n-m>' numeric interval literals.
	Interval

	// AllFlags enables every syntax extension.
	AllFlags = Intersection | Complement | EmptyLanguage | AnyString | AutomatonRef | Interval

	// NoFlags disables every syntax extension.
	NoFlags Flags = 0
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Intersection, "Intersection"},
	{Complement, "Complement"},
	{EmptyLanguage, "EmptyLanguage"},
	{AnyString, "AnyString"},
	{AutomatonRef, "AutomatonRef"},
	{Interval, "Interval"},
}

// String returns the enabled flag names joined by '|', or "None".
func (f Flags) String() string {
	if f == NoFlags {
		return "None"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
