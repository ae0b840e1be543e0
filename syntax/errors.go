package syntax

import "fmt"

// SyntaxError reports a pattern that violates the grammar. Pos is the
// rune offset of the offending construct within the pattern.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func syntaxError(pos int, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: msg}
}
