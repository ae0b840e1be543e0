// Package rex provides the high-level entry point for the flag-gated
// regular expression syntax core: pattern parsing with optional verbose
// tracing, plus helpers for working with automaton references ahead of
// automaton construction.
package rex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rexlang/rex/syntax"
)

// Options configures a parse.
type Options struct {
	// Pattern is the expression source text. The empty pattern is
	// valid and parses to the empty-string expression.
	Pattern string

	// Flags selects the enabled syntax extensions.
	Flags syntax.Flags

	// Verbose enables parse tracing to stderr.
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Flags&^syntax.AllFlags != 0 {
		return fmt.Errorf("unknown flag bits 0x%x", uint16(o.Flags&^syntax.AllFlags))
	}
	return nil
}

// Parse compiles the pattern into an expression tree. It returns an
// error if the options are invalid or the pattern violates the grammar
// under the selected flags.
func Parse(opts Options) (*syntax.Expr, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	logger := NewLogger(opts.Verbose)
	logger.Log("parsing %q with flags %s", opts.Pattern, opts.Flags)

	e, err := syntax.Parse(opts.Pattern, opts.Flags)
	if err != nil {
		logger.Log("parse failed: %v", err)
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}

	logger.Log("parsed %d nodes, canonical form %q", countNodes(e), e.String())
	return e, nil
}

// MustParse is like Parse but panics on error. Intended for patterns
// known valid at build time.
func MustParse(opts Options) *syntax.Expr {
	e, err := Parse(opts)
	if err != nil {
		panic(err)
	}
	return e
}

// Registry resolves automaton references at tree-consumption time.
// The syntax core only captures names; resolution and automaton
// construction belong to the consumer.
type Registry interface {
	// Has reports whether a named automaton has been registered.
	Has(name string) bool
}

// Refs returns the automaton reference names occurring in the tree,
// sorted and deduplicated.
func Refs(e *syntax.Expr) []string {
	seen := make(map[string]bool)
	collectRefs(e, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectRefs(e *syntax.Expr, seen map[string]bool) {
	if e.Op == syntax.OpAutomatonRef {
		seen[e.Str] = true
	}
	for _, sub := range e.Sub {
		collectRefs(sub, seen)
	}
}

// CheckRefs verifies that every automaton reference in the tree is
// known to the registry. It reports all missing names at once.
func CheckRefs(e *syntax.Expr, reg Registry) error {
	var missing []string
	for _, name := range Refs(e) {
		if !reg.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unresolved automaton references: %s", strings.Join(missing, ", "))
	}
	return nil
}

func countNodes(e *syntax.Expr) int {
	n := 1
	for _, sub := range e.Sub {
		n += countNodes(sub)
	}
	return n
}
