// Package gentest turns the conformance corpus into the generated
// flag-matrix test for the syntax package. The corpus pins the expected
// behavior for every combination of syntax flags: which inputs parse,
// which fail, and the acceptable canonical forms.
package gentest

import (
	"fmt"

	"github.com/pelletier/go-toml"
)

// Case describes one conformance scenario.
type Case struct {
	// Input is the pattern source text.
	Input string `toml:"input"`

	// Fails marks inputs that fail under every flag combination.
	Fails bool `toml:"fails"`

	// FailsWhen lists flag conditions under which the input fails;
	// it parses under all other combinations.
	FailsWhen []Condition `toml:"fails_when"`

	// Prints is the set of acceptable canonical forms across all
	// parsing flag combinations. Every entry must be produced by at
	// least one combination. Empty disables the print check.
	Prints []string `toml:"prints"`
}

// Condition is satisfied when every flag in Set is enabled and every
// flag in Clear is disabled.
type Condition struct {
	Set   []string `toml:"set"`
	Clear []string `toml:"clear"`
}

type corpus struct {
	Case []Case `toml:"case"`
}

var knownFlags = map[string]bool{
	"Intersection":  true,
	"Complement":    true,
	"EmptyLanguage": true,
	"AnyString":     true,
	"AutomatonRef":  true,
	"Interval":      true,
}

// LoadCases decodes and validates a TOML corpus.
func LoadCases(data []byte) ([]Case, error) {
	var c corpus
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}
	if len(c.Case) == 0 {
		return nil, fmt.Errorf("corpus contains no cases")
	}
	seen := make(map[string]bool)
	for i, tc := range c.Case {
		if seen[tc.Input] {
			return nil, fmt.Errorf("case %d: duplicate input %q", i, tc.Input)
		}
		seen[tc.Input] = true
		if tc.Fails && (len(tc.FailsWhen) > 0 || len(tc.Prints) > 0) {
			return nil, fmt.Errorf("case %d (%q): always-failing case cannot carry conditions or prints", i, tc.Input)
		}
		for _, cond := range tc.FailsWhen {
			if len(cond.Set) == 0 {
				return nil, fmt.Errorf("case %d (%q): condition with empty set", i, tc.Input)
			}
			for _, name := range append(append([]string{}, cond.Set...), cond.Clear...) {
				if !knownFlags[name] {
					return nil, fmt.Errorf("case %d (%q): unknown flag %q", i, tc.Input, name)
				}
			}
		}
	}
	return c.Case, nil
}
