package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Round-trip property: printing a parsed tree and reparsing it under
// the same flags must succeed, need no flags beyond the original set,
// and reach a fixpoint (the reparse prints identically).
func TestRoundTrip(t *testing.T) {
	patterns := []struct {
		pattern string
		flags   Flags
	}{
		{"", NoFlags},
		{"a", NoFlags},
		{"abc", NoFlags},
		{"a|b|c", NoFlags},
		{"(a|b)c*", NoFlags},
		{"a**", NoFlags},
		{"a{2,}b{0,3}", NoFlags},
		{"{{1}", NoFlags},
		{"|a", NoFlags},
		{`\*\+\?`, NoFlags},
		{`"quoted|text"`, NoFlags},
		{"[a-z]+", NoFlags},
		{"[^0-9]", NoFlags},
		{"[-z]", NoFlags},
		{"[a-]", NoFlags},
		{"[]]", NoFlags},
		{"[a-z-A]", NoFlags},
		{"a.b.c", NoFlags},
		{">0(1@*)}", NoFlags},
		{"(>0)(1)(@*)", NoFlags},
		{"()(a*)", NoFlags},
		{"a(b)c(d|e)f", NoFlags},
		{"a&b&c", Intersection},
		{"a|b&c", Intersection},
		{"~(a|b)*", Complement},
		{"~~a", Complement},
		{"~a*", Complement},
		{"#|@", EmptyLanguage | AnyString},
		{"<id>", AutomatonRef},
		{"<3,4>", AutomatonRef},
		{"<1-5>", Interval},
		{"<01-12>", Interval},
		{"<id>|<1-5>", AutomatonRef | Interval},
		{"~([a-f0-9]{2,4}&.*x)|<hex>", AllFlags},
	}

	for _, tt := range patterns {
		t.Run(tt.pattern, func(t *testing.T) {
			e, err := Parse(tt.pattern, tt.flags)
			require.NoError(t, err)
			require.Zero(t, e.RequiredFlags()&^tt.flags, "tree needs flags beyond the parse set")

			canonical := e.String()
			reparsed, err := Parse(canonical, tt.flags)
			require.NoError(t, err, "canonical form %q does not reparse", canonical)
			require.Equal(t, canonical, reparsed.String(), "canonical form is not a fixpoint")
		})
	}
}

// Patterns that parse under every flag combination must round-trip
// under every flag combination.
func TestRoundTripAllFlagSets(t *testing.T) {
	patterns := []string{
		"",
		"a",
		"|a",
		"&a",
		"a|b",
		"(ab)*",
		"a{1,2}",
		"[a-z]",
		"a.b?",
		`\<\>\~`,
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			for flags := NoFlags; flags <= AllFlags; flags++ {
				e, err := Parse(pattern, flags)
				require.NoError(t, err, "flags %v", flags)

				canonical := e.String()
				reparsed, err := Parse(canonical, flags)
				require.NoError(t, err, "flags %v: canonical form %q", flags, canonical)
				require.Equal(t, canonical, reparsed.String(), "flags %v", flags)
				require.Zero(t, reparsed.RequiredFlags()&^flags, "flags %v", flags)
			}
		})
	}
}
