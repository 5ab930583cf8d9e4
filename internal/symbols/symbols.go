// Package symbols is the single place where the stored comma-separated
// watchlist string is parsed and re-assembled.
package symbols

import (
	"strings"
)

// Parse splits a comma-separated symbol string into individual tickers,
// trimming whitespace and dropping empty entries. Order is preserved as
// typed; duplicates are kept.
func Parse(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Join renders tickers back into the stored representation.
func Join(syms []string) string {
	return strings.Join(syms, ", ")
}

// Normalize parses and re-joins a raw symbol string, collapsing whitespace
// and stray commas while keeping the user's order and duplicates.
func Normalize(s string) string {
	return Join(Parse(s))
}
