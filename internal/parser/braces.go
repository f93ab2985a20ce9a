package parser

import "strings"

// BraceCounter keeps a running tally of unmatched opening braces seen so
// far in a scan. Unbalanced input is tolerated: the depth simply never
// returns to its baseline, which the caller treats as end of scope.
type BraceCounter struct {
	depth int
}

// Process updates the depth with the braces found in fragment.
func (c *BraceCounter) Process(fragment string) {
	c.depth += strings.Count(fragment, "{")
	c.depth -= strings.Count(fragment, "}")
}

// Depth returns the current net brace depth.
func (c *BraceCounter) Depth() int {
	return c.depth
}
