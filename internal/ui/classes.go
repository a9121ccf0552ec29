package ui

import "strings"

// joinClasses joins non-empty class token groups with single spaces, keeping
// the given order. Order is load-bearing: the stylesheet resolves conflicting
// tokens in favor of the later one.
func joinClasses(groups ...string) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if g != "" {
			parts = append(parts, g)
		}
	}
	return strings.Join(parts, " ")
}
