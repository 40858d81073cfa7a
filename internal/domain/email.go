package domain

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases an address.
// Both stores apply it before any lookup or write, which keeps the unique
// index on emailid meaningful regardless of how the client typed it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
