// Sign-up helpers, separate from the rambutan rendering contract.

package core

import "strings"

// NormalizeName is shared sign-up logic: trims and uppercases the first
// letter so stored viewer names display consistently.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
