package utils

import "strings"

// NormalizeEmail is the canonical form of an email used for storage,
// token subjects and ownership checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
