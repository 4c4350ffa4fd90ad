package queue

import (
	"fmt"
	"regexp"
)

// tokenPattern matches display tokens like "A-001".
var tokenPattern = regexp.MustCompile(`^[A-Z]-\d{3}$`)

// FormatToken builds a queue token from a doctor code and a 1-based
// sequence count: code "A", count 1 -> "A-001".
func FormatToken(doctorCode string, count int) string {
	return fmt.Sprintf("%s-%03d", doctorCode, count)
}

// IsToken reports whether s looks like a queue token.
func IsToken(s string) bool {
	return tokenPattern.MatchString(s)
}
