package common

import "regexp"

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// IsIdentifier reports whether s is usable as a library name: letters,
// digits, dots, dashes and underscores, not starting with punctuation.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}
