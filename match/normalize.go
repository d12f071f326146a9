package match

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeTrait canonicalizes a trait name: lower-case, trimmed, every run
// of non-alphanumeric characters collapsed to a single underscore, leading
// and trailing underscores stripped. Two trait names are equivalent iff
// their normalized forms are equal. Idempotent.
func NormalizeTrait(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlphanumeric.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
