// Package pathnorm implements the upper-casing and path canonicalization
// every path stored inside the core goes through: a single canonical
// separator, invariant case folding, and NT device-prefix handling.
package pathnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator is the canonical path separator stored and compared against
// throughout the engine.
const Separator = `\`

// NTPrefix is the NT device prefix the boundary strips on input and
// reapplies on output. It is never stored or compared against inside the
// core.
const NTPrefix = `\??\`

// upper performs invariant (locale-independent) case folding, matching
// Windows path case-insensitivity for the full BMP rather than ASCII-only
// strings.ToUpper.
var upper = cases.Upper(language.Und)

// Normalize uppercases s via invariant case folding and rewrites any
// forward slashes to the canonical backslash separator. It does not touch
// an NT device prefix; call StripNTPrefix separately at the boundary.
func Normalize(s string) string {
	if strings.ContainsRune(s, '/') {
		s = strings.ReplaceAll(s, "/", Separator)
	}
	return upper.String(s)
}

// StripNTPrefix removes a leading \??\ device prefix if present, returning
// the remainder and whether a prefix was found.
func StripNTPrefix(s string) (string, bool) {
	if strings.HasPrefix(s, NTPrefix) {
		return s[len(NTPrefix):], true
	}
	return s, false
}

// ApplyNTPrefix reapplies the \??\ device prefix when a path is handed back
// across the syscall boundary.
func ApplyNTPrefix(s string) string {
	return NTPrefix + s
}

// TrimTrailingSeparator removes one trailing canonical separator, if any.
func TrimTrailingSeparator(s string) string {
	return strings.TrimSuffix(s, Separator)
}

// Segments splits a normalized path into its path segments, skipping empty
// segments from leading/doubled separators.
func Segments(s string) []string {
	raw := strings.Split(s, Separator)
	out := make([]string, 0, len(raw))
	for _, seg := range raw {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// LastSeparator returns the index of the last separator in s, or -1.
func LastSeparator(s string) int {
	return strings.LastIndex(s, Separator)
}
