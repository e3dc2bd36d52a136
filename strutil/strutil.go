// Package strutil provides string fixups shared by the project generators:
// path separator normalization and the pbxproj quoting rules.
package strutil

import "strings"

// safeRune reports whether r may appear in an unquoted pbxproj string.
// Xcode accepts ASCII letters, digits, and a small punctuation set without
// quoting; anything else forces the quoted form.
func safeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '$' || r == '.' || r == '/':
		return true
	}
	return false
}

// UnixSlashes converts all backslashes in a path to forward slashes.
func UnixSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// WindowsSlashes converts all forward slashes in a path to backslashes.
func WindowsSlashes(path string) string {
	return strings.ReplaceAll(path, "/", "\\")
}

// QuoteIfNeeded quotes a string using pbxproj rules.
//
// If every character is in the safe set the string is returned unchanged,
// except the empty string which always renders as the explicit quoted empty
// literal. Otherwise the string is wrapped in double quotes with embedded
// quote characters backslash escaped.
func QuoteIfNeeded(in string) string {
	safe := true
	for _, r := range in {
		if !safeRune(r) {
			safe = false
			break
		}
	}
	if safe {
		if in == "" {
			return `""`
		}
		return in
	}
	return `"` + strings.ReplaceAll(in, `"`, `\"`) + `"`
}
