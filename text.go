package webmcp

import (
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended to text cut at its length bound.
const TruncationMarker = "..."

// NormalizeWhitespace collapses every run of Unicode whitespace into a single
// ASCII space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateText bounds s to maxLength characters. Text over the bound is cut
// to exactly maxLength characters and TruncationMarker is appended, so the
// result is maxLength+3 characters long. Text at or under the bound is
// returned unchanged.
func TruncateText(s string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return string([]rune(s)[:maxLength]) + TruncationMarker
}
