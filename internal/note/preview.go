package note

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Preview lengths. Cards use the full length; the compact sidebar variant is
// shorter.
const (
	PreviewLength        = 120
	PreviewCompactLength = 80
)

// Markup-stripping patterns, applied in order. Each strips one markdown form
// before whitespace collapsing; reordering changes the output.
var (
	headingRe  = regexp.MustCompile(`#{1,6}\s+`)
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe   = regexp.MustCompile(`\*(.*?)\*`)
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	listItemRe = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	blankRunRe = regexp.MustCompile(`\n\s*\n`)
)

// Preview strips lightweight markdown from note content and returns a
// plain-text snippet of at most maxChars runes. Text exceeding the limit is
// cut at exactly maxChars and suffixed with "..."; cuts are not word-boundary
// aware.
func Preview(content string, maxChars int) string {
	s := headingRe.ReplaceAllString(content, "")
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = linkRe.ReplaceAllString(s, "$1")
	s = listItemRe.ReplaceAllString(s, "• ")
	s = blankRunRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)

	if maxChars > 0 && utf8.RuneCountInString(s) > maxChars {
		return string([]rune(s)[:maxChars]) + "..."
	}
	return s
}
