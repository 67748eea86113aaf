package note

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPreview_PlainTextUnchanged(t *testing.T) {
	in := "Just a short sentence."
	if got := Preview(in, PreviewLength); got != in {
		t.Errorf("Preview = %q, want input unchanged", got)
	}
}

func TestPreview_StripsMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading", "## Project status", "Project status"},
		{"deep heading", "###### Tiny", "Tiny"},
		{"bold", "This is **important** text", "This is important text"},
		{"italic", "This is *emphasized* text", "This is emphasized text"},
		{"link keeps label", "See [the docs](https://example.com/docs) for more", "See the docs for more"},
		{"list marker", "- first item", "• first item"},
		{"plus list marker", "+ item", "• item"},
		{"blank run collapses", "para one\n\npara two", "para one para two"},
		{"newline to space", "line one\nline two", "line one line two"},
		{"surrounding whitespace", "  padded  ", "padded"},
		{"combined", "# Plan\n\n- **Call** the [bank](https://bank.example)\n- Pay rent", "Plan • Call the bank • Pay rent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.in, PreviewLength); got != tt.want {
				t.Errorf("Preview(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreview_Truncation(t *testing.T) {
	in := strings.Repeat("abcde ", 10) // 60 chars after trim

	got := Preview(in, 10)
	if got != "abcde abcd..." {
		t.Errorf("Preview = %q, want exactly 10 runes plus ellipsis", got)
	}
}

func TestPreview_TruncationCountsRunes(t *testing.T) {
	in := strings.Repeat("é", 30)

	got := Preview(in, 10)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("Preview = %q, want ellipsis suffix", got)
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); n != 10 {
		t.Errorf("truncated body has %d runes, want 10", n)
	}
}

func TestPreview_AtLimitNotTruncated(t *testing.T) {
	in := strings.Repeat("x", PreviewCompactLength)
	if got := Preview(in, PreviewCompactLength); got != in {
		t.Errorf("text exactly at the limit should not gain an ellipsis, got %q", got)
	}
}

func TestPreview_ZeroLimitDisablesTruncation(t *testing.T) {
	in := strings.Repeat("x", 500)
	if got := Preview(in, 0); got != in {
		t.Error("maxChars 0 should return the full stripped text")
	}
}
