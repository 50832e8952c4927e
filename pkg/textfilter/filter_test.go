package textfilter

import (
	"strings"
	"testing"
)

func TestSanitizeNarrative(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "You walk into the tavern.",
			expected: "You walk into the tavern.",
		},
		{
			name:     "strips stray markers",
			input:    "NARRATIVE: You walk in. narrative: more text",
			expected: "You walk in.  more text",
		},
		{
			name:     "strips state changes marker",
			input:    "You walk in. STATE_CHANGES: leftover",
			expected: "You walk in.  leftover",
		},
		{
			name:     "removes fenced block",
			input:    "Before.\n```json\n{\"x\": 1}\n```\nAfter.",
			expected: "Before.\n\nAfter.",
		},
		{
			name:     "removes unterminated fence",
			input:    "Before.\n```json\n{\"x\": 1}",
			expected: "Before.",
		},
		{
			name:     "strips heading markers",
			input:    "# Chapter One\nThe story begins.",
			expected: "Chapter One\nThe story begins.",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  \n  You wait.  \n ",
			expected: "You wait.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeNarrative(tt.input); got != tt.expected {
				t.Errorf("SanitizeNarrative(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProfanityFilter_FilterText(t *testing.T) {
	pf := NewProfanityFilter()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "what the hell is that",
			expected: "what the heck is that",
		},
		{
			name:     "uppercase preserved",
			input:    "DAMN that was close",
			expected: "DANG that was close",
		},
		{
			name:     "title case preserved",
			input:    "Damn, a trap!",
			expected: "Dang, a trap!",
		},
		{
			name:     "word boundaries respected",
			input:    "the assassin passes by",
			expected: "the assassin passes by",
		},
		{
			name:     "clean text untouched",
			input:    "The innkeeper waves hello.",
			expected: "The innkeeper waves hello.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pf.FilterText(tt.input); got != tt.expected {
				t.Errorf("FilterText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProfanityFilter_ContainsProfanity(t *testing.T) {
	pf := NewProfanityFilter()

	if !pf.ContainsProfanity("oh hell no") {
		t.Error("Expected profanity detected")
	}
	if pf.ContainsProfanity("a perfectly polite sentence") {
		t.Error("Expected no profanity detected")
	}
	if pf.ContainsProfanity("the assassin and the classics") {
		t.Error("Substrings inside words must not match")
	}
}

func TestPreserveCase_Mixed(t *testing.T) {
	pf := NewProfanityFilter()
	got := pf.FilterText("dAmN it")
	if !strings.HasPrefix(strings.ToLower(got), "dang") {
		t.Errorf("Expected mixed-case replacement, got %q", got)
	}
}
