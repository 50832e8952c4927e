package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Markers the model is instructed to emit; they must never leak
	// into player-visible narrative.
	markerPattern = regexp.MustCompile(`(?i)\b(NARRATIVE|STATE_CHANGES)\s*:`)

	// Fenced code blocks, including unterminated ones at end of text.
	fencePattern = regexp.MustCompile("(?s)```.*?```|```.*$")

	headingPrefix = regexp.MustCompile(`^\s*#{1,6}\s*`)
)

// SanitizeNarrative cleans narrative text before it is shown to the
// player: fenced code blocks are removed entirely, leading markdown
// heading markers are stripped per line, and stray NARRATIVE: or
// STATE_CHANGES: tokens are removed case-insensitively. The model
// sometimes echoes its format instructions into the visible text.
func SanitizeNarrative(text string) string {
	text = fencePattern.ReplaceAllString(text, "")
	text = markerPattern.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = headingPrefix.ReplaceAllString(line, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Words filtered for family-friendly content ratings, with their
// replacements.
var swearWordReplacements = map[string]string{
	"fuck":     "fudge",
	"shit":     "shoot",
	"damn":     "dang",
	"hell":     "heck",
	"ass":      "butt",
	"bitch":    "jerk",
	"bastard":  "jerk",
	"crap":     "crud",
	"asshole":  "jerk",
	"goddamn":  "gosh-dang",
	"bullshit": "baloney",
	"dumbass":  "dummy",
	"jackass":  "jerk",
	"prick":    "jerk",
}

// ProfanityFilter replaces profanity in narrative text with
// family-friendly alternatives.
type ProfanityFilter struct {
	regexes map[string]*regexp.Regexp
}

// NewProfanityFilter pre-compiles the word-boundary patterns.
func NewProfanityFilter() *ProfanityFilter {
	pf := &ProfanityFilter{
		regexes: make(map[string]*regexp.Regexp, len(swearWordReplacements)),
	}
	for word := range swearWordReplacements {
		pf.regexes[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return pf
}

// FilterText replaces each matched word, preserving the case pattern of
// the original.
func (pf *ProfanityFilter) FilterText(text string) string {
	result := text
	for word, replacement := range swearWordReplacements {
		result = pf.regexes[word].ReplaceAllStringFunc(result, func(match string) string {
			return preserveCase(match, replacement)
		})
	}
	return result
}

// ContainsProfanity checks if the text contains any filtered word.
func (pf *ProfanityFilter) ContainsProfanity(text string) bool {
	for _, regex := range pf.regexes {
		if regex.MatchString(text) {
			return true
		}
	}
	return false
}

// preserveCase applies the case pattern of the original word to the
// replacement.
func preserveCase(original, replacement string) string {
	if original == "" {
		return replacement
	}

	if strings.ToUpper(original) == original {
		return strings.ToUpper(replacement)
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(replacement)
	}

	titleCaser := cases.Title(language.English)
	if titleCaser.String(strings.ToLower(original)) == original {
		return titleCaser.String(replacement)
	}

	// Mixed case: mirror the original character by character.
	originalRunes := []rune(original)
	result := make([]rune, 0, len(replacement))
	for i, r := range replacement {
		if i < len(originalRunes) && unicode.IsUpper(originalRunes[i]) {
			result = append(result, unicode.ToUpper(r))
		} else {
			result = append(result, unicode.ToLower(r))
		}
	}
	return string(result)
}
