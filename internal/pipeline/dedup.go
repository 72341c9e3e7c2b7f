package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nonWordPattern must stay Unicode-aware so CJK words keep non-empty keys.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_]`)

// A Deduplicator collapses ordered cleaned caption lines into a word
// stream with repetition artifacts removed. Words keep their original
// casing and punctuation; only the normalized key decides uniqueness.
type Deduplicator interface {
	Deduplicate(lines []string) []string
}

// GlobalWordDedup drops every word whose normalized key has appeared
// anywhere before, keeping first occurrences in order. Aggressive and
// lossy: legitimately repeated words are removed along with the rolling
// duplicates auto-captions produce.
type GlobalWordDedup struct{}

func (GlobalWordDedup) Deduplicate(lines []string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, line := range lines {
		for _, word := range strings.Fields(line) {
			key := normalizeKey(word)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, word)
		}
	}
	return out
}

// AdjacentWordDedup removes only immediately repeated words, so distant
// repeats survive. A gentler alternative to GlobalWordDedup.
type AdjacentWordDedup struct{}

func (AdjacentWordDedup) Deduplicate(lines []string) []string {
	var out []string
	prev := ""

	for _, line := range lines {
		for _, word := range strings.Fields(line) {
			key := normalizeKey(word)
			if key == "" || key == prev {
				continue
			}
			prev = key
			out = append(out, word)
		}
	}
	return out
}

// normalizeKey reduces a word to its uniqueness key: lowercased with
// non-word characters stripped. Keys are never displayed.
func normalizeKey(word string) string {
	return nonWordPattern.ReplaceAllString(strings.ToLower(word), "")
}

// JoinTokens renders the surviving word stream as a single line with the
// first rune uppercased.
func JoinTokens(tokens []string) string {
	text := strings.TrimSpace(strings.Join(tokens, " "))
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}
