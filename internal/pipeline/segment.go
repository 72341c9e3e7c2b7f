package pipeline

import (
	"strings"
	"unicode/utf8"
)

// SplitSentences regroups a cleaned text line into bounded sentences.
// A sentence closes after a word ending in terminal punctuation, or once
// the joined buffer grows past maxLen characters; the length trigger is
// checked on every word, including one that already closed on punctuation.
func SplitSentences(text string, maxLen int) []string {
	var sentences []string
	var current []string

	flush := func() {
		sentence := strings.TrimSpace(strings.Join(current, " "))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current = nil
	}

	for _, word := range strings.Fields(text) {
		current = append(current, word)
		if endsSentence(word) || joinedLen(current) > maxLen {
			flush()
		}
	}
	if len(current) > 0 {
		flush()
	}
	return sentences
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "!") ||
		strings.HasSuffix(word, "?")
}

// joinedLen is the rendered length of words joined with single spaces.
func joinedLen(words []string) int {
	n := 0
	for i, w := range words {
		if i > 0 {
			n++
		}
		n += utf8.RuneCountInString(w)
	}
	return n
}
