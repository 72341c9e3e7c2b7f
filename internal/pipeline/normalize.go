package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// headerPrefixes mark VTT metadata lines that carry no caption text.
var headerPrefixes = []string{"WEBVTT", "Kind:", "Language:"}

// NormalizeLines strips VTT structure from a raw caption payload and
// returns the surviving text lines in order. Cue indexes, timestamp
// lines, header lines, markup tags and runs of whitespace are removed;
// lines whose remaining length is at or below minLineLen are dropped.
func NormalizeLines(payload string, minLineLen int) []string {
	var lines []string
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isNoiseLine(line) {
			continue
		}

		clean := tagPattern.ReplaceAllString(line, "")
		clean = whitespacePattern.ReplaceAllString(clean, " ")
		clean = strings.TrimSpace(clean)

		if utf8.RuneCountInString(clean) > minLineLen {
			lines = append(lines, clean)
		}
	}
	return lines
}

func isNoiseLine(line string) bool {
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	// Cue timestamp lines ("00:00:01.000 --> 00:00:02.500").
	if strings.Contains(line, "-->") {
		return true
	}
	// Bare cue index lines.
	return isDigits(line)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
