package pipeline

import (
	"reflect"
	"testing"
)

func TestNormalizeLines_Empty(t *testing.T) {
	lines := NormalizeLines("", 2)
	if len(lines) != 0 {
		t.Errorf("expected no lines for empty payload, got %v", lines)
	}
}

func TestNormalizeLines_DropsHeadersAndCues(t *testing.T) {
	payload := "WEBVTT\n" +
		"Kind: captions\n" +
		"Language: en\n" +
		"\n" +
		"1\n" +
		"00:00:00.160 --> 00:00:02.350\n" +
		"Hello wonderful world\n"

	lines := NormalizeLines(payload, 2)
	want := []string{"Hello wonderful world"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("NormalizeLines = %v, want %v", lines, want)
	}
}

func TestNormalizeLines_NoiseOnlyPayload(t *testing.T) {
	payload := "WEBVTT\nKind: captions\n12\n00:00:00.000 --> 00:00:01.000\n"
	lines := NormalizeLines(payload, 2)
	if len(lines) != 0 {
		t.Errorf("expected no lines for noise-only payload, got %v", lines)
	}
}

func TestNormalizeLines_DropsUnicodeDigitCues(t *testing.T) {
	// Cue indexes in non-ASCII digits are still bare numbers.
	payload := "١٢٣\n42\nreal caption text\n"
	lines := NormalizeLines(payload, 2)
	want := []string{"real caption text"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("NormalizeLines = %v, want %v", lines, want)
	}
}

func TestNormalizeLines_StripsTagsAndCollapsesWhitespace(t *testing.T) {
	payload := "Hello  <c.colorE5E5E5>big</c>   <00:00:01.000>world\n"
	lines := NormalizeLines(payload, 2)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0] != "Hello big world" {
		t.Errorf("cleaned line = %q, want 'Hello big world'", lines[0])
	}
}

func TestNormalizeLines_DropsShortLines(t *testing.T) {
	payload := "ok\nabc\nhi\n"
	lines := NormalizeLines(payload, 2)
	want := []string{"abc"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("NormalizeLines = %v, want %v", lines, want)
	}
}

func TestNormalizeLines_ShortAfterTagStripping(t *testing.T) {
	// Length threshold applies to the cleaned text, not the raw line.
	payload := "<c>no</c>\n"
	lines := NormalizeLines(payload, 2)
	if len(lines) != 0 {
		t.Errorf("expected tag-wrapped short line to be dropped, got %v", lines)
	}
}

func TestNormalizeLines_Idempotent(t *testing.T) {
	payload := "WEBVTT\n00:00:00.000 --> 00:00:01.000\nHello <b>there</b>  world\nanother line\n"
	once := NormalizeLines(payload, 2)

	var rejoined string
	for _, line := range once {
		rejoined += line + "\n"
	}
	twice := NormalizeLines(rejoined, 2)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalization not idempotent: first %v, second %v", once, twice)
	}
}
