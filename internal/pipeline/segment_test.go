package pipeline

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitSentences_Empty(t *testing.T) {
	if got := SplitSentences("", 50); len(got) != 0 {
		t.Errorf("expected no sentences for empty text, got %v", got)
	}
	if got := SplitSentences("   ", 50); len(got) != 0 {
		t.Errorf("expected no sentences for whitespace text, got %v", got)
	}
}

func TestSplitSentences_TerminalPunctuation(t *testing.T) {
	got := SplitSentences("Hello world. Goodbye now! Still here? yes", 50)
	want := []string{"Hello world.", "Goodbye now!", "Still here?", "yes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %v, want %v", got, want)
	}
}

func TestSplitSentences_SingleShortSentence(t *testing.T) {
	got := SplitSentences("Hello world again", 50)
	want := []string{"Hello world again"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %v, want %v", got, want)
	}
}

func TestSplitSentences_LengthTrigger(t *testing.T) {
	// 60 words, no punctuation: splits come from the length threshold only.
	words := make([]string, 60)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}
	text := strings.Join(words, " ")

	sentences := SplitSentences(text, 50)
	if len(sentences) < 2 {
		t.Fatalf("expected multiple sentences from length trigger, got %d", len(sentences))
	}

	// Each sentence may overflow the threshold by at most the word that
	// tripped it.
	const maxWordLen = 6
	for _, s := range sentences {
		if n := utf8.RuneCountInString(s); n > 50+1+maxWordLen {
			t.Errorf("sentence %q length %d exceeds threshold overflow", s, n)
		}
	}

	// No words lost or reordered.
	rejoined := strings.Join(sentences, " ")
	if rejoined != text {
		t.Errorf("rejoined sentences differ from input:\n got %q\nwant %q", rejoined, text)
	}
}

func TestSplitSentences_BothTriggersOneClose(t *testing.T) {
	// A word that ends a sentence while also crossing the threshold closes
	// the buffer once; no empty sentence may follow.
	long := strings.Repeat("a", 49) + "."
	got := SplitSentences(long+" next", 50)
	want := []string{long, "next"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %v, want %v", got, want)
	}
}
