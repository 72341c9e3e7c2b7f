package pipeline

import "cleanvtt/internal/config"

// Process runs the full cleaning pipeline on a raw caption payload:
// normalize, deduplicate, regroup into sentences, synthesize timestamps.
// The result is never nil; empty or noise-only payloads yield an empty
// slice, not an error.
func Process(payload string, deduper Deduplicator, cfg *config.Config) []Segment {
	lines := NormalizeLines(payload, cfg.MinLineLen)
	if len(lines) == 0 {
		return []Segment{}
	}

	text := JoinTokens(deduper.Deduplicate(lines))
	if text == "" {
		return []Segment{}
	}

	sentences := SplitSentences(text, cfg.MaxSentenceLen)
	return SynthesizeTimestamps(sentences, cfg.TotalDuration)
}
