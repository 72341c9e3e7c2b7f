package pipeline

// SynthesizeTimestamps divides totalDuration evenly across the sentences
// and returns contiguous segments: segment i spans [i*D/N, (i+1)*D/N).
// The result is never nil; zero sentences yield an empty slice so the
// division below cannot run with N == 0.
func SynthesizeTimestamps(sentences []string, totalDuration float64) []Segment {
	segments := make([]Segment, 0, len(sentences))
	if len(sentences) == 0 {
		return segments
	}

	n := float64(len(sentences))
	for i, sentence := range sentences {
		start := float64(i) * totalDuration / n
		end := float64(i+1) * totalDuration / n
		segments = append(segments, Segment{
			Text:     sentence,
			Start:    start,
			End:      end,
			Duration: end - start,
		})
	}
	return segments
}
