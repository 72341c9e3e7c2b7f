package pipeline

// Segment is one timed chunk of cleaned caption text.
//
// Start and End are synthetic: the pipeline divides an assumed total
// duration evenly across segments, so they give a stable display order
// but do not reflect when the words were actually spoken.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}
