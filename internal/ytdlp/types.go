package ytdlp

// CaptionFormat is one downloadable rendition of a caption track.
type CaptionFormat struct {
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// VideoInfo is the subset of yt-dlp's metadata JSON this tool reads.
// Subtitles holds uploaded tracks, AutomaticCaptions the auto-generated
// ones, both keyed by language code.
type VideoInfo struct {
	ID                string                     `json:"id"`
	Title             string                     `json:"title"`
	Duration          float64                    `json:"duration"`
	Subtitles         map[string][]CaptionFormat `json:"subtitles"`
	AutomaticCaptions map[string][]CaptionFormat `json:"automatic_captions"`
}
