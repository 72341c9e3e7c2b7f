package ytdlp

import "fmt"

// NotFoundError reports that a language has neither an uploaded nor an
// auto-generated caption track.
type NotFoundError struct {
	Language string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("找不到%s語言的字幕", e.Language)
}

// FormatUnavailableError reports that the language has a caption track but
// no VTT rendition of it.
type FormatUnavailableError struct{}

func (e FormatUnavailableError) Error() string {
	return "找不到 VTT 格式的字幕"
}
