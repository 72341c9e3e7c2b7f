package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

const vttExt = "vtt"

// ExtractInfo runs yt-dlp against the video URL and decodes its metadata
// JSON without downloading any media. The caller controls cancellation
// with ctx.
func ExtractInfo(ctx context.Context, videoURL string) (*VideoInfo, error) {
	if _, err := exec.LookPath("yt-dlp"); err != nil {
		return nil, fmt.Errorf("yt-dlp not found: %w", err)
	}

	cmd := exec.CommandContext(ctx, "yt-dlp",
		"--dump-json",
		"--skip-download",
		"--no-warnings",
		videoURL,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("yt-dlp: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	var info VideoInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("parse yt-dlp metadata: %w", err)
	}
	return &info, nil
}

// CaptionURL picks the caption payload URL for the language. An uploaded
// track wins over an auto-generated one, even when its format list is
// empty; within the chosen track the first VTT rendition is used.
func (v *VideoInfo) CaptionURL(language string) (string, error) {
	formats, ok := v.Subtitles[language]
	if !ok {
		formats, ok = v.AutomaticCaptions[language]
	}
	if !ok {
		return "", NotFoundError{Language: language}
	}

	for _, f := range formats {
		if f.Ext == vttExt && f.URL != "" {
			return f.URL, nil
		}
	}
	return "", FormatUnavailableError{}
}
