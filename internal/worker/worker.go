package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cleanvtt/internal/api"
	"cleanvtt/internal/config"
	"cleanvtt/internal/pipeline"
	"cleanvtt/internal/ytdlp"

	"golang.org/x/text/language"
)

// Options configures a single fetch-and-clean run.
type Options struct {
	VideoURL string
	Language string

	// DedupStrategy selects the word deduplication behavior:
	// "global" (default) or "adjacent".
	DedupStrategy string

	// UseVideoDuration spreads timestamps over the duration reported by
	// the video metadata instead of the configured constant.
	UseVideoDuration bool

	Config *config.Config

	// Out receives the JSON segment array; defaults to stdout.
	Out io.Writer
}

// Run is the top-level orchestrator: extract video metadata, select the
// caption track, download the payload, clean it and write the segment
// JSON. Everything runs sequentially on the calling goroutine.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	// yt-dlp accepts tags BCP 47 can't parse, so only warn here.
	if _, err := language.Parse(opts.Language); err != nil {
		slog.Warn("language code is not a valid BCP 47 tag", "language", opts.Language)
	}

	deduper, err := deduperFor(opts.DedupStrategy)
	if err != nil {
		return err
	}

	slog.Info("extracting video metadata", "url", opts.VideoURL)
	info, err := ytdlp.ExtractInfo(ctx, opts.VideoURL)
	if err != nil {
		return err
	}
	slog.Debug("metadata extracted", "id", info.ID, "title", info.Title)

	captionURL, err := info.CaptionURL(opts.Language)
	if err != nil {
		return err
	}

	slog.Info("downloading captions", "language", opts.Language)
	payload, err := api.FetchCaptions(ctx, captionURL, cfg.FetchTimeout, cfg.MaxRetries)
	if err != nil {
		return err
	}

	if opts.UseVideoDuration && info.Duration > 0 {
		scaled := *cfg
		scaled.TotalDuration = info.Duration
		cfg = &scaled
	}

	segments := pipeline.Process(payload, deduper, cfg)
	slog.Debug("pipeline complete", "segments", len(segments))

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(segments); err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}
	return nil
}

func deduperFor(name string) (pipeline.Deduplicator, error) {
	switch name {
	case "", "global":
		return pipeline.GlobalWordDedup{}, nil
	case "adjacent":
		return pipeline.AdjacentWordDedup{}, nil
	default:
		return nil, fmt.Errorf("unknown dedup strategy: %q", name)
	}
}
