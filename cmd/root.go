package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanvtt/internal/config"
	"cleanvtt/internal/worker"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool

	dedupStrategy    string
	totalDuration    float64
	maxSentenceLen   int
	minLineLen       int
	useVideoDuration bool
	maxRetries       uint64
	fetchTimeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "cleanvtt <video-url> <language>",
	Short: "Fetch and clean YouTube subtitles into timed JSON segments",
	Long: `Cleanvtt downloads the uploaded or auto-generated subtitle track for a
video, strips VTT markup and auto-caption word repetition, regroups the
text into short sentences and prints them as a JSON segment array on
standard output.

Timestamps are synthetic: segments are spread evenly over an assumed total
duration, so they order the text for display but do not reflect spoken
timing.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: runClean,
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.Flags().StringVar(&dedupStrategy, "dedup", "global", "word dedup strategy: global, adjacent")
	rootCmd.Flags().Float64Var(&totalDuration, "duration", defaults.TotalDuration, "assumed total duration in seconds for synthesized timestamps")
	rootCmd.Flags().IntVar(&maxSentenceLen, "max-sentence-len", defaults.MaxSentenceLen, "sentence length threshold in characters")
	rootCmd.Flags().IntVar(&minLineLen, "min-line-len", defaults.MinLineLen, "drop cleaned caption lines at or below this length")
	rootCmd.Flags().BoolVar(&useVideoDuration, "actual-duration", false, "spread timestamps over the duration reported by the video metadata")
	rootCmd.Flags().Uint64Var(&maxRetries, "max-retries", defaults.MaxRetries, "extra caption download attempts on transient failures")
	rootCmd.Flags().DurationVar(&fetchTimeout, "timeout", defaults.FetchTimeout, "caption download timeout")
}

func runClean(cmd *cobra.Command, args []string) error {
	// Argument errors above already printed usage; runtime failures print
	// only the message.
	cmd.SilenceUsage = true

	cfg := config.Default()
	cfg.TotalDuration = totalDuration
	cfg.MaxSentenceLen = maxSentenceLen
	cfg.MinLineLen = minLineLen
	cfg.MaxRetries = maxRetries
	cfg.FetchTimeout = fetchTimeout

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.Options{
		VideoURL:         args[0],
		Language:         args[1],
		DedupStrategy:    dedupStrategy,
		UseVideoDuration: useVideoDuration,
		Config:           cfg,
	}
	return worker.Run(ctx, opts)
}
