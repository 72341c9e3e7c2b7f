package config

import "time"

// Config holds the full application configuration.
type Config struct {
	// TotalDuration is the assumed video length, in seconds, that
	// synthesized timestamps are spread over. It is a display placeholder,
	// not the real duration.
	TotalDuration float64

	// MaxSentenceLen closes a sentence once its joined length, in
	// characters, exceeds this threshold.
	MaxSentenceLen int

	// MinLineLen drops normalized caption lines at or below this length.
	MinLineLen int

	// MaxRetries is the number of extra caption download attempts after
	// the first. Zero means a single attempt.
	MaxRetries uint64

	// FetchTimeout bounds the caption payload download.
	FetchTimeout time.Duration
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		TotalDuration:  144, // 2m24s
		MaxSentenceLen: 50,
		MinLineLen:     2,
		MaxRetries:     0,
		FetchTimeout:   60 * time.Second,
	}
}
