package clean

import (
	"log/slog"

	"github.com/revelaction/udclean/conllu"
	sent "github.com/revelaction/udclean/sentence"
)

// Option configures a Cleaner.
type Option func(*config)

// RejectFunc receives every sentence that fails validation.
type RejectFunc func(b sent.Block, v conllu.Verdict)

// ProgressFunc receives the number of input bytes consumed after each sentence.
type ProgressFunc func(bytesRead int64)

type config struct {
	logger     *slog.Logger
	onReject   RejectFunc
	onProgress ProgressFunc
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRejectFunc sets a callback for removed sentences.
func WithRejectFunc(fn RejectFunc) Option {
	return func(c *config) {
		c.onReject = fn
	}
}

// WithProgressFunc sets a callback invoked after each sentence.
func WithProgressFunc(fn ProgressFunc) Option {
	return func(c *config) {
		c.onProgress = fn
	}
}
