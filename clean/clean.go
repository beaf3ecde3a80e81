// Package clean removes structurally invalid sentences from CoNLL-U streams.
package clean

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/udclean/conllu"
	sent "github.com/revelaction/udclean/sentence"
	"github.com/revelaction/udclean/stat"
)

// Cleaner copies the valid sentences of a CoNLL-U stream to an output
// stream. It is not safe for concurrent use; each Run starts new counters.
type Cleaner struct {
	cfg config
}

// New returns a Cleaner configured with opts.
func New(opts ...Option) *Cleaner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Cleaner{cfg: cfg}
}

// Run reads sentences from r and writes those that pass validation to w,
// in input order. Invalid sentences are dropped and counted. The returned
// error wraps ErrRead or ErrWrite; the stats are valid up to the failure.
func (c *Cleaner) Run(r io.Reader, w io.Writer) (stat.Stats, error) {
	hdl := stat.NewHandler()
	bw := bufio.NewWriter(w)
	sc := conllu.NewScanner(r)

	for sc.Scan() {
		b := sc.Block()
		v := conllu.Validate(b.Lines)
		hdl.Add(b, v.Valid)

		if v.Valid {
			if err := writeBlock(bw, b); err != nil {
				return hdl.Get(), fmt.Errorf("%w: %w", ErrWrite, err)
			}
		} else {
			c.cfg.logger.Debug("removed sentence",
				"sent_id", b.Id,
				"line", b.EndLine,
				"errors", strings.Join(v.Errors, "; "))

			if c.cfg.onReject != nil {
				c.cfg.onReject(b, v)
			}
		}

		if c.cfg.onProgress != nil {
			c.cfg.onProgress(sc.BytesRead())
		}
	}

	if err := sc.Err(); err != nil {
		return hdl.Get(), fmt.Errorf("%w: %w", ErrRead, err)
	}

	if err := bw.Flush(); err != nil {
		return hdl.Get(), fmt.Errorf("%w: %w", ErrWrite, err)
	}

	stats := hdl.Get()
	c.cfg.logger.Info("cleaning complete",
		"total", stats.Total,
		"valid", stats.Valid,
		"invalid", stats.Invalid)

	return stats, nil
}

// writeBlock writes the comments and token lines of b followed by a blank line.
func writeBlock(w io.Writer, b sent.Block) error {
	for _, line := range b.Comments {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	for _, line := range b.Lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
