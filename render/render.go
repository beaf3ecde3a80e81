package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/udclean/stat"
	"github.com/revelaction/udclean/storage"
)

const (
	Defaultformat = "text"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
)

func SupportedFormats() []string {
	return []string{"text", "json"}
}

// Renderer writes cleaning results for humans.
type Renderer struct {
	W io.Writer

	HasColor bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w}
}

func (r *Renderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// Removed prints one line for a sentence dropped by the cleaner.
func (r *Renderer) Removed(rej storage.Rejection) {
	fmt.Fprintf(r.W, "%s %s (line ~%d): %s\n",
		r.color(Red, "Removed sentence"),
		r.color(Yellow, rej.SentId),
		rej.Line,
		strings.Join(rej.Errors, "; "))
}

// Summary prints the counters of a cleaning pass.
func (r *Renderer) Summary(s stat.Stats) {
	fmt.Fprintln(r.W, "Processing complete:")
	fmt.Fprintf(r.W, "  Total sentences: %d\n", s.Total)
	fmt.Fprintf(r.W, "  Valid sentences: %d\n", s.Valid)
	fmt.Fprintf(r.W, "  Invalid sentences removed: %d\n", s.Invalid)
	fmt.Fprintf(r.W, "  Success rate: %s\n", r.color(Green, fmt.Sprintf("%.1f%%", s.SuccessRate())))
	if s.Valid > 0 {
		fmt.Fprintf(r.W, "  Tokens per valid sentence: %d\n", s.TokensPerSentenceMean)
	}
}

// Run prints a stored run in one line.
func (r *Renderer) Run(run storage.Run) {
	fmt.Fprintf(r.W, "📖 %s %s %s -> %s total %d, removed %d\n",
		r.color(Yellow256, run.Id),
		run.Started.Format("2006-01-02 15:04:05"),
		run.Input,
		run.Output,
		run.Total,
		run.Invalid)
}

// Rejection prints a stored rejection with its diagnostics and lines.
func (r *Renderer) Rejection(rej storage.Rejection) {
	fmt.Fprintf(r.W, "✍  %s (line ~%d)\n", r.color(Yellow, rej.SentId), rej.Line)
	for _, e := range rej.Errors {
		fmt.Fprintf(r.W, "   %s %s\n", r.color(Red, "✗"), e)
	}
	for _, line := range rej.Lines {
		fmt.Fprintf(r.W, "   %s\n", r.color(Grey256, strings.ReplaceAll(line, "\t", "  ")))
	}
}
