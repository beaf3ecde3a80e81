// Package inspect is an interactive browser for the sentences removed by
// cleaning runs.
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/udclean/render"
	"github.com/revelaction/udclean/storage"
)

const (
	cmdQuit = "quit"
	cmdRuns = "runs"
	cmdRun  = "run"
)

var ErrNoRun = errors.New("no run selected, use: run <id>")

type Handler struct {
	Repo     storage.ReportReader
	Renderer *render.Renderer

	// current run id
	run string

	// sentence ids of the current run, for completion
	sentIds []string
}

func NewHandler(repo storage.ReportReader, r *render.Renderer) *Handler {
	return &Handler{
		Repo:     repo,
		Renderer: r,
	}
}

// Select makes id the current run.
func (h *Handler) Select(id string) error {
	if _, err := h.Repo.Run(id); err != nil {
		return err
	}

	rejs, err := h.Repo.Rejections(id, "")
	if err != nil {
		return err
	}

	h.run = id
	h.sentIds = h.sentIds[:0]
	for _, rej := range rejs {
		h.sentIds = append(h.sentIds, rej.SentId)
	}

	return nil
}

// Current returns the selected run id.
func (h *Handler) Current() string {
	return h.run
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.W, "🔑 runs: list runs, run <id>: select, <sent_id>: show removed sentences, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input(h.prefix(), h.completer,
			prompt.OptionTitle("udclean inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		history = append(history, in)

		quit, err := h.Exec(in)
		if err != nil {
			fmt.Fprintf(h.Renderer.W, "Error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

func (h *Handler) prefix() string {
	if h.run == "" {
		return "      🔖 "
	}
	return fmt.Sprintf("%.8s 🔖 ", h.run)
}

// Exec runs one line of input. It returns true when the user asked to quit.
func (h *Handler) Exec(in string) (bool, error) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case cmdQuit:
		return true, nil

	case cmdRuns:
		runs, err := h.Repo.Runs()
		if err != nil {
			return false, err
		}
		for _, run := range runs {
			h.Renderer.Run(run)
		}
		return false, nil

	case cmdRun:
		if len(fields) != 2 {
			return false, errors.New("usage: run <id>")
		}
		return false, h.Select(fields[1])
	}

	if h.run == "" {
		return false, ErrNoRun
	}

	match := strings.TrimSpace(in)
	if match == "*" {
		match = ""
	}

	rejs, err := h.Repo.Rejections(h.run, match)
	if err != nil {
		return false, err
	}

	for _, rej := range rejs {
		h.Renderer.Rejection(rej)
	}
	fmt.Fprintf(h.Renderer.W, "%d removed sentences\n", len(rejs))

	return false, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.TextBeforeCursor())
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	if len(tokens) == 2 && tokens[0] == cmdRun {
		runs, err := h.Repo.Runs()
		if err != nil {
			return s
		}
		for _, run := range runs {
			s = append(s, prompt.Suggest{Text: run.Id, Description: "📖 " + run.Input})
		}
		return prompt.FilterHasPrefix(s, tokens[1], false)
	}

	if len(tokens) > 1 {
		return s
	}

	for _, c := range []string{cmdRuns, cmdRun, cmdQuit} {
		s = append(s, prompt.Suggest{Text: c})
	}
	for _, id := range h.sentIds {
		s = append(s, prompt.Suggest{Text: id, Description: "✍ removed"})
	}

	return prompt.FilterHasPrefix(s, tokens[0], false)
}
