package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/revelaction/udclean/clean"
	"github.com/revelaction/udclean/render"
)

func statCommand(path string, ui UI, logger *slog.Logger) error {
	in, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file '%s' not found", path)
		}
		return err
	}
	defer in.Close()

	stats, err := clean.New(clean.WithLogger(logger)).Run(in, io.Discard)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.Summary(stats)

	sizes := make([]int, 0, len(stats.TokensPerSentenceDis))
	for size := range stats.TokensPerSentenceDis {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	if len(sizes) > 0 {
		fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d, longest %d\n",
			stats.Valid, stats.TokensPerSentenceMean, sizes[len(sizes)-1])
	}

	return nil
}
