package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/udclean/file"
	"github.com/revelaction/udclean/split"
	"github.com/urfave/cli/v2"
)

type SplitOptions struct {
	Sources []string
	Seed    int64
	Ratio   float64
	Train   string
	Dev     string
	Clean   bool
}

func parseSplitArgs(cCtx *cli.Context) (SplitOptions, error) {
	opts := SplitOptions{
		Sources: cCtx.Args().Slice(),
		Seed:    cCtx.Int64("seed"),
		Ratio:   cCtx.Float64("ratio"),
		Train:   cCtx.String("train"),
		Dev:     cCtx.String("dev"),
		Clean:   cCtx.Bool("clean"),
	}

	if len(opts.Sources) == 0 {
		return opts, errors.New("split command needs at least one file or directory")
	}

	return opts, nil
}

func splitCommand(opts SplitOptions, ui UI, logger *slog.Logger) error {
	var paths []string
	for _, src := range opts.Sources {
		found, err := file.Find(src)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", src, err)
		}
		paths = append(paths, found...)
	}

	if len(paths) == 0 {
		return errors.New("no CoNLL-U files found")
	}

	blocks, err := readAllBlocks(paths)
	if err != nil {
		return err
	}
	fmt.Fprintf(ui.Out, "Total sentences loaded: %d\n", len(blocks))

	if opts.Clean {
		var dropped int
		blocks, dropped = split.Filter(blocks)
		fmt.Fprintf(ui.Out, "Invalid sentences removed: %d\n", dropped)
	}

	train, dev, err := split.Split(blocks, opts.Ratio, opts.Seed)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Train: %d sentences\n", len(train))
	fmt.Fprintf(ui.Out, "Dev:   %d sentences\n", len(dev))

	if err := file.WriteBlocks(opts.Train, train); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Train, err)
	}
	logger.Info("wrote train file", "path", opts.Train, "sentences", len(train))

	if err := file.WriteBlocks(opts.Dev, dev); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Dev, err)
	}
	logger.Info("wrote dev file", "path", opts.Dev, "sentences", len(dev))

	return nil
}

func readAllBlocks(paths []string) ([]string, error) {
	var blocks []string

	// Start progress indicator
	progress := uiprogress.New()
	progress.Start()
	defer progress.Stop()

	bar := progress.AddBar(len(paths))
	bar.AppendCompleted()
	bar.PrependElapsed()
	// Append file name to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		if b.Current() == 0 {
			return ""
		}
		return paths[b.Current()-1]
	})

	for _, path := range paths {
		bs, err := file.ReadBlocks(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		blocks = append(blocks, bs...)
		bar.Incr()
	}

	return blocks, nil
}
