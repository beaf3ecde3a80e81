package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gosuri/uiprogress"
	"github.com/revelaction/udclean/clean"
	"github.com/revelaction/udclean/conllu"
	"github.com/revelaction/udclean/render"
	sent "github.com/revelaction/udclean/sentence"
	"github.com/revelaction/udclean/storage"
	"github.com/urfave/cli/v2"
)

type CleanOptions struct {
	Input    string
	Output   string
	Verbose  bool
	NoColor  bool
	Progress bool
	Format   string
	Report   string
}

func parseCleanArgs(cCtx *cli.Context) (CleanOptions, error) {
	opts := CleanOptions{
		Verbose:  cCtx.Bool("verbose"),
		NoColor:  cCtx.Bool("no-color"),
		Progress: cCtx.Bool("progress"),
		Format:   cCtx.String("format"),
		Report:   cCtx.String("report"),
	}

	if !slices.Contains(render.SupportedFormats(), opts.Format) {
		return opts, fmt.Errorf("invalid format %q, allowed values are %v", opts.Format, render.SupportedFormats())
	}

	if cCtx.NArg() != 2 {
		return opts, errors.New("clean command needs exactly two arguments: <input> <output>")
	}

	opts.Input = cCtx.Args().Get(0)
	opts.Output = cCtx.Args().Get(1)
	return opts, nil
}

func cleanCommand(opts CleanOptions, ui UI, logger *slog.Logger) error {
	in, err := os.Open(opts.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file '%s' not found", opts.Input)
		}
		return err
	}
	defer in.Close()

	out, err := os.Create(opts.Output)
	if err != nil {
		return err
	}

	run := storage.Run{
		Id:      uuid.NewString(),
		Input:   opts.Input,
		Output:  opts.Output,
		Started: time.Now().UTC(),
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	var rejections []storage.Rejection
	onReject := func(b sent.Block, v conllu.Verdict) {
		rej := storage.Rejection{
			RunId:  run.Id,
			SentId: b.Id,
			Line:   b.EndLine,
			Errors: v.Errors,
			Lines:  append(append([]string{}, b.Comments...), b.Lines...),
		}
		rejections = append(rejections, rej)

		if opts.Verbose && opts.Format == "text" {
			r.Removed(rej)
		}
	}

	cleanOpts := []clean.Option{
		clean.WithLogger(logger),
		clean.WithRejectFunc(onReject),
	}

	if opts.Progress {
		if info, err := in.Stat(); err == nil && info.Size() > 0 {
			progress := uiprogress.New()
			progress.Start()
			bar := progress.AddBar(int(info.Size()))
			bar.AppendCompleted()
			bar.PrependElapsed()
			defer progress.Stop()

			cleanOpts = append(cleanOpts, clean.WithProgressFunc(func(n int64) {
				_ = bar.Set(int(n))
			}))
		}
	}

	stats, runErr := clean.New(cleanOpts...).Run(in, out)
	if closeErr := out.Close(); runErr == nil && closeErr != nil {
		runErr = fmt.Errorf("%w: %w", clean.ErrWrite, closeErr)
	}
	if runErr != nil {
		return runErr
	}

	run.Total, run.Valid, run.Invalid = stats.Total, stats.Valid, stats.Invalid

	if opts.Report != "" {
		if err := saveReport(opts.Report, run, rejections); err != nil {
			return err
		}
		logger.Info("report saved", "run", run.Id, "path", opts.Report)
	}

	if opts.Format == "json" {
		var removed []storage.Rejection
		if opts.Verbose {
			removed = rejections
		}
		return render.NewJSONRenderer(ui.Out).Render(stats, removed)
	}

	r.Summary(stats)
	return nil
}

func saveReport(path string, run storage.Run, rejections []storage.Rejection) error {
	var p Pool
	defer p.Close()

	repo, err := NewReportRepository(&p, path)
	if err != nil {
		return err
	}

	if err := repo.Write(run, rejections); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
