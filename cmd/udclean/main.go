package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/revelaction/udclean/config"
	"github.com/revelaction/udclean/render"
	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	app := newApp(config.Load(), ui)
	if err := app.Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "udclean: %v\n", err)
}

func newApp(cfg *config.Config, ui UI) *cli.App {
	// set in Before, shared by all commands
	var logger *slog.Logger
	var logCloser io.Closer

	return &cli.App{
		Name:                 "udclean",
		Usage:                "validate and clean CoNLL-U treebanks",
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.Log.Level,
				Usage: "log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Value: cfg.Log.File,
				Usage: "also write logs to this rotating file",
			},
		},
		Before: func(cCtx *cli.Context) error {
			logger, logCloser = newLogger(ui.Err, cCtx.String("log-level"), cCtx.String("log-file"))
			return nil
		},
		After: func(cCtx *cli.Context) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "clean",
				Usage:     "remove structurally invalid sentences",
				ArgsUsage: "<input> <output>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print every removed sentence with its errors"},
					&cli.BoolFlag{Name: "no-color", Aliases: []string{"c"}, Usage: "print without colors"},
					&cli.BoolFlag{Name: "progress", Aliases: []string{"p"}, Usage: "show a progress bar"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.Defaultformat, Usage: "summary format: text or json"},
					&cli.StringFlag{Name: "report", Aliases: []string{"r"}, Value: cfg.ReportPath, Usage: "save removed sentences to this directory or SQLite file"},
				},
				Action: func(cCtx *cli.Context) error {
					opts, err := parseCleanArgs(cCtx)
					if err != nil {
						return err
					}
					return cleanCommand(opts, ui, logger)
				},
			},
			{
				Name:      "stat",
				Usage:     "count valid and invalid sentences without writing output",
				ArgsUsage: "<input>",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("stat command needs exactly one argument: <input>")
					}
					return statCommand(cCtx.Args().First(), ui, logger)
				},
			},
			{
				Name:      "split",
				Usage:     "shuffle the sentences of several files into train and dev files",
				ArgsUsage: "<file|dir> ...",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "seed", Aliases: []string{"s"}, Value: cfg.Split.Seed, Usage: "random seed"},
					&cli.Float64Flag{Name: "ratio", Value: cfg.Split.Ratio, Usage: "share of sentences for the train file"},
					&cli.StringFlag{Name: "train", Required: true, Usage: "train output file"},
					&cli.StringFlag{Name: "dev", Required: true, Usage: "dev output file"},
					&cli.BoolFlag{Name: "clean", Usage: "drop structurally invalid sentences before splitting"},
				},
				Action: func(cCtx *cli.Context) error {
					opts, err := parseSplitArgs(cCtx)
					if err != nil {
						return err
					}
					return splitCommand(opts, ui, logger)
				},
			},
			{
				Name:  "inspect",
				Usage: "browse the sentences removed by previous runs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "report", Aliases: []string{"r"}, Value: cfg.ReportPath, Usage: "report directory or SQLite file"},
					&cli.StringFlag{Name: "run", Usage: "run id to select, defaults to the latest run"},
					&cli.BoolFlag{Name: "no-color", Aliases: []string{"c"}, Usage: "print without colors"},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.String("report") == "" {
						return fmt.Errorf("report path must be specified via -r or UDCLEAN_REPORT_PATH")
					}
					return inspectCommand(cCtx.String("report"), cCtx.String("run"), !cCtx.Bool("no-color"), ui)
				},
			},
			{
				Name:  "import-report",
				Usage: "copy the runs of a report directory into a SQLite file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Required: true, Usage: "report directory"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "SQLite file"},
				},
				Action: func(cCtx *cli.Context) error {
					return importReportCommand(cCtx.String("from"), cCtx.String("to"), ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(cCtx *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}
