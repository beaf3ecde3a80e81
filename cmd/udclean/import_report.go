package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/udclean/storage/filesystem"
	"github.com/revelaction/udclean/storage/sqlite/zombiezen"
)

func importReportCommand(from, to string, ui UI) error {
	src, err := filesystem.NewReportStore(from)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(to)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateReportTables(pool); err != nil {
		return fmt.Errorf("failed to create report tables: %w", err)
	}

	dst := zombiezen.NewReportStore(pool)

	fmt.Fprintf(ui.Out, "Reading reports from %s...\n", from)
	runs, err := src.Runs()
	if err != nil {
		return err
	}

	progress := uiprogress.New()
	progress.Start()
	bar := progress.AddBar(len(runs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, run := range runs {
		rejections, err := src.Rejections(run.Id, "")
		if err != nil {
			progress.Stop()
			return fmt.Errorf("failed to read run %s: %w", run.Id, err)
		}

		if err := dst.Write(run, rejections); err != nil {
			progress.Stop()
			return fmt.Errorf("failed to write run %s: %w", run.Id, err)
		}
		count++
		bar.Incr()
	}
	progress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d runs from %s to %s\n", count, from, to)
	return nil
}
