package main

import (
	"github.com/revelaction/udclean/inspect"
	"github.com/revelaction/udclean/render"
)

func inspectCommand(path, runId string, color bool, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := openReportRepository(&p, path)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = color

	hdl := inspect.NewHandler(repo, r)

	if runId == "" {
		runs, err := repo.Runs()
		if err != nil {
			return err
		}
		if len(runs) > 0 {
			runId = runs[len(runs)-1].Id
		}
	}

	if runId != "" {
		if err := hdl.Select(runId); err != nil {
			return err
		}
	}

	return hdl.Run()
}
