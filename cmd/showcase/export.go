package main

import (
	"fmt"

	"github.com/fwojciec/showcase"
	"github.com/fwojciec/showcase/export"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	menu, err := deps.Menus.BuildMenu(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", showcase.ErrorMessage(err))
		return err
	}

	exporter := &export.Exporter{
		Loader:      deps.Loader,
		Store:       deps.Store,
		Concurrency: c.Concurrency,
	}

	progress := func(event export.ProgressEvent) {
		switch event.Type {
		case export.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case export.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.ViewID, event.Error)
		}
	}

	result, err := exporter.Export(deps.Ctx, menu, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error exporting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Exported %d pages with %d sources", result.Saved, result.Sources)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
