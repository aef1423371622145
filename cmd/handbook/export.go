package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/export"
	"github.com/fwojciec/handbook/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	dir := filepath.Clean(c.Dir)
	exporter := &export.Exporter{
		Pages:       deps.Pages,
		Store:       fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir)),
		Concurrency: c.Concurrency,
	}

	progress := func(e export.ProgressEvent) {
		if e.Type == export.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %s\n", e.Completed, e.Total, e.Section, handbook.ErrorMessage(e.Error))
		}
	}

	result, err := exporter.Export(deps.Ctx, deps.Catalog.IDs(), progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: export failed: %s\n", handbook.ErrorMessage(err))
		if handbook.ErrorCode(err) == handbook.EINVALID {
			fmt.Fprintln(deps.Stderr, "Hint: export into a new or empty directory")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages (%s) to %s\n", result.Pages, export.FormatBytes(result.Bytes), dir)
	return nil
}
