// Package export writes rendered pages to a PageStore.
// Pages are rendered concurrently and saved in catalog order; the export is
// all or nothing.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/handbook"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Exporter.Concurrency is not positive.
const DefaultConcurrency = 4

// Exporter renders pages and hands them to a store.
type Exporter struct {
	Pages       handbook.PageService
	Store       handbook.PageStore
	Concurrency int
}

// Result holds the outcome of an export.
type Result struct {
	Pages int
	Bytes int
}

// ProgressEvent reports progress during an export.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Section   handbook.SectionID
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressRendered
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting export progress.
type ProgressFunc func(event ProgressEvent)

type renderResult struct {
	position int
	id       handbook.SectionID
	page     *handbook.Page
	err      error
}

// Export renders every section in ids and saves the pages in that order.
// Positions passed to the store start at 1. If any page fails to render or
// save, the store is aborted and the joined errors are returned.
func (e *Exporter) Export(ctx context.Context, ids []handbook.SectionID, progress ProgressFunc) (*Result, error) {
	if len(ids) == 0 {
		return nil, handbook.Errorf(handbook.EINVALID, "no sections to export")
	}

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(ids)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan renderResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, id := range ids {
			g.Go(func() error {
				page, err := e.Pages.FindPage(gctx, id)
				resultCh <- renderResult{position: i, id: id, page: page, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]renderResult, total)
	var completed int
	for result := range resultCh {
		completed++
		results[result.position] = result

		event := ProgressEvent{
			Type:      ProgressRendered,
			Completed: completed,
			Total:     total,
			Section:   result.id,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		notify(progress, event)
	}

	var errs []error
	for _, result := range results {
		if result.err != nil {
			errs = append(errs, fmt.Errorf("render %s: %w", result.id, result.err))
		}
	}
	if len(errs) > 0 {
		return nil, abort(e.Store, errors.Join(errs...))
	}

	var bytes int
	for _, result := range results {
		if err := e.Store.Save(ctx, result.position+1, result.page); err != nil {
			return nil, abort(e.Store, fmt.Errorf("save %s: %w", result.id, err))
		}
		bytes += len(result.page.Content)
	}

	if err := e.Store.Commit(); err != nil {
		return nil, abort(e.Store, fmt.Errorf("commit: %w", err))
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &Result{Pages: total, Bytes: bytes}, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// abort discards pending store changes and returns err with any abort
// failure attached.
func abort(store handbook.PageStore, err error) error {
	if abortErr := store.Abort(); abortErr != nil {
		return errors.Join(err, fmt.Errorf("abort: %w", abortErr))
	}
	return err
}
