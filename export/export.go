// Package export loads every page of the showcase menu and persists the
// loaded pages to a page store.
package export

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/showcase"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages loaded at the same time when
// Exporter.Concurrency is not set.
const DefaultConcurrency = 4

// Exporter loads the pages of a menu and saves them to a store.
type Exporter struct {
	Loader      showcase.ContentLoader
	Store       showcase.PageStore
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of an export.
type Result struct {
	Saved   int
	Failed  int
	Sources int
}

// ProgressEvent reports progress during an export.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	ViewID    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting export progress.
type ProgressFunc func(event ProgressEvent)

type loadResult struct {
	page *showcase.Page
	err  error
}

// Export loads every page of menu that has a template and saves the loaded
// pages in menu order. Pages that fail to load after all retries are
// counted as failed and left unloaded. Progress events are delivered one
// at a time. A store failure or a canceled
// context aborts the store; otherwise the store is committed.
func (e *Exporter) Export(ctx context.Context, menu *showcase.Menu, progress ProgressFunc) (*Result, error) {
	pages := showcase.Pages(menu)
	total := len(pages)

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	results := make([]loadResult, total)
	var (
		mu        sync.Mutex
		completed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, page := range pages {
		g.Go(func() error {
			err := LoadWithRetryDelays(gctx, page, e.Loader, delays)
			results[i] = loadResult{page: page, err: err}

			mu.Lock()
			defer mu.Unlock()
			completed++
			if progress != nil {
				event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, ViewID: page.ViewID()}
				if err != nil {
					event.Type = ProgressFailed
					event.Error = err
				}
				progress(event)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, e.abort(err)
	}

	result := &Result{}
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		if err := e.Store.Save(ctx, r.page); err != nil {
			return nil, e.abort(fmt.Errorf("saving %s: %w", r.page.ViewID(), err))
		}
		result.Saved++
		result.Sources += len(r.page.Sources())
	}

	if err := e.Store.Commit(); err != nil {
		return nil, e.abort(fmt.Errorf("committing export: %w", err))
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

func (e *Exporter) abort(err error) error {
	if abortErr := e.Store.Abort(); abortErr != nil {
		return fmt.Errorf("%w (abort failed: %v)", err, abortErr)
	}
	return err
}
