// Package ingest provides price list import orchestration. It coordinates
// fetching, catalog resolution, CSV/XLSX normalization and storage of
// regional price lists.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/csv"
	"github.com/maxsviluppo/prezzario/xlsx"
	"golang.org/x/sync/errgroup"
)

// Importer orchestrates price list imports from local files, remote URLs
// and open-data catalog datasets.
type Importer struct {
	Store       prezzario.PriceListStore
	Fetcher     prezzario.Fetcher
	Catalog     prezzario.Catalog
	Normalizer  *csv.Normalizer
	Workbook    *xlsx.Reader
	Concurrency int
}

// Result holds the outcome of a batch import operation.
type Result struct {
	Imported int
	Failed   int
	Items    int
}

// ProgressEvent reports progress during a batch import.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	DatasetID string
	Name      string
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

// ProgressFunc is a callback for reporting batch import progress.
type ProgressFunc func(event ProgressEvent)

// importResult holds the outcome of importing a single dataset.
type importResult struct {
	position  int
	datasetID string
	name      string
	items     int
	err       error
}

// ImportFile imports a local CSV file. Only commas act as field
// delimiters on this path.
func (im *Importer) ImportFile(ctx context.Context, path string, opts csv.Options) (*csv.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, prezzario.Errorf(prezzario.EINVALID, "cannot read %q: %v", path, err)
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(path)
	}
	opts.AllowSemicolon = false
	return im.save(ctx, string(data), func(raw string) (*csv.Result, error) {
		return im.normalizer().Normalize(raw, opts)
	})
}

// ImportWorkbook imports a local XLSX workbook by flattening its first
// sheet into records and running them through the CSV normalizer.
func (im *Importer) ImportWorkbook(ctx context.Context, path string, opts csv.Options) (*csv.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, prezzario.Errorf(prezzario.EINVALID, "cannot read %q: %v", path, err)
	}
	rows, err := im.workbook().Rows(data)
	if err != nil {
		return nil, err
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(path)
	}
	return im.save(ctx, string(data), func(string) (*csv.Result, error) {
		return im.normalizer().NormalizeRecords(rows, opts)
	})
}

// ImportURL fetches a remote CSV and imports it. Remote exports commonly
// use semicolons, so both delimiters are accepted on this path.
func (im *Importer) ImportURL(ctx context.Context, url string, opts csv.Options) (*csv.Result, error) {
	raw, err := im.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if opts.Source == "" {
		opts.Source = url
	}
	opts.AllowSemicolon = true
	return im.save(ctx, raw, func(raw string) (*csv.Result, error) {
		return im.normalizer().Normalize(raw, opts)
	})
}

// ImportDataset resolves a catalog dataset to its CSV resource and
// imports it. Region and year are inferred from the dataset title unless
// the caller pins them in opts.
func (im *Importer) ImportDataset(ctx context.Context, datasetID string, opts csv.Options) (*csv.Result, error) {
	ds, err := im.Catalog.FindDatasetByID(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	res, err := ds.CSVResource()
	if err != nil {
		return nil, err
	}

	if opts.Name == "" {
		opts.Name = ds.Title
	}
	if opts.Region == "" {
		opts.Region = prezzario.InferRegion(ds.Title)
	}
	if opts.Year == 0 {
		opts.Year = prezzario.InferYear(ds.Title)
	}
	if opts.Source == "" {
		opts.Source = res.URL
	}
	return im.ImportURL(ctx, res.URL, opts)
}

// Discover searches the open-data catalog for price list datasets.
func (im *Importer) Discover(ctx context.Context, query string) ([]*prezzario.Dataset, error) {
	return im.Catalog.SearchDatasets(ctx, query)
}

// ImportDatasets imports multiple catalog datasets concurrently. The
// progress callback, if provided, receives events as imports proceed.
// Individual failures are reported and counted, never fatal for the
// batch.
func (im *Importer) ImportDatasets(ctx context.Context, datasetIDs []string, progress ProgressFunc) (*Result, error) {
	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan importResult, len(datasetIDs))

	var completed atomic.Int64
	total := len(datasetIDs)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, id := range datasetIDs {
			i, id := i, id
			g.Go(func() error {
				r := importResult{position: i, datasetID: id}
				if res, err := im.ImportDataset(gctx, id, csv.Options{}); err != nil {
					r.err = err
				} else {
					r.name = res.PriceList.Name
					r.items = res.Accepted
				}
				resultCh <- r
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var out Result
	for r := range resultCh {
		completed.Add(1)

		if r.err != nil {
			out.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					DatasetID: r.datasetID,
					Error:     r.err,
				})
			}
			continue
		}

		out.Imported++
		out.Items += r.items
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				DatasetID: r.datasetID,
				Name:      r.name,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &out, nil
}

// save normalizes raw content, fingerprints the source and persists the
// resulting price list. The list is stored only after it is fully built.
func (im *Importer) save(ctx context.Context, raw string, normalize func(string) (*csv.Result, error)) (*csv.Result, error) {
	res, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	res.PriceList.SourceHash = ComputeHash(raw)

	if err := im.Store.CreatePriceList(ctx, res.PriceList); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *Importer) normalizer() *csv.Normalizer {
	if im.Normalizer != nil {
		return im.Normalizer
	}
	return csv.NewNormalizer()
}

func (im *Importer) workbook() *xlsx.Reader {
	if im.Workbook != nil {
		return im.Workbook
	}
	return xlsx.NewReader()
}

// ComputeHash computes a hash of the source content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
