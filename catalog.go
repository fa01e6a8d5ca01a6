package prezzario

import (
	"context"
	"strings"
)

// Dataset is a remote open-data catalog entry describing one or more
// downloadable resources.
type Dataset struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	Resources    []*Resource   `json:"resources"`
	Organization *Organization `json:"organization,omitempty"`
}

// Resource is one downloadable file reference inside a catalog dataset.
type Resource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Format      string `json:"format"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Organization is the publishing body of a dataset.
type Organization struct {
	Title string `json:"title"`
}

// CSVResource selects the single ingestible resource of the dataset: the
// first resource whose declared format equals "csv" case-insensitively, or
// whose URL ends with ".csv", checked in that order. First match across
// the resource list wins; there is no "best" match.
// Returns ENOTFOUND when the dataset carries no CSV resource.
func (d *Dataset) CSVResource() (*Resource, error) {
	for _, r := range d.Resources {
		if strings.EqualFold(r.Format, "csv") || strings.HasSuffix(strings.ToLower(r.URL), ".csv") {
			return r, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "dataset %q has no CSV resource", d.Title)
}

// Catalog searches a remote open-data catalog for datasets.
type Catalog interface {
	// SearchDatasets returns catalog datasets matching the free-text query.
	SearchDatasets(ctx context.Context, query string) ([]*Dataset, error)

	// FindDatasetByID retrieves one dataset with its full resource list.
	// Returns ENOTFOUND if the dataset does not exist.
	FindDatasetByID(ctx context.Context, id string) (*Dataset, error)
}
