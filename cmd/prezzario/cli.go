package main

import (
	"context"
	"io"

	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Store    prezzario.PriceListStore
	Catalog  prezzario.Catalog
	Importer *ingest.Importer
	Searcher prezzario.Searcher

	// Semantic answers AI-assisted searches; Fallback is the
	// deterministic matcher used when Semantic fails or is absent.
	Semantic prezzario.SemanticSearcher
	Fallback prezzario.SemanticSearcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Import        ImportCmd        `cmd:"" help:"Import a local CSV or XLSX price list"`
	ImportURL     ImportURLCmd     `cmd:"" name:"import-url" help:"Import a remote CSV through the proxy"`
	Discover      DiscoverCmd      `cmd:"" help:"Search the open-data catalog for price list datasets"`
	ImportDataset ImportDatasetCmd `cmd:"" name:"import-dataset" help:"Import one or more catalog datasets"`
	Search        SearchCmd        `cmd:"" help:"Search stored price list items"`
	List          ListCmd          `cmd:"" help:"List stored price lists"`
	Delete        DeleteCmd        `cmd:"" help:"Delete a price list"`
	Stats         StatsCmd         `cmd:"" help:"Show store statistics"`
	Categories    CategoriesCmd    `cmd:"" help:"List distinct item categories"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path         string `arg:"" help:"Path to the CSV or XLSX file"`
	Name         string `short:"n" help:"Price list name (defaults to the file name)"`
	Region       string `short:"r" required:"" help:"Region the price list belongs to"`
	Municipality string `short:"m" help:"Municipality, when narrower than the region"`
	Year         int    `short:"y" help:"Reference year (defaults to the current year)"`
}

// ImportURLCmd is the "import-url" subcommand.
type ImportURLCmd struct {
	URL          string `arg:"" help:"URL of the remote CSV"`
	Name         string `short:"n" help:"Price list name (defaults to the URL)"`
	Region       string `short:"r" required:"" help:"Region the price list belongs to"`
	Municipality string `short:"m" help:"Municipality, when narrower than the region"`
	Year         int    `short:"y" help:"Reference year (defaults to the current year)"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Query string `arg:"" optional:"" default:"prezzario regionale" help:"Catalog search query"`
}

// ImportDatasetCmd is the "import-dataset" subcommand.
type ImportDatasetCmd struct {
	IDs         []string `arg:"" help:"Catalog dataset IDs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent import limit"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query        string   `arg:"" optional:"" help:"Search terms (all must match)"`
	Region       string   `short:"r" help:"Filter by region (exact)"`
	Municipality string   `short:"m" help:"Filter by municipality (exact)"`
	Category     string   `help:"Filter by category (substring)"`
	MinPrice     *float64 `help:"Minimum price"`
	MaxPrice     *float64 `help:"Maximum price"`
	Year         *int     `short:"y" help:"Filter by year"`
	Semantic     bool     `short:"s" help:"Expand the query with AI keywords and rank results"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Price list ID"`
	Force bool   `help:"Confirm deletion"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}
