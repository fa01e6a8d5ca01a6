// Command prezzario imports Italian regional construction price lists and
// searches them, optionally with AI keyword expansion.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/ckan"
	"github.com/maxsviluppo/prezzario/fs"
	"github.com/maxsviluppo/prezzario/gemini"
	"github.com/maxsviluppo/prezzario/ingest"
	"github.com/maxsviluppo/prezzario/search"
	przslog "github.com/maxsviluppo/prezzario/slog"
	"github.com/maxsviluppo/prezzario/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// StorePath selects the JSON file store when non-empty; otherwise
	// DBPath selects the SQLite store. Set before calling Run().
	StorePath string
	DBPath    string

	// ProxyURL is the base URL of the open-data proxy.
	ProxyURL string

	// SQLite database, open only when the SQLite store is selected.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store prezzario.PriceListStore
}

// NewMain returns a new instance of Main with defaults from the
// environment.
func NewMain() *Main {
	return &Main{
		StorePath: os.Getenv("PREZZARIO_STORE"),
		DBPath:    defaultDBPath(),
		ProxyURL:  os.Getenv("PREZZARIO_PROXY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prezzario"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'prezzario --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr)

	// Open the store
	store, err := m.openStore()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set PREZZARIO_STORE (JSON file) or PREZZARIO_DB (SQLite) to use a different store path")
		return err
	}
	defer m.Close()

	m.Store = store
	deps.Store = przslog.NewLoggingPriceListStore(store, logger)
	deps.Searcher = search.NewEngine(deps.Store)
	deps.Fallback = search.NewSemantic(deps.Store, nil)
	deps.Semantic = deps.Fallback
	deps.Importer = &ingest.Importer{Store: deps.Store}

	// Wire the proxy client for commands that reach the network
	switch cmd {
	case "import-url", "discover", "import-dataset":
		if m.ProxyURL == "" {
			fmt.Fprintln(stderr, "PREZZARIO_PROXY environment variable not set. It must point to the open-data proxy base URL.")
			return fmt.Errorf("PREZZARIO_PROXY not set")
		}
		client := ckan.NewClient(m.ProxyURL)
		deps.Catalog = przslog.NewLoggingCatalog(client, logger)
		deps.Importer.Fetcher = client
		deps.Importer.Catalog = deps.Catalog
	}

	// Wire the keyword expander when an AI search was requested and a
	// key is available; otherwise the deterministic fallback serves.
	if cmd == "search" && cli.Search.Semantic {
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			expander := gemini.NewExpander(client, "")
			deps.Semantic = search.NewSemantic(deps.Store, expander)
		}
	}

	return kongCtx.Run(deps)
}

// openStore opens the JSON file store when StorePath is set, the SQLite
// store otherwise.
func (m *Main) openStore() (prezzario.PriceListStore, error) {
	if m.StorePath != "" {
		store := fs.NewStore(m.StorePath)
		if err := store.Open(); err != nil {
			return nil, fmt.Errorf("failed to open store at %q: %w", m.StorePath, err)
		}
		return store, nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return sqlite.NewPriceListStore(m.DB), nil
}

// newLogger logs operations to stderr when PREZZARIO_DEBUG is set and
// stays quiet otherwise.
func newLogger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("PREZZARIO_DEBUG") != "" {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("PREZZARIO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "prezzario.db"
	}
	dir := filepath.Join(home, ".prezzario")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "prezzario.db")
}
