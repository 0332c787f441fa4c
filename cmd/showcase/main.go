package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/showcase"
	"github.com/fwojciec/showcase/etree"
	"github.com/fwojciec/showcase/fs"
	"github.com/fwojciec/showcase/goquery"
	"github.com/fwojciec/showcase/htmltomarkdown"
	showcasehttp "github.com/fwojciec/showcase/http"
	"github.com/fwojciec/showcase/load"
	showcaseslog "github.com/fwojciec/showcase/slog"
	"github.com/fwojciec/showcase/sqlite"
)

// DefaultAPIURL is the base URL of the API documentation.
const DefaultAPIURL = "https://omnifaces.org/docs/javadoc/current/"

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
	// Web root holding the showcase templates and sources. Set before
	// calling Run().
	Root string

	// Base URL of the API documentation. Set before calling Run().
	APIURL string

	// SQLite database used by exports with --db.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Root:   envOr("SHOWCASE_ROOT", "."),
		APIURL: envOr("SHOWCASE_API_URL", DefaultAPIURL),
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
		kong.Name("showcase"),
		kong.Description("Load and export the pages of the showcase."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'showcase --help' to see available commands")
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

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire core services into dependencies
	resources := fs.NewResourceLoader(m.Root)

	var fetcher showcase.Fetcher = showcasehttp.NewFetcher(showcasehttp.WithTimeout(cli.Timeout))
	fetcher = showcasehttp.NewLimitedFetcher(fetcher, showcasehttp.NewDomainLimiter(cli.RPS))
	if logger != nil {
		fetcher = showcaseslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	var descriptions showcase.DescriptionLoader = goquery.NewDescriptionLoader(fetcher, withTrailingSlash(m.APIURL))
	if logger != nil {
		descriptions = showcaseslog.NewLoggingDescriptionLoader(descriptions, logger)
	}

	var loader showcase.ContentLoader = &load.Loader{
		Resources:    resources,
		Metadata:     etree.NewMetadataReader(resources),
		Descriptions: descriptions,
	}
	if logger != nil {
		loader = showcaseslog.NewLoggingContentLoader(loader, logger)
	}

	deps.Menus = fs.NewMenuBuilder(m.Root)
	deps.Loader = loader
	deps.Converter = htmltomarkdown.NewConverter()

	// Wire command-specific dependencies based on command
	if strings.HasPrefix(kongCtx.Command(), "export") {
		if cli.Export.DB != "" {
			m.DB = sqlite.NewDB(cli.Export.DB)
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", cli.Export.DB, err)
			}
			defer m.Close()
			deps.Store = sqlite.NewPageStore(m.DB)
		} else {
			dir := filepath.Clean(cli.Export.Dir)
			deps.Store = fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir), deps.Converter)
		}
	}

	return kongCtx.Run(deps)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func withTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}
