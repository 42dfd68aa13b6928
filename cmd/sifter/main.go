package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sifter"
	"github.com/fwojciec/sifter/goquery"
	"github.com/fwojciec/sifter/htmltomarkdown"
	"github.com/fwojciec/sifter/mysql"
	"github.com/fwojciec/sifter/readability"
	"github.com/fwojciec/sifter/sift"
	sifterslog "github.com/fwojciec/sifter/slog"
	"github.com/fwojciec/sifter/sqlite"
	"github.com/fwojciec/sifter/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Store is an open database backing the source and digest services.
type Store interface {
	Pinger
	Close() error
}

// Main represents the program.
type Main struct {
	// Dotenv files loaded before flags are parsed. Missing files are ignored.
	EnvFiles []string

	// Open store. Set by Run.
	DB Store

	// Services for end-to-end testing.
	SourceService sifter.SourceService
	DigestService sifter.DigestService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFiles: []string{".env"},
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
	for _, f := range m.EnvFiles {
		// godotenv never overrides variables already set in the environment.
		_ = godotenv.Load(f)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sifter"),
		kong.Description("Distill stored blog posts into plain-text transmission digests."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sifter --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.openStore(cli.Driver, cli.DSN); err != nil {
		fmt.Fprintln(stderr, "Hint: Set SIFTER_DRIVER and SIFTER_DSN to select the database")
		return err
	}
	defer m.Close()

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		m.SourceService = sifterslog.NewLoggingSourceService(m.SourceService, logger)
		m.DigestService = sifterslog.NewLoggingDigestService(m.DigestService, logger)
	}

	deps.Driver = cli.Driver
	deps.DB = m.DB
	deps.Sources = m.SourceService
	deps.Digests = m.DigestService

	if kongCtx.Command() == "sift" {
		deps.Sifter = newSifter(&cli.Sift, m.SourceService, m.DigestService, logger)
	}

	return kongCtx.Run(deps)
}

// openStore connects to the selected database and wires its services.
func (m *Main) openStore(driver, dsn string) error {
	switch driver {
	case "mysql":
		if dsn == "" {
			return sifter.Errorf(sifter.EINVALID, "SIFTER_DSN must be set for the mysql driver")
		}
		db := mysql.NewDB(dsn)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open mysql database: %w", err)
		}
		m.DB = db
		m.SourceService = mysql.NewSourceService(db)
		m.DigestService = mysql.NewDigestService(db)
	default:
		if dsn == "" {
			dsn = defaultDBPath()
		}
		db := sqlite.NewDB(dsn)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", dsn, err)
		}
		m.DB = db
		m.SourceService = sqlite.NewSourceService(db)
		m.DigestService = sqlite.NewDigestService(db)
	}
	return nil
}

// newSifter assembles the pipeline selected by the sift flags.
func newSifter(c *SiftCmd, sources sifter.SourceService, digests sifter.DigestService, logger *slog.Logger) *sift.Sifter {
	var text sifter.TextExtractor = goquery.NewTextExtractor()
	if c.Format == "markdown" {
		text = htmltomarkdown.NewConverter()
	}
	if logger != nil {
		text = sifterslog.NewLoggingTextExtractor(text, logger)
	}

	s := &sift.Sifter{
		Sources: sources,
		Digests: digests,
		Text:    text,
		Config:  c.DigestConfig(),
		Dedupe:  c.Dedupe,
		DryRun:  c.DryRun,
	}

	switch c.MainContent {
	case "trafilatura":
		s.MainContent = trafilatura.NewExtractor()
	case "readability":
		s.MainContent = readability.NewExtractor()
	}

	if c.Rate > 0 {
		s.Limiter = sift.NewRateLimiter(c.Rate)
	}

	return s
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sifter.db"
	}
	dir := filepath.Join(home, ".sifter")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sifter.db")
}
