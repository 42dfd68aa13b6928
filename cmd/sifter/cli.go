package main

import (
	"context"
	"io"

	"github.com/fwojciec/sifter"
	"github.com/fwojciec/sifter/sift"
)

// Pinger verifies that the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Driver  string
	DB      Pinger
	Sources sifter.SourceService
	Digests sifter.DigestService
	Sifter  *sift.Sifter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Driver string `enum:"sqlite,mysql" default:"sqlite" env:"SIFTER_DRIVER" help:"Database driver (sqlite, mysql)"`
	DSN    string `name:"dsn" env:"SIFTER_DSN" help:"Database DSN or SQLite path (default ~/.sifter/sifter.db for sqlite)"`
	Debug  bool   `help:"Log database and extraction calls to stderr"`

	Check    CheckCmd    `cmd:"" help:"Verify the database connection"`
	Diagnose DiagnoseCmd `cmd:"" help:"Report memory counters"`
	Sift     SiftCmd     `cmd:"" help:"Convert blog posts into transmission digests"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}

// DiagnoseCmd is the "diagnose" subcommand.
type DiagnoseCmd struct {
	SubjectID int64  `name:"subject-id" default:"999" help:"Member ID to count records for"`
	Category  string `default:"blog_post" help:"Source category to count"`
}

// SiftCmd is the "sift" subcommand.
type SiftCmd struct {
	Category       string  `default:"blog_post" help:"Source category to sift"`
	SubjectID      int64   `name:"subject-id" default:"999" help:"Member ID stamped on digests"`
	MemoryType     string  `name:"memory-type" default:"insight" help:"Memory type stamped on digests"`
	Confidence     float64 `default:"0.95" help:"Confidence stamped on digests"`
	DigestCategory string  `name:"digest-category" default:"transmission_digest" help:"Category stamped on digests"`
	Label          string  `default:"LUX TRANSMISSION DIGEST" help:"Label prefixing each digest"`
	MaxChars       int     `name:"max-chars" default:"5000" help:"Maximum digest length in characters (0 for no limit)"`
	Format         string  `enum:"text,markdown" default:"text" help:"Digest text format (text, markdown)"`
	MainContent    string  `name:"main-content" enum:"none,trafilatura,readability" default:"none" help:"Strip boilerplate before extraction (none, trafilatura, readability)"`
	Rate           float64 `default:"0" help:"Maximum digest inserts per second (0 for unthrottled)"`
	Dedupe         bool    `help:"Skip posts whose digest matches one already produced in this run"`
	DryRun         bool    `name:"dry-run" short:"n" help:"Build digests without saving them"`
}

// Validate rejects flag values that would make every digest invalid.
// Kong calls it after parsing when sift is the selected command.
func (c *SiftCmd) Validate() error {
	if c.Confidence < 0 || c.Confidence > 1 {
		return sifter.Errorf(sifter.EINVALID, "--confidence must be between 0 and 1, got %v", c.Confidence)
	}
	if c.MaxChars < 0 {
		return sifter.Errorf(sifter.EINVALID, "--max-chars must not be negative, got %d", c.MaxChars)
	}
	if c.Rate < 0 {
		return sifter.Errorf(sifter.EINVALID, "--rate must not be negative, got %v", c.Rate)
	}
	return nil
}

// DigestConfig returns the digest metadata selected by the flags.
func (c *SiftCmd) DigestConfig() sifter.DigestConfig {
	return sifter.DigestConfig{
		SubjectID:  c.SubjectID,
		MemoryType: c.MemoryType,
		Confidence: c.Confidence,
		Category:   c.DigestCategory,
		Label:      c.Label,
		MaxLength:  c.MaxChars,
	}
}
