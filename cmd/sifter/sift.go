package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/sifter"
	"github.com/fwojciec/sifter/sift"
)

// Run executes the sift command.
func (c *SiftCmd) Run(deps *Dependencies) error {
	verb := "Sifted"
	if c.DryRun {
		verb = "Would sift"
	}

	progress := func(event sift.ProgressEvent) {
		switch event.Type {
		case sift.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Sifting %d %s records (run %s)\n", event.Total, c.Category, event.RunID)
		case sift.ProgressRecord:
			printRecord(deps, verb, event.Result)
		case sift.ProgressFinished:
			// Summary printed after sifting completes
		}
	}

	result, err := deps.Sifter.Sift(deps.Ctx, sifter.SourceFilter{Category: &c.Category}, progress)
	if result != nil {
		// A canceled run still reports what was committed before it stopped.
		fmt.Fprintf(deps.Stdout, "%s %d of %d records (%d empty, %d malformed, %d duplicate, %d failed)\n",
			verb, result.Sifted, result.Total, result.Empty, result.Malformed, result.Duplicates, result.Failed)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error sifting: %v\n", err)
		return err
	}
	return nil
}

// printRecord reports one record outcome. Empty records are not reported.
func printRecord(deps *Dependencies, verb string, rr *sift.RecordResult) {
	switch rr.Outcome {
	case sift.OutcomeSifted:
		fmt.Fprintf(deps.Stdout, "  %s %q (#%d, %d chars, %s)\n",
			verb, rr.Record.Title, rr.Record.ID, utf8.RuneCountInString(rr.Digest.Content), rr.Fingerprint)
	case sift.OutcomeDuplicate:
		fmt.Fprintf(deps.Stdout, "  duplicate %q (#%d, %s)\n", rr.Record.Title, rr.Record.ID, rr.Fingerprint)
	case sift.OutcomeMalformed, sift.OutcomeFailed:
		fmt.Fprintf(deps.Stderr, "  skip %q (#%d): %v\n", rr.Record.Title, rr.Record.ID, rr.Err)
	}
}
