package main

import (
	"fmt"

	"github.com/fwojciec/sifter"
)

// Run executes the diagnose command.
func (c *DiagnoseCmd) Run(deps *Dependencies) error {
	n, err := deps.Sources.CountSourceRecords(deps.Ctx, sifter.SourceFilter{
		Category:  &c.Category,
		SubjectID: &c.SubjectID,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sifter.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Source records (%s, subject %d): %d\n", c.Category, c.SubjectID, n)

	counts, err := deps.Sources.CountSourceCategories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sifter.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "\nSource records by category:")
	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, "  (none)")
	}
	for _, cc := range counts {
		fmt.Fprintf(deps.Stdout, "  %s: %d\n", cc.Category, cc.Count)
	}

	digests, err := deps.Digests.CountDigests(deps.Ctx, sifter.DigestFilter{SubjectID: &c.SubjectID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sifter.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "\nDigests (subject %d): %d\n", c.SubjectID, digests)

	return nil
}
