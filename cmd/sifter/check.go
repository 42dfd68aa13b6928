package main

import (
	"fmt"

	"github.com/fwojciec/sifter"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if err := deps.DB.PingContext(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sifter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Connected to %s database\n", deps.Driver)
	return nil
}
