// SPDX-License-Identifier: MIT

// Command lvcolor colors DIMACS benchmark graphs with IDO, DSATUR and RLF
// and appends the comparison to a results log. It can also fetch benchmark
// instances and generate synthetic ones.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// main is the entrypoint for the lvcolor command.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
