// Command microbench runs the built-in microbenchmark suite and prints
// one normalized result line per target.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/microbench/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
