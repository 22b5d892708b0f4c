// Command decalc is an interactive arithmetic calculator that prints exact
// decimal results.
package main

import (
	"fmt"
	"os"

	"github.com/decalc/decalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
