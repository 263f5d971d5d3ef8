// Command qsort sorts integers with the quicksort package and prints them
// space separated, one trailing space after each value.
//
//	$ qsort 10 7 8 9 1 5
//	1 5 7 8 9 10
//
// Values come from the arguments, from --input (a YAML or JSON list), from
// --demo, or else from stdin.
package main

import (
	"os"

	"github.com/amp-labs/quicksort/shutdown"
)

func main() {
	ctx := shutdown.SetupHandler()

	cmd := newRootCmd()

	err := cmd.ExecuteContext(ctx)

	shutdown.Cleanup()

	if err != nil {
		os.Exit(1)
	}
}
