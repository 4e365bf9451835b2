// Command lexcat drives a chevrotain descriptor catalog against an input
// file: validating it, tokenizing files from the command line, or browsing
// the resulting tokens in an interactive terminal UI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "lexcat",
		Version: version,
		Usage:   "Inspect and validate chevrotain token catalogs",
		Commands: []*cli.Command{
			checkCommand(),
			tokenizeCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
