package main

import (
	"github.com/urfave/cli/v3"

	"github.com/aitoroses/chevrotain/catalogcfg"
)

// catalogFlag is shared by every subcommand that needs a descriptor catalog.
var catalogFlag = &cli.StringFlag{
	Name:     "catalog",
	Aliases:  []string{"c"},
	Usage:    "path to a catalog YAML file (searched upward from cwd if omitted)",
	Required: false,
}

func loadCatalog(cmd *cli.Command) (*catalogcfg.Catalog, error) {
	if path := cmd.String("catalog"); path != "" {
		return catalogcfg.LoadFile(path)
	}

	return catalogcfg.Load(".")
}
