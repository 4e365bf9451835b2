package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aitoroses/chevrotain"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate a catalog without tokenizing anything",
		Flags: []cli.Flag{catalogFlag},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			lx, err := cat.Build(chevrotain.DeferDefinitionErrors[string]())
			if err != nil {
				return err
			}

			if errs := lx.DefinitionErrors(); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(os.Stderr, e.Error())
				}

				return cli.Exit("", 1)
			}

			fmt.Println("catalog is valid")

			return nil
		},
	}
}
