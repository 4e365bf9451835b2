package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/expr-lang/expr"
	"github.com/urfave/cli/v3"

	"github.com/aitoroses/chevrotain"
)

var errExprNotBool = errors.New("lexcat: --where expression did not evaluate to a boolean")

func tokenizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Tokenize a file (or stdin) and print the resulting tokens",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			catalogFlag,
			&cli.StringFlag{Name: "mode", Usage: "initial lexing mode (defaults to the catalog's default_mode)"},
			&cli.StringFlag{Name: "group", Usage: "print a named token group instead of the default stream"},
			&cli.StringFlag{Name: "where", Usage: "expr-lang boolean expression filtering tokens (vars: class, image, line, column)"},
			&cli.BoolFlag{Name: "json", Usage: "print tokens as newline-delimited JSON"},
		},
		Action: runTokenize,
	}
}

func runTokenize(_ context.Context, cmd *cli.Command) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	lx, err := cat.Build()
	if err != nil {
		return err
	}

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	mode := cmd.String("mode")
	if mode == "" {
		mode = cat.DefaultMode
	}

	res, err := lx.Tokenize(input, mode)
	if err != nil {
		return err
	}

	tokens := res.Tokens
	if group := cmd.String("group"); group != "" {
		tokens = res.Groups[group]
	}

	if where := cmd.String("where"); where != "" {
		tokens, err = filterTokens(tokens, where)
		if err != nil {
			return err
		}
	}

	if err := printTokens(os.Stdout, tokens, cmd.Bool("json")); err != nil {
		return err
	}

	for _, lexErr := range res.Errors {
		fmt.Fprintln(os.Stderr, lexErr.Error())
	}

	if len(res.Errors) > 0 {
		return cli.Exit("", 1)
	}

	return nil
}

func readInput(cmd *cli.Command) (string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) //#nosec G304 -- path comes from user args
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func filterTokens(tokens []chevrotain.Token[string], where string) ([]chevrotain.Token[string], error) {
	program, err := expr.Compile(where, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile --where expression %q: %w", where, err)
	}

	filtered := make([]chevrotain.Token[string], 0, len(tokens))

	for _, tok := range tokens {
		env := map[string]any{
			"class":  tok.Class,
			"image":  tok.Image,
			"line":   tok.StartLine,
			"column": tok.StartColumn,
		}

		out, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluate --where expression %q: %w", where, err)
		}

		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", errExprNotBool, out)
		}

		if keep {
			filtered = append(filtered, tok)
		}
	}

	return filtered, nil
}

func printTokens(w io.Writer, tokens []chevrotain.Token[string], asJSON bool) error {
	enc := json.NewEncoder(w)

	for _, tok := range tokens {
		if asJSON {
			if err := enc.Encode(tok); err != nil {
				return err
			}

			continue
		}

		fmt.Fprintf(w, "%-6d %-6d %-20s %q\n", tok.StartLine, tok.StartColumn, tok.Class, tok.Image)
	}

	return nil
}
