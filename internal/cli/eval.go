package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decalc/decalc"
	"github.com/decalc/decalc/internal/cli/config"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions and print their full decimal results",
		Long: `Evaluate each argument as one expression and print its result on its own
line. A failing expression prints "Error: <message>" on stderr and does not
stop the remaining expressions from evaluating.

Expressions may start with a minus: eval -5+3 prints -2. Only --long flags
are recognized by this command, and a -- ends them.`,
		Args: cobra.ArbitraryArgs,
		// A leading - must start an expression, never a shorthand flag, so
		// cobra's flag parsing stays out of the argument list.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, help, err := splitEvalArgs(cmd, args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}
			// Flags were not parsed when PersistentPreRunE loaded the
			// config, so load it again now that they are.
			if cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			if len(exprs) == 0 {
				return errors.New("requires at least 1 expression")
			}
			r := newRenderer(cmd)
			failed := 0
			for _, arg := range exprs {
				input := stripSpace(arg)
				if input == "" {
					continue
				}
				result, err := decalc.EvalString(input)
				if err != nil {
					r.Errorf("Error: %v", err)
					failed++
					continue
				}
				r.Println(decalc.FormatFull(result))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
			}
			return nil
		},
	}
}

// splitEvalArgs separates --long flags from expression arguments and parses
// the flags into the root flag set. A single leading dash starts an
// expression ("-5+3"), and everything after "--" is an expression.
func splitEvalArgs(cmd *cobra.Command, args []string) (exprs []string, help bool, err error) {
	flags := cmd.Root().PersistentFlags()
	var flagArgs []string
	rest := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case rest:
			exprs = append(exprs, arg)
		case arg == "--":
			rest = true
		case arg == "-h", arg == "--help":
			return nil, true, nil
		case strings.HasPrefix(arg, "--"):
			flagArgs = append(flagArgs, arg)
			// A value-taking flag without = consumes the next argument.
			if !strings.Contains(arg, "=") {
				if f := flags.Lookup(strings.TrimPrefix(arg, "--")); f != nil && f.NoOptDefVal == "" && i+1 < len(args) {
					i++
					flagArgs = append(flagArgs, args[i])
				}
			}
		default:
			exprs = append(exprs, arg)
		}
	}
	if err := flags.Parse(flagArgs); err != nil {
		return nil, false, err
	}
	return exprs, false, nil
}
