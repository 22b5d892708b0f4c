// Package cli provides the command-line interface for decalc.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/decalc/decalc/internal/cli/config"
	"github.com/decalc/decalc/internal/cli/output"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates and returns the root command. Running it with no
// subcommand starts the REPL.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decalc",
		Short: "decalc - exact decimal calculator",
		Long: `decalc evaluates arithmetic expressions left to right and prints results
as full decimal strings, never in scientific notation.

Expressions are built from floating-point literals (including scientific
notation like 1e6) and the operators + - * /. There is no operator
precedence: 2+3*4 is 20. A leading - subtracts from zero: -5+3 is -2.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands.
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./decalc.yaml)")
	rootCmd.PersistentFlags().String("prompt", "", "REPL prompt")
	rootCmd.PersistentFlags().String("history", "", "path to the REPL history file")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable styled output")

	rootCmd.AddCommand(newREPLCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// newRenderer builds the renderer for a command from the loaded config.
func newRenderer(cmd *cobra.Command) *output.Renderer {
	color := true
	if cfg != nil && cfg.NoColor {
		color = false
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), color)
}
