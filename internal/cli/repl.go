package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/decalc/decalc"
	"github.com/decalc/decalc/internal/cli/config"
	"github.com/decalc/decalc/internal/cli/output"
)

func newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, cfg)
		},
	}
}

func runREPL(cmd *cobra.Command, cfg *config.Config) error {
	r := newRenderer(cmd)
	styles := r.Styles()

	prompt := config.DefaultPrompt
	history := ""
	if cfg != nil {
		if cfg.Prompt != "" {
			prompt = cfg.Prompt
		}
		history = cfg.HistoryFile
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r.Println(styles.Banner.Render("decalc " + Version))
	r.Println(styles.Muted.Render("Enter expressions like '123+456' or '123*1e6'"))
	r.Println(styles.Muted.Render("Type .help for commands, .quit to exit"))
	r.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		input := stripSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ".") {
			if input == ".quit" || input == ".exit" {
				break
			}
			handleDotCommand(r, input)
			continue
		}

		// Errors abort only this expression; the loop keeps reading.
		result, err := decalc.EvalString(input)
		if err != nil {
			r.Errorf("Error: %v", err)
			continue
		}
		r.Println(decalc.FormatFull(result))
	}

	return nil
}

// stripSpace removes all whitespace so the tokenizer sees a contiguous
// expression.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func handleDotCommand(r *output.Renderer, line string) {
	switch line {
	case ".help":
		r.Println(replHelp)
	case ".clear":
		r.Printf("\033[H\033[2J")
	default:
		r.Errorf("Unknown command: %s (type .help for commands)", line)
	}
}

const replHelp = `
Commands:
  .help          Show this help message
  .clear         Clear the screen
  .quit / .exit  Exit the calculator

Tips:
  - Expressions evaluate left to right: 2+3*4 is 20
  - A leading - subtracts from zero: -5+3 is -2
  - Results always print in full decimal, never scientific notation
  - Use arrow keys to navigate history`
