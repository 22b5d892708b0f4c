// Package config loads decalc configuration from files, environment
// variables, and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultPrompt is the REPL prompt when none is configured.
const DefaultPrompt = "> "

// Config holds the runtime configuration for the CLI.
type Config struct {
	// Prompt is the REPL prompt string.
	Prompt string `koanf:"prompt"`
	// HistoryFile is where the REPL persists line history. Empty disables
	// persistent history.
	HistoryFile string `koanf:"history_file"`
	// NoColor disables styled output.
	NoColor bool `koanf:"no_color"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > decalc.yaml > decalc.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"decalc.yaml", "decalc.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// defaultHistoryFile places history in the user's home directory, falling
// back to a working-directory file when the home directory is unknown.
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".decalc_history"
	}
	return filepath.Join(home, ".decalc_history")
}

// Load loads configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"prompt":       DefaultPrompt,
		"history_file": defaultHistoryFile(),
		"no_color":     false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load the config file, if any.
	if used := findConfigFile(cfgFile); used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Load environment variables (DECALC_ prefix).
	// Transform: DECALC_HISTORY_FILE -> history_file
	if err := k.Load(env.Provider("DECALC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DECALC_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file).
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set.
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			// The CLI uses --history for brevity; the config key is
			// history_file.
			if key == "history" {
				return "history_file", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
