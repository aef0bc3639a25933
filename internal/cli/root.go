// SPDX-License-Identifier: MIT
// Package cli assembles the qweave subcommands: build prints transform
// circuits, run samples them on the local simulator, roundtrip checks
// the forward/inverse pair, counts replots archived results.
//
// One file per subcommand. The root command carries only the global
// flags and the version string; subcommand errors bubble up to
// Execute, which prints them once and picks the exit code.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qweave/internal/config"
	"github.com/katalvlaran/qweave/viz"
)

// Build identification, injected by the main package via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Global flag values, bound to persistent flags on the root command,
// plus the resolved defaults every subcommand starts from.
var (
	verbose    bool
	configPath string

	cfg config.Config
)

// NewRootCommand builds the root command with all subcommands and
// global flags attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "qweave",
		Short: "Build, inspect and sample quantum Fourier transform circuits",
		Long: `qweave builds quantum Fourier transform circuits over a small gate
set, renders them as wire diagrams or OpenQASM 2.0, and samples them
on a local statevector simulator.`,

		// Errors are printed once by Execute; keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"defaults file (default: ./qweave.yaml if present)")

	root.AddCommand(NewBuildCommand())
	root.AddCommand(NewRunCommand())
	root.AddCommand(NewRoundtripCommand())
	root.AddCommand(NewCountsCommand())

	return root
}

// Execute runs the root command and translates a failure into a
// nonzero exit code. This is the entry point called from main.
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the session defaults. An explicit --config file
// must exist; the implicit qweave.yaml may be absent.
func loadConfig() error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(".")
	}

	return err
}

// logger returns the backend logger implied by --verbose: a
// development logger on stderr, or a silent one.
func logger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return l
}

// resolveInt prefers a flag the user actually set over the configured
// fallback.
func resolveInt(cmd *cobra.Command, name string, flag, fallback int) int {
	if cmd.Flags().Changed(name) {
		return flag
	}

	return fallback
}

// resolveInt64 is resolveInt for 64-bit flags (the simulator seed).
func resolveInt64(cmd *cobra.Command, name string, flag, fallback int64) int64 {
	if cmd.Flags().Changed(name) {
		return flag
	}

	return fallback
}

// writePNG renders counts as a histogram image into a fresh file.
func writePNG(path string, counts map[string]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = viz.HistogramPNG(f, counts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
