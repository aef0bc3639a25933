// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qweave/circuit"
	"github.com/katalvlaran/qweave/qasm"
	"github.com/katalvlaran/qweave/qft"
	"github.com/katalvlaran/qweave/viz"
)

// buildFlags holds the flag values for the build command.
type buildFlags struct {
	qubits  int
	inverse bool
	format  string
	measure bool
}

// NewBuildCommand creates the "build" command: construct the
// (inverse) transform circuit and print it.
func NewBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the transform circuit and print it",
		Long: `Build the quantum Fourier transform circuit on N qubits and print it
as a wire diagram, an OpenQASM 2.0 program, or a plain gate list.

Examples:
  qweave build -n 3
  qweave build -n 4 --inverse --format qasm
  qweave build -n 2 --format qasm --measure`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.qubits, "qubits", "n", 0, "register width (default from config)")
	cmd.Flags().BoolVar(&flags.inverse, "inverse", false, "build the inverse transform")
	cmd.Flags().StringVar(&flags.format, "format", "ascii", "output format: ascii, qasm, gates")
	cmd.Flags().BoolVar(&flags.measure, "measure", false, "append measurements (qasm only)")

	return cmd
}

// runBuild constructs the requested circuit and renders it in the
// requested format.
func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	n := resolveInt(cmd, "qubits", flags.qubits, cfg.Qubits)

	c, err := circuit.New(n)
	if err != nil {
		return err
	}
	if flags.inverse {
		err = qft.InverseQFT(c, n)
	} else {
		err = qft.QFT(c, n)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "ascii":
		return viz.Draw(out, c)
	case "qasm":
		var opts []qasm.Option
		if flags.measure {
			opts = append(opts, qasm.WithMeasurements())
		}
		return qasm.EncodeTo(out, c, opts...)
	case "gates":
		for _, g := range c.Gates() {
			fmt.Fprintln(out, g)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q: want ascii, qasm or gates", flags.format)
	}
}
