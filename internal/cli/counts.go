// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qweave/internal/config"
	"github.com/katalvlaran/qweave/viz"
)

// countsFlags holds the flag values for the counts command.
type countsFlags struct {
	png  string
	sort bool
}

// NewCountsCommand creates the "counts" command: replot an archived
// counts file as a histogram.
func NewCountsCommand() *cobra.Command {
	flags := &countsFlags{}

	cmd := &cobra.Command{
		Use:   "counts FILE",
		Short: "Render a histogram from a saved counts file",
		Long: `Read a counts file (a JSON object of bitstring keys to tallies,
comments and trailing commas allowed) and render it as a histogram.

Examples:
  qweave counts results.json
  qweave counts results.json --sort --png results.png`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounts(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.png, "png", "", "also write the histogram to a PNG file")
	cmd.Flags().BoolVar(&flags.sort, "sort", false, "order bars by descending count")

	return cmd
}

// runCounts loads the file and renders it.
func runCounts(cmd *cobra.Command, path string, flags *countsFlags) error {
	counts, err := config.LoadCounts(path)
	if err != nil {
		return err
	}

	var opts []viz.Option
	if flags.sort {
		opts = append(opts, viz.WithSortByCount())
	}

	out := cmd.OutOrStdout()
	if err = viz.Histogram(out, counts, opts...); err != nil {
		return err
	}
	if flags.png != "" {
		if err = writePNG(flags.png, counts); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", flags.png)
	}

	return nil
}
