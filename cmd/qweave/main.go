// SPDX-License-Identifier: MIT
// Command qweave is the walkthrough binary: build quantum Fourier
// transform circuits, render them, and sample them on the local
// statevector simulator. All functionality lives in internal/cli.
package main

import "github.com/katalvlaran/qweave/internal/cli"

// Build identification, overridden via ldflags on release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
