// SPDX-License-Identifier: MIT
// Package backend: the execution contract.
package backend

import (
	"context"

	"github.com/katalvlaran/qweave/circuit"
)

// Backend executes a recorded circuit for a number of shots. Run is
// synchronous and must honor ctx cancellation; implementations return
// counted outcomes keyed by MSB-first bitstrings.
//
// Hardware or remote implementations would live behind this same
// interface; the repository ships the local ideal simulator only.
type Backend interface {
	Name() string
	MaxQubits() int
	Simulator() bool
	Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error)
}
