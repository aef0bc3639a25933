// SPDX-License-Identifier: MIT
// Package backend: sentinel error set. Service-layer failures carry
// stack traces via github.com/pkg/errors; match with errors.Is.
package backend

import "github.com/pkg/errors"

var (
	// ErrNilCircuit is returned by Run for a nil circuit.
	ErrNilCircuit = errors.New("backend: nil circuit")

	// ErrShots is returned by Run when shots < 1.
	ErrShots = errors.New("backend: shots must be positive")

	// ErrTooLarge flags a circuit wider than the backend's capacity.
	ErrTooLarge = errors.New("backend: circuit exceeds backend capacity")

	// ErrNilBackend is returned by Register for a nil or unnamed
	// backend.
	ErrNilBackend = errors.New("backend: nil or unnamed backend")

	// ErrUnknownBackend is returned by Get for an unregistered name.
	ErrUnknownBackend = errors.New("backend: unknown backend")
)
