// Package qweave is your in-memory playground for building, simulating,
// and inspecting small quantum circuits, centered on a gate-exact
// walkthrough of the Quantum Fourier Transform.
//
// 🚀 What is qweave?
//
//	A compact, education-first library that brings together:
//		• circuit:  an ordered gate-list circuit over an indexed qubit register
//		• qft:      the recursive QFT builder (rotations, register reversal,
//		            forward and exact inverse) over a narrow gate interface
//		• prep:     canonical state-preparation circuits (basis, uniform,
//		            Fourier-basis, Bell, GHZ)
//		• statevec: an ideal statevector simulator with measurement sampling
//		• qasm:     OpenQASM 2.0 encoding and decoding
//		• backend:  a pluggable execution surface with a local ideal simulator
//		• viz:      terminal and PNG histograms, state tables, circuit drawing
//
// ✨ Why choose qweave?
//
//   - Beginner-friendly – minimal API, the textbook recursion spelled out
//   - Deterministic – seeded sampling, stable gate emission order
//   - Pure Go core – the builder binds to a four-method gate interface,
//     so it runs against the gate-list circuit or the simulator directly
//   - Honest numerics – every identity is verified to 1e-9 in the tests
//
// Quick sketch of the 3-qubit transform this module builds:
//
//	q0: ────────●──────────────●───[H]──×─
//	            │              │        │
//	q1: ────────┼────●───[H]──[P]───────┼─
//	            │    │                  │
//	q2: ──[H]──[P]──[P]─────────────────×─
//
//	(each P is a controlled phase of π/2^wire-distance; the renderer
//	prints the exact angle, e.g. [P(pi/4)])
//
// Dive into each package's doc.go for the full walkthrough, and into
// cmd/qweave for the runnable demos.
//
//	go get github.com/katalvlaran/qweave
package qweave
