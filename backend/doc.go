// SPDX-License-Identifier: MIT
// Package backend runs recorded circuits for shots and returns counted
// outcomes, behind an interface that marks the seam where real hardware
// or remote services would plug in.
//
// Scope:
//   - Backend: name, capacity, simulator flag, and a synchronous
//     context-aware Run. No job queue; the only backend that ships is
//     local, so submit/poll surfaces would be dead API.
//   - Sim: the ideal statevector implementation. Deterministic under a
//     fixed seed, capacity-capped, quiet by default with optional
//     structured logging.
//   - Registry: named lookup with a package default that has the
//     simulator pre-registered.
//
// Run honors context cancellation between sampling batches, so a
// canceled run returns promptly even at high shot counts. Failures wrap
// their cause; match sentinels and context errors with errors.Is.
package backend
