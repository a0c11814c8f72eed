// SPDX-License-Identifier: MIT
package mcmf

import "errors"

// ErrUnreachableSink is never returned by Solve — an unreachable sink is
// not an error, Solve reports it as (cost 0, flow 0). It exists so
// internal helpers can share the same sentinel vocabulary as the rest of
// the module's error handling.
var ErrUnreachableSink = errors.New("mcmf: sink unreachable")

// Fatal conditions below indicate a programming error or internal
// corruption rather than an ordinary runtime failure. They are reported
// as panics, not error returns: a caller that triggers one has violated
// the engine's invariants (an out-of-range node id, an edge handle that
// was never issued, or a pop that would empty the snapshot stack), and
// no recovery at this call site is meaningful. optimizer.Optimize
// recovers these panics at the public boundary and reports them as a
// Kind-internal failure.

// errNodeOutOfRange is the panic value for AddEdge misuse.
type errNodeOutOfRange struct {
	node, numNodes int
}

func (e errNodeOutOfRange) Error() string {
	return "mcmf: node out of range"
}

// errBadHandle is the panic value for Flow() called with an unknown handle.
type errBadHandle struct {
	handle, numEdges int
}

func (e errBadHandle) Error() string {
	return "mcmf: edge handle out of range"
}

// errStackUnderflow is the panic value for Stack.Pop below depth 1.
type errStackUnderflow struct{}

func (e errStackUnderflow) Error() string {
	return "mcmf: cannot pop the last snapshot from the stack"
}

// errCancellationBudgetExceeded is the panic value when negative-cycle
// cancellation during Phase 1 exceeds its conservative iteration cap —
// exceeding the cap indicates a bug (e.g. a cancellation that never
// reduces residual capacity), not a normal pathological input.
type errCancellationBudgetExceeded struct{}

func (e errCancellationBudgetExceeded) Error() string {
	return "mcmf: negative-cycle cancellation budget exceeded"
}
