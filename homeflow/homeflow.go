package homeflow

import (
	"github.com/ArneCode/electricity-price-optimizer-go/entities"
	"github.com/ArneCode/electricity-price-optimizer-go/graphbuild"
	"github.com/ArneCode/electricity-price-optimizer-go/mcmf"
	"github.com/ArneCode/electricity-price-optimizer-go/schedule"
)

// constantLoadTieBreakCost is the unit cost placed on a constant load's
// Wire(t)->Sink edges, breaking ties toward satisfying controllable
// loads from cheap sources first without materially affecting optimal
// placement. It is intentionally non-zero while
// variable-load edges carry cost 0 — an asymmetry an Open
// Question (ii) flags but does not direct changing; DESIGN.md records
// the decision to keep it as specified.
const constantLoadTieBreakCost = 1

// SmartHomeFlow wraps a graphbuild-built snapshot stack with dynamic
// constant-load bookkeeping: which loads are currently assigned, and a
// cache of the last solve's (cost, flow), invalidated by any mutation.
// Between calls to Cost/Schedule the stack's top overlay may be stale
// with respect to the assignment map; after either call it exactly
// reflects the map.
type SmartHomeFlow struct {
	ctx   *entities.Context
	stack *mcmf.Stack
	bp    *graphbuild.Blueprint

	assigned map[string]entities.AssignedConstantLoad
	cached   *mcmf.Result
}

// New wraps stack (expected at depth 2, a baseline frame beneath a
// mutable overlay, as returned by graphbuild.Build) with no constant
// loads assigned.
func New(ctx *entities.Context, stack *mcmf.Stack, bp *graphbuild.Blueprint) *SmartHomeFlow {
	return &SmartHomeFlow{
		ctx:      ctx,
		stack:    stack,
		bp:       bp,
		assigned: make(map[string]entities.AssignedConstantLoad),
	}
}

// AddConstant records a as currently assigned and invalidates the cache.
// The graph mutation itself is deferred to the next Cost/Schedule call.
func (f *SmartHomeFlow) AddConstant(a entities.AssignedConstantLoad) {
	f.assigned[a.ID()] = a
	f.cached = nil
}

// RemoveConstant removes the assignment for id, if any, invalidating the
// cache, and returns the removed assignment.
func (f *SmartHomeFlow) RemoveConstant(id string) (entities.AssignedConstantLoad, bool) {
	a, ok := f.assigned[id]
	if ok {
		delete(f.assigned, id)
		f.cached = nil
	}
	return a, ok
}

// ensureSolved rebuilds the overlay from the current assignment map and
// resolves, if the cache is empty. Rebuilding means: pop the (possibly
// stale) overlay, push a fresh one atop the untouched baseline, add one
// Wire(t)->Sink edge per active step of every currently-assigned
// constant load, then solve.
func (f *SmartHomeFlow) ensureSolved() {
	if f.cached != nil {
		return
	}

	f.stack.Pop()
	f.stack.Push()
	top := f.stack.Top()

	for _, a := range f.assigned {
		load := a.Load()
		for t := a.StartTime(); t < a.EndTime(); t++ {
			wireNode, ok := f.bp.WireNode(t)
			if !ok {
				panic(errMissingWireNode{step: t})
			}
			top.AddEdge(wireNode, mcmf.Sink, load.Consumption(), constantLoadTieBreakCost)
		}
	}

	res := top.Solve()
	f.cached = &res
}

// Cost returns the total cost of the min-cost flow over the baseline
// graph with the currently-assigned constant loads added, solving if
// the cache is stale.
func (f *SmartHomeFlow) Cost() int64 {
	f.ensureSolved()
	return f.cached.Cost
}

// Schedule returns the full Schedule for the currently-assigned constant
// loads, solving if the cache is stale.
func (f *SmartHomeFlow) Schedule() (*schedule.Schedule, error) {
	f.ensureSolved()
	return schedule.Extract(f.ctx, f.bp, f.stack.Top(), f.assigned)
}

// Flow returns the total flow pushed from Source to Sink by the same
// solve Cost reports on (uncontrolled, variable-load and any assigned
// constant-load consumption together), for callers (optimizer's infeasibility check) that
// need both without soliciting two solves.
func (f *SmartHomeFlow) Flow() int64 {
	f.ensureSolved()
	return f.cached.Flow
}
