// Package mcmf_test contains unit tests for the min-cost maximum-flow
// engine: basic augmenting-path correctness, negative-cost residual
// edges, negative-cycle cancellation, and the snapshot stack.
package mcmf_test

import (
	"testing"

	"github.com/ArneCode/electricity-price-optimizer-go/mcmf"
)

func TestSolve_SingleEdge(t *testing.T) {
	g := mcmf.New()
	g.AddEdge(mcmf.Source, mcmf.Sink, 10, 3)

	res := g.Solve()
	if res.Flow != 10 {
		t.Errorf("Flow = %d; want 10", res.Flow)
	}
	if res.Cost != 30 {
		t.Errorf("Cost = %d; want 30", res.Cost)
	}
}

func TestSolve_PicksCheaperParallelPath(t *testing.T) {
	// Source -> Sink directly at cost 5, and via a middle node at cost 1+1=2.
	// Both paths have capacity 5; total max flow is 10, minimum cost
	// should prefer the cheap path first.
	g := mcmf.New()
	mid := g.NewNode()
	g.AddEdge(mcmf.Source, mcmf.Sink, 5, 5)
	g.AddEdge(mcmf.Source, mid, 5, 1)
	g.AddEdge(mid, mcmf.Sink, 5, 1)

	res := g.Solve()
	if res.Flow != 10 {
		t.Errorf("Flow = %d; want 10", res.Flow)
	}
	want := int64(5*2 + 5*5)
	if res.Cost != want {
		t.Errorf("Cost = %d; want %d", res.Cost, want)
	}
}

func TestSolve_UnreachableSinkYieldsZero(t *testing.T) {
	g := mcmf.New()
	g.NewNode() // an isolated extra node, no path Source->Sink at all

	res := g.Solve()
	if res.Flow != 0 || res.Cost != 0 {
		t.Errorf("Result = %+v; want zero flow and cost", res)
	}
}

func TestSolve_NegativeCostResidualEdge(t *testing.T) {
	// A direct Source->Sink edge plus a detour through a node with a
	// negative-cost edge back toward Source's side, exercising the SPFA
	// phase's tolerance for negative edge costs (but no negative cycle:
	// the detour is not itself a cycle back to Source).
	g := mcmf.New()
	a := g.NewNode()
	b := g.NewNode()
	g.AddEdge(mcmf.Source, a, 5, 10)
	g.AddEdge(a, b, 5, -4)
	g.AddEdge(b, mcmf.Sink, 5, 1)
	g.AddEdge(mcmf.Source, mcmf.Sink, 5, 20)

	res := g.Solve()
	if res.Flow != 10 {
		t.Errorf("Flow = %d; want 10", res.Flow)
	}
	// Cheapest path Source->a->b->Sink costs 10-4+1=7, times 5 units,
	// plus the direct path at 20 for the remaining 5 units.
	want := int64(5*7 + 5*20)
	if res.Cost != want {
		t.Errorf("Cost = %d; want %d", res.Cost, want)
	}
}

func TestSolve_NegativeCycleCancellation(t *testing.T) {
	// a<->b forms an actual negative cycle: a->b costs 1, b->a costs -3,
	// total -2 around the loop, both legs capacity 5. Seeding Source->a
	// with ample capacity and cost 0 makes a reachable so SPFA's
	// relaxation keeps driving dist[a]/dist[b] down, tripping the
	// "relaxed >= n times" counter and forcing cancelNegativeCycle to
	// push the 5-unit bottleneck around the loop before any augmenting
	// path search proceeds. Neither a nor b connects to Sink, so the
	// cycle contributes only a cost adjustment, never flow: the only
	// flow-carrying path is the unrelated direct Source->Sink edge.
	g := mcmf.New()
	a := g.NewNode()
	b := g.NewNode()
	g.AddEdge(mcmf.Source, a, 1000, 0)
	g.AddEdge(a, b, 5, 1)
	g.AddEdge(b, a, 5, -3)
	g.AddEdge(mcmf.Source, mcmf.Sink, 5, 10)

	res := g.Solve()
	if res.Flow != 5 {
		t.Errorf("Flow = %d; want 5 (only the direct Source->Sink path carries flow)", res.Flow)
	}
	// 5 units at cost 10 along the direct path, plus the cycle
	// cancellation's bottleneck(5) * cycleCost(-2) = -10 contribution.
	want := int64(5*10 - 10)
	if res.Cost != want {
		t.Errorf("Cost = %d; want %d", res.Cost, want)
	}
}

func TestSolve_ZeroCapacityEdgeCarriesNoFlow(t *testing.T) {
	g := mcmf.New()
	g.AddEdge(mcmf.Source, mcmf.Sink, 0, 1)

	res := g.Solve()
	if res.Flow != 0 {
		t.Errorf("Flow = %d; want 0", res.Flow)
	}
}

func TestGraph_FlowReflectsUsedCapacity(t *testing.T) {
	g := mcmf.New()
	h := g.AddEdge(mcmf.Source, mcmf.Sink, 7, 2)

	g.Solve()

	if got := g.Flow(h); got != 7 {
		t.Errorf("Flow(h) = %d; want 7", got)
	}
	if got := g.Cap(h); got != 7 {
		t.Errorf("Cap(h) = %d; want 7", got)
	}
}

func TestGraph_AddEdgeOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-range node id")
		}
	}()
	g := mcmf.New()
	g.AddEdge(mcmf.Source, 99, 1, 1)
}

func TestGraph_FlowBadHandlePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown edge handle")
		}
	}()
	g := mcmf.New()
	g.Flow(42)
}

func TestStack_PushPopIsolatesMutations(t *testing.T) {
	g := mcmf.New()
	h := g.AddEdge(mcmf.Source, mcmf.Sink, 10, 1)
	st := mcmf.NewStack(g)

	st.Push()
	st.Top().Solve()
	if got := st.Top().Flow(h); got != 10 {
		t.Errorf("Flow after solve on pushed frame = %d; want 10", got)
	}

	st.Pop()
	if got := st.Top().Flow(h); got != 0 {
		t.Errorf("Flow on original frame after Pop = %d; want 0 (unaffected by pushed frame's solve)", got)
	}
}

func TestStack_PopLastFramePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when popping the last remaining frame")
		}
	}()
	st := mcmf.NewStack(mcmf.New())
	st.Pop()
}

func TestStack_DepthTracksPushPop(t *testing.T) {
	st := mcmf.NewStack(mcmf.New())
	if st.Depth() != 1 {
		t.Fatalf("Depth() = %d; want 1", st.Depth())
	}
	st.Push()
	st.Push()
	if st.Depth() != 3 {
		t.Errorf("Depth() = %d; want 3", st.Depth())
	}
	st.Pop()
	if st.Depth() != 2 {
		t.Errorf("Depth() = %d; want 2", st.Depth())
	}
}
