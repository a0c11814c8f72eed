// Package mcmf_test provides runnable examples demonstrating the
// min-cost maximum-flow engine.
package mcmf_test

import (
	"fmt"

	"github.com/ArneCode/electricity-price-optimizer-go/mcmf"
)

// ExampleGraph_Solve demonstrates building a small graph with two
// parallel Source->Sink paths of different cost and solving for minimum
// cost maximum flow.
func ExampleGraph_Solve() {
	g := mcmf.New()
	mid := g.NewNode()

	// Cheap path through mid: capacity 5 at unit cost 1 per edge.
	g.AddEdge(mcmf.Source, mid, 5, 1)
	g.AddEdge(mid, mcmf.Sink, 5, 1)
	// Expensive direct path: capacity 5 at cost 5.
	g.AddEdge(mcmf.Source, mcmf.Sink, 5, 5)

	res := g.Solve()
	fmt.Printf("flow=%d cost=%d\n", res.Flow, res.Cost)
	// Output: flow=10 cost=35
}

// ExampleStack demonstrates pushing a snapshot, solving against it, and
// popping back to the unsolved baseline.
func ExampleStack() {
	g := mcmf.New()
	handle := g.AddEdge(mcmf.Source, mcmf.Sink, 4, 2)
	st := mcmf.NewStack(g)

	st.Push()
	st.Top().Solve()
	fmt.Println("pushed flow:", st.Top().Flow(handle))

	st.Pop()
	fmt.Println("baseline flow:", st.Top().Flow(handle))
	// Output:
	// pushed flow: 4
	// baseline flow: 0
}
