package mcmf_test

import (
	"math/rand"
	"testing"

	"github.com/ArneCode/electricity-price-optimizer-go/mcmf"
)

// buildRandomLayeredGraph constructs a Source -> layer -> Sink graph with
// layerWidth intermediate nodes, each connected to Source and Sink with a
// random capacity and cost. This approximates the fan-out shape of the
// time-expanded networks this package solves in production use.
func buildRandomLayeredGraph(layerWidth int, seed int64) *mcmf.Graph {
	r := rand.New(rand.NewSource(seed))
	g := mcmf.New()
	for i := 0; i < layerWidth; i++ {
		mid := g.NewNode()
		cap := int64(r.Intn(50) + 1)
		cost := int64(r.Intn(20) + 1)
		g.AddEdge(mcmf.Source, mid, cap, cost)
		g.AddEdge(mid, mcmf.Sink, cap, int64(r.Intn(20)+1)+cost)
	}
	return g
}

// BenchmarkSolve measures Solve's wall time across graphs of increasing
// fan-out width. Each iteration rebuilds the graph, since Solve mutates
// the residual capacities it is given.
func BenchmarkSolve(b *testing.B) {
	cases := []struct {
		name  string
		width int
	}{
		{"Small", 64},
		{"Medium", 512},
		{"Large", 4096},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			b.StopTimer()
			for i := 0; i < b.N; i++ {
				g := buildRandomLayeredGraph(tc.width, int64(i)+1)
				b.StartTimer()
				g.Solve()
				b.StopTimer()
			}
		})
	}
}

// BenchmarkStackPushPop measures snapshot overhead on a mid-sized graph,
// the operation the annealing driver performs once per candidate move.
func BenchmarkStackPushPop(b *testing.B) {
	g := buildRandomLayeredGraph(2048, 7)
	st := mcmf.NewStack(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Push()
		st.Pop()
	}
}
