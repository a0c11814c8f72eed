package mcmf

import "container/heap"

// solver holds the mutable working state of one Solve call: a single
// struct threading the graph, distance/predecessor arrays, and heap
// through every helper instead of passing them individually.
type solver struct {
	g *Graph

	dist []int64 // current shortest-distance estimate, reused across phase 1 and phase 2
	pref []int   // predecessor edge handle on the shortest-path tree, indexed by node
	pi   []int64 // node potentials, accumulated across both phases
	cnt  []int   // phase-1 relaxation counts, for negative-cycle detection
	inq  []bool  // phase-1 in-queue flags

	totalFlow int64
	totalCost int64

	cancelBudget int
}

// Result is the outcome of a Solve call.
type Result struct {
	Flow int64
	Cost int64
}

// Solve runs two-phase successive shortest paths from Source to Sink and
// pushes as much flow as the residual graph allows, at minimum total
// cost. It mutates g in place; callers that need to try alternatives
// should run Solve against a Stack snapshot they can roll back.
//
// Solve never returns an error: an unreachable sink simply yields
// Result{Flow: 0, Cost: 0}, which is a legitimate outcome for a subgraph
// with no feasible path, not a failure. Internal inconsistency (a
// negative cycle that cannot be cancelled within budget) panics, per
// this package's documented fatal-error policy.
func (g *Graph) Solve() Result {
	n := g.NumNodes()
	s := &solver{
		g:            g,
		dist:         make([]int64, n),
		pref:         make([]int, n),
		pi:           make([]int64, n),
		cnt:          make([]int, n),
		inq:          make([]bool, n),
		cancelBudget: len(g.edges)*1024 + 1<<16,
	}

	for s.spfaRound() {
		s.extend()
	}
	for s.dijkstraRound() {
		s.extend()
	}

	return Result{Flow: s.totalFlow, Cost: s.totalCost}
}

// spfaRound runs one SPFA relaxation pass from Source, tolerant of
// negative-cost residual edges, cancelling negative cycles as they are
// detected via the classic "relaxed more than n times" counter. It
// reports whether Sink was reached by a finite-cost path. Grounded on
// original_source/.../flow/MCMF.rs's spfa_with_cycle_cancel.
func (s *solver) spfaRound() bool {
	n := s.g.NumNodes()
	for i := 0; i < n; i++ {
		s.dist[i] = inf
		s.pref[i] = -1
		s.inq[i] = false
		s.cnt[i] = 0
	}
	s.dist[Source] = 0

	queue := []int{Source}
	s.inq[Source] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		s.inq[u] = false

		for _, h := range s.g.adj[u] {
			e := s.g.edges[h]
			if e.cap <= 0 {
				continue
			}
			nd := s.dist[u] + e.cost
			if nd < s.dist[e.to] {
				s.dist[e.to] = nd
				s.pref[e.to] = h
				s.cnt[e.to]++
				if s.cnt[e.to] >= n {
					s.cancelNegativeCycle(e.to)
					// Cancellation invalidates pref chains built so
					// far; restart this round from scratch.
					return s.spfaRound()
				}
				if !s.inq[e.to] {
					s.inq[e.to] = true
					queue = append(queue, e.to)
				}
			}
		}
	}

	return s.dist[Sink] < inf
}

// cancelNegativeCycle walks the predecessor chain from start backwards n
// times to guarantee landing inside the cycle (it may have detected the
// cycle from any node on it, not necessarily its first node), then walks
// the cycle a second time to find its bottleneck residual capacity and
// total cost, pushes the bottleneck flow around the cycle, and records
// its cost contribution. Grounded on
// original_source/.../flow/MCMF.rs's cancel_negative_cycle.
func (s *solver) cancelNegativeCycle(start int) {
	s.cancelBudget--
	if s.cancelBudget < 0 {
		panic(errCancellationBudgetExceeded{})
	}

	n := s.g.NumNodes()
	v := start
	for i := 0; i < n; i++ {
		v = s.predecessorNode(v)
	}

	cycleStart := v
	bottleneck := inf
	cycleCost := int64(0)
	for cur := cycleStart; ; {
		h := s.pref[cur]
		e := s.g.edges[h]
		if e.cap < bottleneck {
			bottleneck = e.cap
		}
		cycleCost += e.cost
		cur = s.predecessorNode(cur)
		if cur == cycleStart {
			break
		}
	}

	for cur := cycleStart; ; {
		h := s.pref[cur]
		s.g.edges[h].cap -= bottleneck
		s.g.edges[h^1].cap += bottleneck
		cur = s.predecessorNode(cur)
		if cur == cycleStart {
			break
		}
	}

	s.totalCost += bottleneck * cycleCost
}

// predecessorNode returns the node the predecessor edge into v
// originates from.
func (s *solver) predecessorNode(v int) int {
	return s.g.edges[s.pref[v]^1].to
}

// dijkstraRound runs one Dijkstra pass over reduced costs using the
// potentials accumulated in s.pi, and reports whether Sink is reachable.
// Reduced cost of edge (u,v) is cost + pi[u] - pi[v], which is
// non-negative for every residual edge once valid potentials exist (the
// triangle inequality pi[v] <= pi[u] + cost(u,v) holds for any edge with
// residual capacity once pi holds true shortest-path distances).
// Uses container/heap with the lazy-decrease-key idiom of
// dijkstra.go's nodePQ, adapted from string vertex IDs to dense integer
// nodes and reduced costs.
func (s *solver) dijkstraRound() bool {
	n := s.g.NumNodes()
	for i := 0; i < n; i++ {
		s.dist[i] = inf
		s.pref[i] = -1
	}
	s.dist[Source] = 0

	visited := make([]bool, n)
	pq := &nodePQ{{node: Source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(nodeItem)
		u, d := top.node, top.dist
		if visited[u] {
			continue
		}
		if d != s.dist[u] {
			continue
		}
		visited[u] = true

		for _, h := range s.g.adj[u] {
			e := s.g.edges[h]
			if e.cap <= 0 {
				continue
			}
			if s.pi[u] >= inf || s.pi[e.to] >= inf {
				continue
			}
			reduced := e.cost + s.pi[u] - s.pi[e.to]
			nd := s.dist[u] + reduced
			if nd < s.dist[e.to] {
				s.dist[e.to] = nd
				s.pref[e.to] = h
				heap.Push(pq, nodeItem{node: e.to, dist: nd})
			}
		}
	}

	reachable := s.dist[Sink] < inf

	// Rewrite dist from the reduced-cost distance Dijkstra just computed
	// back into a true-cost distance before extend() folds it into pi,
	// matching original_source/.../flow/MCMF.rs's dijkstra(). pi[Source]
	// is always 0 (dist[Source] is 0 on every round, including this
	// one), so this is dist[i] += pi[i].
	for i := 0; i < n; i++ {
		if s.dist[i] < inf {
			s.dist[i] -= s.pi[Source] - s.pi[i]
		}
	}

	return reachable
}

// extend walks the predecessor chain from Sink back to Source to find
// the path's bottleneck residual capacity, pushes that much flow along
// it, and folds s.dist into the running potentials. It is shared,
// unmodified, between phase 1 and phase 2: the Rust original folds
// potentials the same way after every augmenting path regardless of
// which phase found it. Because Solve runs phase 1 until Sink is
// unreachable, pi ends up holding the sum of every phase-1 round's
// distances. Grounded on
// original_source/.../flow/MCMF.rs's extend.
func (s *solver) extend() {
	bottleneck := inf
	for v := Sink; v != Source; {
		h := s.pref[v]
		if s.g.edges[h].cap < bottleneck {
			bottleneck = s.g.edges[h].cap
		}
		v = s.predecessorNode(v)
	}

	for v := Sink; v != Source; {
		h := s.pref[v]
		s.g.edges[h].cap -= bottleneck
		s.g.edges[h^1].cap += bottleneck
		s.totalCost += bottleneck * s.g.edges[h].cost
		v = s.predecessorNode(v)
	}

	s.totalFlow += bottleneck

	n := s.g.NumNodes()
	for i := 0; i < n; i++ {
		if s.dist[i] < inf {
			s.pi[i] += s.dist[i]
		}
	}
}
