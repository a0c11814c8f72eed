// Package mcmf implements a minimum-cost maximum-flow engine on a
// directed multigraph addressed by dense integer node and edge indices,
// plus a snapshot stack that lets callers cheaply roll back a sequence of
// mutations between solves.
//
// # Graph representation
//
// Nodes are dense non-negative integers; node 0 is the reserved source and
// node 1 the reserved sink (matching the convention of
// github.com/katalvlaran/lvlath/flow, generalized here to support
// negative-cost residual edges, which plain max-flow does not need).
// Edges are stored as an arena of (forward, reverse) pairs at adjacent
// indices (2k, 2k+1); XOR-by-1 recovers the paired edge. AddEdge returns
// the forward edge's index as a stable handle.
//
// # Algorithm
//
// Solve runs two-phase successive shortest paths:
//
//   - Phase 1 (SPFA): a Bellman-Ford-style relaxation tolerant of
//     negative-cost residual edges (introduced by battery-persistence
//     reverse edges), with negative-cycle cancellation bounded by a
//     conservative iteration cap. Solve repeats SPFA rounds, augmenting
//     along each shortest path found, until Sink is no longer reachable.
//   - Phase 2 (Dijkstra with node potentials): a binary-heap Dijkstra
//     over reduced costs. It runs after phase 1 on the same residual
//     graph, in which Sink is already unreachable, so it finds no
//     augmenting path: every augmentation of a Solve call happens in
//     phase 1.
//
// The heap itself reuses the lazy-decrease-key idiom of
// github.com/katalvlaran/lvlath/dijkstra (push a fresh entry on every
// improvement, skip stale pops against a finalized set) rather than a
// true decrease-key heap, adapted from string vertex IDs to dense integer
// node indices and augmented with potentials for reduced costs.
//
// # Snapshot stack
//
// Stack wraps a Graph and supports Push/Pop of a full, deep-copied
// overlay — the same technique as
// github.com/katalvlaran/lvlath/core's Clone (copy the backing arrays
// under lock), applied here to the flow arena instead of a string-keyed
// adjacency map so that edge handles stay valid across Push/Pop.
package mcmf
