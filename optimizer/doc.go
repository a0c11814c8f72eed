// Package optimizer exposes the single external entry point of this
// module: Optimize wires entities, graphbuild, homeflow, anneal, and
// schedule together into a two-level optimiser — a min-cost-flow inner
// solver under a fixed constant-load placement, explored by a
// simulated-annealing outer search — and reports construction-time,
// infeasibility, and internal-consistency failures as a single typed
// Fail error.
package optimizer
