// Package graphbuild constructs the time-expanded min-cost-flow network
// described by an entities.Context: Source/Sink, Generator, Network,
// one Wire node per timestep, one Battery node per battery per timestep
// (inclusive upper bound), and one Action node per variable load.
//
// Build returns the constructed mcmf.Stack alongside a Blueprint, a
// side-table mapping entity-timesteps to the edge handles later read
// back by package schedule. Node keying is a small internal
// nodeKey/nodeRegistry, a deliberately flat deterministic-ID scheme
// adapted from string-ID generation to dense integer-node allocation via
// mcmf.Graph.NewNode.
package graphbuild
