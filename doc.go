// Package smarthome computes a cost-minimising daily energy schedule for
// a small site given a price forecast, a generation forecast, an
// uncontrolled-consumption forecast, a set of batteries, a set of
// variable (energy-budget) deferrable loads, and a set of constant
// (fixed-duration) deferrable loads.
//
// The work is organized under subpackages:
//
//	timegrid/   — step-index arithmetic for the fixed-length planning horizon
//	forecast/   — fixed-length per-timestep value series
//	entities/   — the read-only input records (Battery, VariableLoad,
//	              ConstantLoad, AssignedConstantLoad) and Context
//	mcmf/       — a min-cost maximum-flow engine plus a snapshot stack for
//	              cheap rollback between search iterations
//	graphbuild/ — builds the time-expanded flow network from a Context
//	homeflow/   — wraps the built network with dynamic constant-load bookkeeping
//	anneal/     — the simulated-annealing search over constant-load start times
//	schedule/   — reads a solved network back into the output schedule
//	optimizer/  — Optimize, the single external entry point
//
// Optimize is a pure function of its Context: given fixed start times for
// every constant load, the min-cost-flow engine computes the exact
// least-cost feasible schedule; the annealing search explores the
// discrete space of constant-load placements around it.
package smarthome
