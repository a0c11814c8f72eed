// Package anneal implements the outer simulated-annealing search over
// constant-load start times: State holds the current constant-load
// start-time assignments over a homeflow.SmartHomeFlow, RandomMove and
// CompoundMove perturb that state by resampling one or more loads' start
// times from a truncated Gaussian centred on their current placement,
// and Run drives the temperature schedule and Metropolis acceptance test
// that explores the discrete space of start-time assignments.
package anneal
