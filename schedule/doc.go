// Package schedule defines the Schedule output type and Extract, which
// reads a solved flow graph's edge flows back through a
// graphbuild.Blueprint into per-entity, per-timestep series.
package schedule
