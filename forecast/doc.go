// Package forecast implements Series, a fixed-length per-timestep integer
// sequence used throughout this module for price, generation, and
// uncontrolled-consumption forecasts.
//
// A Series never changes length after construction; the zero value is not
// usable, use New or NewFromSlice. Series supports pointwise reads,
// overwrites, and in-place addition of another Series of the same length.
package forecast
