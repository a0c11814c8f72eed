// Package timegrid defines the discrete planning horizon shared by every
// other package: a day divided into StepsPerDay equal timesteps, and the
// small set of arithmetic operations performed on step indices.
//
// All temporal bounds elsewhere in this module are expressed as step
// indices in [0, StepsPerDay) (or, for battery charge-level series,
// [0, StepsPerDay] inclusive); intervals are half-open [start, end)
// unless documented otherwise.
package timegrid
