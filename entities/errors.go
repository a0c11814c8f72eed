// SPDX-License-Identifier: MIT
package entities

import "errors"

// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Constructors wrap a sentinel with %w to attach the
// offending field, never stringifying the sentinel itself.

// ErrBatteryOverfull indicates a Battery's initial_level exceeds its capacity.
var ErrBatteryOverfull = errors.New("entities: battery initial level exceeds capacity")

// ErrInvalidWindow indicates a half-open [start, end) window with start >= end.
var ErrInvalidWindow = errors.New("entities: invalid window")

// ErrConstantLoadTooLong indicates start_from + duration > end_before.
var ErrConstantLoadTooLong = errors.New("entities: constant load does not fit its window")

// ErrStartTimeOutOfWindow indicates an AssignedConstantLoad's start_time
// falls outside [start_from, end_before - duration].
var ErrStartTimeOutOfWindow = errors.New("entities: start time outside allowed window")

// ErrLengthMismatch indicates two or more forecast series supplied to a
// Context have differing lengths (forecast.Series is fixed-length, so
// this should be unreachable in practice, but Context cross-validates
// defensively since it is the construction-time boundary named by
// the optimizer boundary).
var ErrLengthMismatch = errors.New("entities: forecast series length mismatch")

// ErrInvalidFraction indicates a FirstTimestepFraction outside (0, 1].
var ErrInvalidFraction = errors.New("entities: first timestep fraction out of range")
