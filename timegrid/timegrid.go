package timegrid

import "errors"

// MinutesPerTimestep is the build-time width of one timestep, in minutes.
// StepsPerDay is derived from it; the reference implementation uses 1,
// giving 1440 steps per day.
const MinutesPerTimestep = 1

// StepsPerDay is the number of timesteps in one planning horizon.
const StepsPerDay = (24 * 60) / MinutesPerTimestep

// Step is a non-negative step index. Most Step values are constrained to
// [0, StepsPerDay); battery charge-level series additionally use the
// inclusive upper bound StepsPerDay (see Schedule.Batteries in package
// schedule).
type Step = int

// ErrStepOutOfRange indicates a Step value fell outside [0, StepsPerDay).
var ErrStepOutOfRange = errors.New("timegrid: step out of range")

// InRange reports whether s lies in [0, StepsPerDay).
func InRange(s Step) bool {
	return s >= 0 && s < StepsPerDay
}

// InRangeInclusive reports whether s lies in [0, StepsPerDay], the
// inclusive range used for battery charge-level series.
func InRangeInclusive(s Step) bool {
	return s >= 0 && s <= StepsPerDay
}

// Validate returns ErrStepOutOfRange if s does not lie in [0, StepsPerDay).
func Validate(s Step) error {
	if !InRange(s) {
		return ErrStepOutOfRange
	}
	return nil
}

// Window is a half-open step interval [Start, End).
type Window struct {
	Start Step
	End   Step
}

// Len returns the number of steps covered by the window (End - Start).
// It is zero or negative if the window is ill-formed (Start >= End is
// the caller's responsibility to reject at construction time).
func (w Window) Len() int {
	return w.End - w.Start
}

// Contains reports whether step t lies in [Start, End).
func (w Window) Contains(t Step) bool {
	return t >= w.Start && t < w.End
}
