package entities

import (
	"fmt"

	"github.com/ArneCode/electricity-price-optimizer-go/timegrid"
)

// ConstantLoad is an immutable record of a fixed-power, fixed-duration
// task that may be shifted in time within [startFrom, endBefore).
type ConstantLoad struct {
	id          string
	startFrom   timegrid.Step
	endBefore   timegrid.Step
	duration    int
	consumption int64
}

// NewConstantLoad validates and constructs a ConstantLoad. The load must
// fit its window: startFrom + duration <= endBefore.
func NewConstantLoad(id string, startFrom, endBefore timegrid.Step, duration int, consumption int64) (ConstantLoad, error) {
	if startFrom+duration > endBefore {
		return ConstantLoad{}, fmt.Errorf("%w: constant load %q: start_from=%d duration=%d end_before=%d",
			ErrConstantLoadTooLong, id, startFrom, duration, endBefore)
	}
	return ConstantLoad{
		id:          id,
		startFrom:   startFrom,
		endBefore:   endBefore,
		duration:    duration,
		consumption: consumption,
	}, nil
}

func (c ConstantLoad) ID() string               { return c.id }
func (c ConstantLoad) StartFrom() timegrid.Step { return c.startFrom }
func (c ConstantLoad) EndBefore() timegrid.Step { return c.endBefore }
func (c ConstantLoad) Duration() int            { return c.duration }
func (c ConstantLoad) Consumption() int64       { return c.consumption }

// LatestStart returns the latest legal start_time for this load:
// end_before - duration.
func (c ConstantLoad) LatestStart() timegrid.Step {
	return c.endBefore - c.duration
}

func (c ConstantLoad) String() string {
	return fmt.Sprintf("ConstantLoad(%s, [%d,%d), dur=%d, consumption=%d)",
		c.id, c.startFrom, c.endBefore, c.duration, c.consumption)
}

// AssignedConstantLoad pairs a ConstantLoad with a chosen start_time.
// Identity is (load id, start_time); two assignments with the same id
// and start_time are considered equal regardless of how they were
// constructed.
type AssignedConstantLoad struct {
	load      ConstantLoad
	startTime timegrid.Step
}

// NewAssignedConstantLoad validates startTime against load's allowed
// window and constructs an AssignedConstantLoad.
func NewAssignedConstantLoad(load ConstantLoad, startTime timegrid.Step) (AssignedConstantLoad, error) {
	if startTime < load.startFrom || startTime > load.LatestStart() {
		return AssignedConstantLoad{}, fmt.Errorf("%w: load %q: start_time=%d allowed=[%d,%d]",
			ErrStartTimeOutOfWindow, load.id, startTime, load.startFrom, load.LatestStart())
	}
	return AssignedConstantLoad{load: load, startTime: startTime}, nil
}

func (a AssignedConstantLoad) ID() string                  { return a.load.id }
func (a AssignedConstantLoad) Load() ConstantLoad           { return a.load }
func (a AssignedConstantLoad) StartTime() timegrid.Step     { return a.startTime }
func (a AssignedConstantLoad) EndTime() timegrid.Step       { return a.startTime + timegrid.Step(a.load.duration) }

// WithStartTime returns a copy of a reassigned to a new start time,
// revalidated against the same load's window.
func (a AssignedConstantLoad) WithStartTime(startTime timegrid.Step) (AssignedConstantLoad, error) {
	return NewAssignedConstantLoad(a.load, startTime)
}

func (a AssignedConstantLoad) String() string {
	return fmt.Sprintf("AssignedConstantLoad(%s @ %d)", a.load.id, a.startTime)
}
