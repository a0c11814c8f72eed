package entities

import (
	"fmt"

	"github.com/ArneCode/electricity-price-optimizer-go/timegrid"
)

// VariableLoad is an immutable record of a deferrable load with a total
// energy budget that must be consumed somewhere across its window,
// subject to a per-step cap.
type VariableLoad struct {
	id               string
	window           timegrid.Window
	totalConsumption int64
	maxConsumption   int64
}

// NewVariableLoad validates and constructs a VariableLoad. start must be
// strictly less than end.
func NewVariableLoad(id string, start, end timegrid.Step, totalConsumption, maxConsumption int64) (VariableLoad, error) {
	if start >= end {
		return VariableLoad{}, fmt.Errorf("%w: variable load %q: start=%d end=%d", ErrInvalidWindow, id, start, end)
	}
	return VariableLoad{
		id:               id,
		window:           timegrid.Window{Start: start, End: end},
		totalConsumption: totalConsumption,
		maxConsumption:   maxConsumption,
	}, nil
}

func (v VariableLoad) ID() string                 { return v.id }
func (v VariableLoad) Window() timegrid.Window     { return v.window }
func (v VariableLoad) Start() timegrid.Step        { return v.window.Start }
func (v VariableLoad) End() timegrid.Step          { return v.window.End }
func (v VariableLoad) TotalConsumption() int64     { return v.totalConsumption }
func (v VariableLoad) MaxConsumption() int64       { return v.maxConsumption }

func (v VariableLoad) String() string {
	return fmt.Sprintf("VariableLoad(%s, [%d,%d), total=%d, max/step=%d)",
		v.id, v.window.Start, v.window.End, v.totalConsumption, v.maxConsumption)
}
