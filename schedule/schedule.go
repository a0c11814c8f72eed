package schedule

import (
	"github.com/ArneCode/electricity-price-optimizer-go/entities"
	"github.com/ArneCode/electricity-price-optimizer-go/forecast"
	"github.com/ArneCode/electricity-price-optimizer-go/graphbuild"
	"github.com/ArneCode/electricity-price-optimizer-go/mcmf"
	"github.com/ArneCode/electricity-price-optimizer-go/timegrid"
)

// Schedule is the optimisation output: per-entity assignments for every
// battery charge level, every variable load's per-step consumption,
// every constant load's chosen start time, and the realised network
// import series.
type Schedule struct {
	// ConstantLoads is keyed by constant-load id.
	ConstantLoads map[string]entities.AssignedConstantLoad

	// VariableLoads maps variable-load id to its per-step consumption,
	// aligned with the load's own window (index 0 corresponds to the
	// load's Start step, not step 0 of the day).
	VariableLoads map[string][]int64

	// Batteries maps battery id to its charge-level series, one entry
	// per step in [0, StepsPerDay] inclusive (length StepsPerDay+1).
	Batteries map[string][]int64

	// NetworkImport is the realised grid-import series, one value per
	// step of the day.
	NetworkImport forecast.Series
}

// missingBlueprintEntry signals that Extract was asked to read a handle
// the Blueprint never recorded. This indicates graphbuild and schedule
// have drifted out of sync with each other, an internal-wiring defect
// rather than a normal runtime condition, so it is panicked rather than
// returned, matching mcmf's own panic-on-bad-handle policy of treating
// edge-handle lookups for missing keys as fatal.
type missingBlueprintEntry struct {
	kind string
	id   string
	step timegrid.Step
}

func (e missingBlueprintEntry) Error() string {
	return "schedule: missing blueprint entry for " + e.kind + " " + e.id
}

// Extract reads g's post-solve edge flows back through bp into a
// Schedule. assigned is the annealing state's current constant-load
// assignments, copied verbatim into the result ("Constant
// loads are already present in the annealing state; copy them into the
// schedule verbatim").
func Extract(ctx *entities.Context, bp *graphbuild.Blueprint, g *mcmf.Graph, assigned map[string]entities.AssignedConstantLoad) (*Schedule, error) {
	sched := &Schedule{
		ConstantLoads: make(map[string]entities.AssignedConstantLoad, len(assigned)),
		VariableLoads: make(map[string][]int64),
		Batteries:     make(map[string][]int64),
		NetworkImport: forecast.New(),
	}

	for id, a := range assigned {
		sched.ConstantLoads[id] = a
	}

	for _, bat := range ctx.Batteries() {
		series := make([]int64, timegrid.StepsPerDay+1)
		initial, ok := bp.BatteryInitialLevel(bat.ID())
		if !ok {
			panic(missingBlueprintEntry{kind: "battery initial level", id: bat.ID()})
		}
		series[0] = initial

		for t := 1; t <= timegrid.StepsPerDay; t++ {
			h, ok := bp.BatteryHandle(bat.ID(), t)
			if !ok {
				panic(missingBlueprintEntry{kind: "battery", id: bat.ID(), step: t})
			}
			series[t] = g.Flow(h)
		}
		sched.Batteries[bat.ID()] = series
	}

	for _, vl := range ctx.VariableLoads() {
		window := vl.Window()
		series := make([]int64, window.Len())
		for t := window.Start; t < window.End; t++ {
			h, ok := bp.VariableLoadHandle(vl.ID(), t)
			if !ok {
				panic(missingBlueprintEntry{kind: "variable load", id: vl.ID(), step: t})
			}
			series[t-window.Start] = g.Flow(h)
		}
		sched.VariableLoads[vl.ID()] = series
	}

	for t := 0; t < timegrid.StepsPerDay; t++ {
		h, ok := bp.NetworkHandle(t)
		if !ok {
			panic(missingBlueprintEntry{kind: "network", step: t})
		}
		if err := sched.NetworkImport.Set(t, g.Flow(h)); err != nil {
			return nil, err
		}
	}

	return sched, nil
}
