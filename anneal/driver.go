package anneal

import (
	"math"

	"github.com/ArneCode/electricity-price-optimizer-go/schedule"
)

// Run executes the simulated-annealing driver against state, which must
// already be constructed (every constant load placed at its earliest
// legal start, per anneal.NewState). It returns the final cost and
// schedule once the temperature schedule completes.
//
// The accepted-move loop shape (unconditional acceptance of strict
// improvement, probabilistic acceptance otherwise) follows the same
// pattern as a classic two-opt local search: T starts at
// Options.InitialTemperature, a compound move of Options.CompoundMoveSize
// sub-moves is drawn each iteration with
// sigma = Options.MoveSigmaBase*sqrt(T), applied, accepted if it strictly
// improves cost or passes a Metropolis draw, otherwise undone, and T is
// multiplied by Options.Alpha every iteration until it falls below
// Options.MinTemperature.
func Run(state *State, opts ...Option) (int64, *schedule.Schedule, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	oldCost := state.Cost()

	for t := o.InitialTemperature; t >= o.MinTemperature; t *= o.Alpha {
		sigma := o.MoveSigmaBase * math.Sqrt(t)

		move, err := NewCompoundMove(o.Rand, state, sigma, o.CompoundMoveSize)
		if err != nil {
			// No movable constant load exists anywhere in the instance
			// (every load's window equals its own duration): there is
			// nothing the driver can do, so it terminates early with
			// whatever cost the initial placement already achieved.
			break
		}

		move.Apply(state)
		newCost := state.Cost()
		delta := float64(newCost - oldCost)

		accept := delta < 0
		if !accept {
			accept = o.Rand.Float64() < math.Exp(-delta/t)
		}

		if accept {
			oldCost = newCost
		} else {
			move.Undo(state)
		}
	}

	sched, err := state.Schedule()
	if err != nil {
		return 0, nil, err
	}
	return oldCost, sched, nil
}
