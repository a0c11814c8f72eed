package anneal

import (
	"math"
	"math/rand"

	"github.com/ArneCode/electricity-price-optimizer-go/entities"
	"github.com/ArneCode/electricity-price-optimizer-go/timegrid"
)

// maxSampleAttempts bounds the truncated-Gaussian rejection loop and the
// load-reselection loop, guarding against a pathological instance where
// no movable constant load exists (every load's window is exactly its
// duration, lo == hi everywhere).
const maxSampleAttempts = 10000

// RandomMove perturbs a single constant load's start time: remove its
// current assignment, reassign it to a new start time sampled from a
// truncated Gaussian centred at the old one, re-add. Grounded on
// original_source/.../simulated_annealing/change/random_move.rs's
// RandomMoveChange (reimplemented, not transliterated).
type RandomMove struct {
	loadID   string
	load     entities.ConstantLoad
	oldStart timegrid.Step
	newStart timegrid.Step
}

// NewRandomMove samples a move against state's current assignments,
// without mutating state. It picks a constant load uniformly at random,
// then samples a new start time from Normal(old, sigma) rounded to an
// integer and rejection-sampled into [lo, hi], re-drawing against a
// different load if the chosen one has no room to move (lo == hi).
func NewRandomMove(rng *rand.Rand, state *State, sigma float64) (RandomMove, error) {
	ids := state.IDs()
	if len(ids) == 0 {
		return RandomMove{}, ErrNoConstantLoads
	}

	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		id := ids[rng.Intn(len(ids))]
		a, ok := state.Get(id)
		if !ok {
			continue
		}
		load := a.Load()
		lo, hi := load.StartFrom(), load.LatestStart()
		if lo == hi {
			continue // no room to move this load; try another
		}

		newStart, ok := sampleCenteredInt(lo, hi, a.StartTime(), sigma, rng)
		if !ok {
			continue
		}

		return RandomMove{loadID: id, load: load, oldStart: a.StartTime(), newStart: newStart}, nil
	}

	return RandomMove{}, ErrNoMovablePlacement
}

// sampleCenteredInt draws a Normal(center, sigma) sample, rounds to the
// nearest integer, and accepts it only if it lies in [lo, hi] and
// differs from center. It gives up after maxSampleAttempts draws.
// Grounded on original_source's sample_centered_int (reimplemented).
func sampleCenteredInt(lo, hi, center timegrid.Step, sigma float64, rng *rand.Rand) (timegrid.Step, bool) {
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		draw := rng.NormFloat64()*sigma + float64(center)
		candidate := timegrid.Step(math.Round(draw))
		if candidate == center {
			continue
		}
		if candidate < lo || candidate > hi {
			continue
		}
		return candidate, true
	}
	return 0, false
}

// Apply mutates state: removes the old assignment and re-adds it at the
// sampled new start time.
func (m RandomMove) Apply(state *State) {
	state.Remove(m.loadID)
	a, err := entities.NewAssignedConstantLoad(m.load, m.newStart)
	if err != nil {
		// newStart was validated against this exact load's window at
		// sample time; a failure here means the load's window changed
		// underneath us, which never happens within one optimisation
		// call (entities.ConstantLoad is immutable).
		panic(err)
	}
	state.Add(a)
}

// Undo reverses Apply: removes the new assignment and restores the old one.
func (m RandomMove) Undo(state *State) {
	state.Remove(m.loadID)
	a, err := entities.NewAssignedConstantLoad(m.load, m.oldStart)
	if err != nil {
		panic(err)
	}
	state.Add(a)
}

// CompoundMove applies k independent RandomMoves together, undoing them
// in reverse order. Used with k=2 by the reference driver.
type CompoundMove struct {
	moves []RandomMove
}

// NewCompoundMove draws k independent RandomMoves against state's
// current (unmutated) assignments, each from its own deterministic
// substream derived from rng, so the choice of sub-move i never
// perturbs the RNG stream sub-move i+1 draws from.
func NewCompoundMove(rng *rand.Rand, state *State, sigma float64, k int) (CompoundMove, error) {
	moves := make([]RandomMove, 0, k)
	for i := 0; i < k; i++ {
		sub := deriveRNG(rng, uint64(i))
		m, err := NewRandomMove(sub, state, sigma)
		if err != nil {
			return CompoundMove{}, err
		}
		moves = append(moves, m)
	}
	return CompoundMove{moves: moves}, nil
}

// Apply applies every sub-move in order.
func (c CompoundMove) Apply(state *State) {
	for _, m := range c.moves {
		m.Apply(state)
	}
}

// Undo undoes every sub-move in reverse order.
func (c CompoundMove) Undo(state *State) {
	for i := len(c.moves) - 1; i >= 0; i-- {
		c.moves[i].Undo(state)
	}
}
