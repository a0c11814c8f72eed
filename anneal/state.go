package anneal

import (
	"github.com/ArneCode/electricity-price-optimizer-go/entities"
	"github.com/ArneCode/electricity-price-optimizer-go/homeflow"
	"github.com/ArneCode/electricity-price-optimizer-go/schedule"
)

// State holds the current constant-load start-time assignments and the
// flow wrapper they drive. Grounded on
// original_source/.../simulated_annealing/state.rs's State: a map for
// O(1) lookup plus a parallel id list for O(1) uniform random sampling.
type State struct {
	assigned map[string]entities.AssignedConstantLoad
	ids      []string
	flow     *homeflow.SmartHomeFlow
}

// NewState constructs a State over flow, placing every constant load in
// ctx at its earliest legal start time (start_from).
func NewState(ctx *entities.Context, flow *homeflow.SmartHomeFlow) (*State, error) {
	s := &State{
		assigned: make(map[string]entities.AssignedConstantLoad),
		flow:     flow,
	}

	for _, load := range ctx.ConstantLoads() {
		a, err := entities.NewAssignedConstantLoad(load, load.StartFrom())
		if err != nil {
			return nil, err
		}
		s.Add(a)
	}

	return s, nil
}

// Add records a as the current assignment for its load id and pushes it
// into the flow wrapper.
func (s *State) Add(a entities.AssignedConstantLoad) {
	s.assigned[a.ID()] = a
	s.ids = append(s.ids, a.ID())
	s.flow.AddConstant(a)
}

// Remove removes the assignment for id, if any, from both the state and
// the flow wrapper, and returns the removed assignment.
func (s *State) Remove(id string) (entities.AssignedConstantLoad, bool) {
	a, ok := s.assigned[id]
	if !ok {
		return entities.AssignedConstantLoad{}, false
	}
	delete(s.assigned, id)
	s.removeID(id)
	s.flow.RemoveConstant(id)
	return a, true
}

// removeID drops the first occurrence of id from s.ids. Duplicate
// entries can accumulate across repeated Add calls for the same id (a
// move that reassigns the same load without an intervening Remove is not
// a pattern this package produces, but removeID stays correct either
// way by removing one occurrence per Remove call).
func (s *State) removeID(id string) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids[i] = s.ids[len(s.ids)-1]
			s.ids = s.ids[:len(s.ids)-1]
			return
		}
	}
}

// Get returns the current assignment for id, if any.
func (s *State) Get(id string) (entities.AssignedConstantLoad, bool) {
	a, ok := s.assigned[id]
	return a, ok
}

// IDs returns the distinct constant-load ids currently assigned. The
// returned slice is owned by the caller.
func (s *State) IDs() []string {
	cp := make([]string, len(s.ids))
	copy(cp, s.ids)
	return cp
}

// Cost delegates to the flow wrapper.
func (s *State) Cost() int64 {
	return s.flow.Cost()
}

// Schedule delegates to the flow wrapper.
func (s *State) Schedule() (*schedule.Schedule, error) {
	return s.flow.Schedule()
}
