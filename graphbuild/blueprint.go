package graphbuild

import "github.com/ArneCode/electricity-price-optimizer-go/timegrid"

// blueprintKind tags which of the three blueprint flavours a
// blueprintEntry belongs to: one shared shape, three index views rather
// than three parallel types.
type blueprintKind int

const (
	blueprintBattery blueprintKind = iota
	blueprintVariableLoad
	blueprintNetwork
)

// blueprintEntry is one (entity-timestep -> edge handle) mapping.
type blueprintEntry struct {
	kind blueprintKind
	id   string
	step timegrid.Step
	handle int
}

// Blueprint is the side-table produced by Build: it lets package
// schedule read a solved graph's per-timestep quantities back out by
// entity id, without the extractor needing to know anything about how
// the graph was constructed.
type Blueprint struct {
	entries []blueprintEntry

	batteryHandle      map[string]map[timegrid.Step]int
	variableLoadHandle map[string]map[timegrid.Step]int
	networkHandle      map[timegrid.Step]int

	// batteryInitialLevel records the Source->Battery(b,0) edge's
	// original capacity for each battery id, used by the schedule
	// extractor to report the step-0 charge level without relying on a
	// flow read (that edge is always saturated).
	batteryInitialLevel map[string]int64

	// wireNode records each timestep's Wire(t) node id, so homeflow can
	// attach constant-load Wire(t)->Sink edges without re-deriving the
	// builder's node-keying scheme.
	wireNode map[timegrid.Step]int
}

func newBlueprint() *Blueprint {
	return &Blueprint{
		batteryHandle:       make(map[string]map[timegrid.Step]int),
		variableLoadHandle:  make(map[string]map[timegrid.Step]int),
		networkHandle:       make(map[timegrid.Step]int),
		batteryInitialLevel: make(map[string]int64),
		wireNode:            make(map[timegrid.Step]int),
	}
}

// WireNode returns the node id allocated for Wire(t), and whether Build
// has processed that step (true for every t in [0, StepsPerDay)).
func (bp *Blueprint) WireNode(t timegrid.Step) (int, bool) {
	id, ok := bp.wireNode[t]
	return id, ok
}

func (bp *Blueprint) addBattery(id string, t timegrid.Step, handle int) {
	bp.entries = append(bp.entries, blueprintEntry{kind: blueprintBattery, id: id, step: t, handle: handle})
	if bp.batteryHandle[id] == nil {
		bp.batteryHandle[id] = make(map[timegrid.Step]int)
	}
	bp.batteryHandle[id][t] = handle
}

func (bp *Blueprint) addVariableLoad(id string, t timegrid.Step, handle int) {
	bp.entries = append(bp.entries, blueprintEntry{kind: blueprintVariableLoad, id: id, step: t, handle: handle})
	if bp.variableLoadHandle[id] == nil {
		bp.variableLoadHandle[id] = make(map[timegrid.Step]int)
	}
	bp.variableLoadHandle[id][t] = handle
}

func (bp *Blueprint) addNetwork(t timegrid.Step, handle int) {
	bp.entries = append(bp.entries, blueprintEntry{kind: blueprintNetwork, step: t, handle: handle})
	bp.networkHandle[t] = handle
}

func (bp *Blueprint) setBatteryInitialLevel(id string, level int64) {
	bp.batteryInitialLevel[id] = level
}

// BatteryHandle returns the edge handle recording battery id's charge
// level at step t (t in [1, StepsPerDay]; t=0 is handled separately via
// BatteryInitialLevel), and whether one was recorded.
func (bp *Blueprint) BatteryHandle(id string, t timegrid.Step) (int, bool) {
	steps, ok := bp.batteryHandle[id]
	if !ok {
		return 0, false
	}
	h, ok := steps[t]
	return h, ok
}

// BatteryInitialLevel returns battery id's Source->Battery(b,0) edge
// capacity (its initial_level), and whether the battery was seen at build time.
func (bp *Blueprint) BatteryInitialLevel(id string) (int64, bool) {
	v, ok := bp.batteryInitialLevel[id]
	return v, ok
}

// VariableLoadHandle returns the edge handle recording variable load
// id's consumption at step t, and whether one was recorded.
func (bp *Blueprint) VariableLoadHandle(id string, t timegrid.Step) (int, bool) {
	steps, ok := bp.variableLoadHandle[id]
	if !ok {
		return 0, false
	}
	h, ok := steps[t]
	return h, ok
}

// NetworkHandle returns the edge handle recording network import at
// step t, and whether one was recorded (every step has one; rule 4
// unconditionally records every t in [0, StepsPerDay)).
func (bp *Blueprint) NetworkHandle(t timegrid.Step) (int, bool) {
	h, ok := bp.networkHandle[t]
	return h, ok
}

// BatteryIDs returns the distinct battery ids seen during Build, in
// build order.
func (bp *Blueprint) BatteryIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, e := range bp.entries {
		if e.kind == blueprintBattery && !seen[e.id] {
			seen[e.id] = true
			ids = append(ids, e.id)
		}
	}
	return ids
}

// VariableLoadIDs returns the distinct variable-load ids seen during
// Build, in build order.
func (bp *Blueprint) VariableLoadIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, e := range bp.entries {
		if e.kind == blueprintVariableLoad && !seen[e.id] {
			seen[e.id] = true
			ids = append(ids, e.id)
		}
	}
	return ids
}
