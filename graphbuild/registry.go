package graphbuild

import "github.com/ArneCode/electricity-price-optimizer-go/timegrid"

// nodeKind tags the kind of logical node a nodeKey addresses.
type nodeKind int

const (
	kindGenerator nodeKind = iota
	kindNetwork
	kindWire
	kindBattery
	kindAction
)

// nodeKey identifies a logical node: Generator and Network carry no
// further fields, Wire carries a step, Battery carries a battery index
// and a step, Action carries a variable-load index.
type nodeKey struct {
	kind      nodeKind
	entityIdx int
	step      timegrid.Step
}

func generatorKey() nodeKey { return nodeKey{kind: kindGenerator} }
func networkKey() nodeKey   { return nodeKey{kind: kindNetwork} }
func wireKey(t timegrid.Step) nodeKey {
	return nodeKey{kind: kindWire, step: t}
}
func batteryKey(b int, t timegrid.Step) nodeKey {
	return nodeKey{kind: kindBattery, entityIdx: b, step: t}
}
func actionKey(a int) nodeKey {
	return nodeKey{kind: kindAction, entityIdx: a}
}

// graphHandle is the minimal surface the registry needs from mcmf.Graph:
// allocate a fresh node. Declared as an interface purely to keep this
// file's dependency on mcmf narrow and the registry unit-testable
// without constructing a full Graph.
type graphHandle interface {
	NewNode() int
}

// nodeRegistry lazily allocates and memoizes one mcmf graph node id per
// distinct nodeKey, so repeated references to e.g. Wire(t) across the
// ten edge-construction rules resolve to the same underlying node.
type nodeRegistry struct {
	g     graphHandle
	nodes map[nodeKey]int
}

func newNodeRegistry(g graphHandle) *nodeRegistry {
	return &nodeRegistry{g: g, nodes: make(map[nodeKey]int)}
}

// node returns the node id for key, allocating one on first use.
func (r *nodeRegistry) node(key nodeKey) int {
	if id, ok := r.nodes[key]; ok {
		return id
	}
	id := r.g.NewNode()
	r.nodes[key] = id
	return id
}
