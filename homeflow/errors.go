// SPDX-License-Identifier: MIT
package homeflow

import "github.com/ArneCode/electricity-price-optimizer-go/timegrid"

// errMissingWireNode is the panic value when ensureSolved asks the
// Blueprint for a Wire(t) node outside [0, StepsPerDay) — unreachable
// under correct wiring, since every AssignedConstantLoad's active
// interval was validated against its load's window at construction time
// and every step in [0, StepsPerDay) has a Wire node by construction.
type errMissingWireNode struct {
	step timegrid.Step
}

func (e errMissingWireNode) Error() string {
	return "homeflow: no Wire node recorded for step"
}
