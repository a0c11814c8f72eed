// Package entities holds the read-only domain records an optimisation
// call is built from: Battery, VariableLoad, ConstantLoad, and
// AssignedConstantLoad, bundled together with the three forecast series
// into a Context.
//
// Every constructor validates its invariants immediately and returns a
// wrapped sentinel error on violation; none of them panic. The package
// defines no functional-option constructors (WithX) and raises no
// panics.
package entities
