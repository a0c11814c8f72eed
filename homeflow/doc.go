// Package homeflow wraps a graphbuild-constructed mcmf.Stack with the
// dynamic bookkeeping a changing set of constant-load assignments needs:
// a map of currently-assigned constant loads, a cached (cost, flow)
// result invalidated on every mutation, and the pop/push-fresh/re-add
// sequence that rebuilds the overlay from the map before each solve.
package homeflow
