// SPDX-License-Identifier: MIT
package anneal

import "errors"

// ErrNoConstantLoads indicates a move was requested against a State with
// no constant loads at all — there is nothing to perturb.
var ErrNoConstantLoads = errors.New("anneal: no constant loads to move")

// ErrNoMovablePlacement indicates every constant load's window is
// exactly as wide as its own duration (lo == hi everywhere), so no
// random move exists regardless of how many loads are sampled.
var ErrNoMovablePlacement = errors.New("anneal: no constant load has a movable placement")
