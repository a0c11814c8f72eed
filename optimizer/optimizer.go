package optimizer

import (
	"fmt"

	"github.com/ArneCode/electricity-price-optimizer-go/anneal"
	"github.com/ArneCode/electricity-price-optimizer-go/entities"
	"github.com/ArneCode/electricity-price-optimizer-go/graphbuild"
	"github.com/ArneCode/electricity-price-optimizer-go/homeflow"
	"github.com/ArneCode/electricity-price-optimizer-go/schedule"
)

// Optimize is the single external entry point: given a fully-validated
// Context, it builds the time-expanded flow network (graphbuild), wraps
// it for dynamic constant-load bookkeeping (homeflow), places every
// constant load at its earliest legal start and runs the
// simulated-annealing search over start-time assignments (anneal), and
// returns the cost of the placement the search ends on together with
// its schedule.
//
// Optimize is a pure function of ctx: no file, wire, or CLI surface, no
// persisted state. Every failure is reported as a *Fail with a Kind
// identifying which failure class it belongs to; the annealing loop
// itself never masks infeasibility — it either succeeds on every
// iteration because the baseline is checked feasible before the loop
// begins, or Optimize returns a KindInfeasible Fail before ever
// constructing the anneal.State.
func Optimize(ctx *entities.Context, opts ...anneal.Option) (totalCost int64, sched *schedule.Schedule, err error) {
	defer func() {
		if r := recover(); r != nil {
			totalCost = 0
			sched = nil
			err = recoverAsFail(r)
		}
	}()

	stack, bp, buildErr := graphbuild.Build(ctx)
	if buildErr != nil {
		return 0, nil, &Fail{Kind: KindValidation, Err: buildErr}
	}

	flow := homeflow.New(ctx, stack, bp)

	mandatory := graphbuild.TotalMandatoryFlow(ctx)
	achieved := flow.Flow()
	if achieved < mandatory {
		return 0, nil, &Fail{
			Kind: KindInfeasible,
			Err:  fmt.Errorf("%w: max achievable flow %d below mandatory total %d", ErrInfeasible, achieved, mandatory),
		}
	}

	state, stateErr := anneal.NewState(ctx, flow)
	if stateErr != nil {
		return 0, nil, &Fail{Kind: KindValidation, Err: stateErr}
	}

	cost, finalSchedule, runErr := anneal.Run(state, opts...)
	if runErr != nil {
		return 0, nil, &Fail{Kind: KindInternal, Err: fmt.Errorf("%w: %v", ErrInternal, runErr)}
	}

	return cost, finalSchedule, nil
}
