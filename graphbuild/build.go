package graphbuild

import (
	"math"

	"github.com/ArneCode/electricity-price-optimizer-go/entities"
	"github.com/ArneCode/electricity-price-optimizer-go/mcmf"
	"github.com/ArneCode/electricity-price-optimizer-go/timegrid"
)

// infiniteCapacity stands in for the "capacity infinity" edges
// (Source->Generator, Source->Network, Network->Wire(t)). It must
// exceed any possible finite flow through the graph; the graph
// has at most a few hundred thousand finite-capacity edges each bounded
// by realistic forecast magnitudes, so 1<<40 leaves enormous headroom
// while staying far below mcmf's internal inf (1<<60) to avoid any risk
// of arithmetic colliding with that sentinel during cost accumulation.
const infiniteCapacity int64 = 1 << 40

// scaleFirstStep scales a rate-limited quantity by ctx's
// FirstTimestepFraction when t is the first step of the horizon.
// Rounds rather than truncates, matching
// original_source/.../optimizer/mod.rs's `.round() as i64` on the same
// battery max_charge/max_output scaling.
func scaleFirstStep(v int64, t timegrid.Step, fraction float64) int64 {
	if t != 0 {
		return v
	}
	return int64(math.Round(float64(v) * fraction))
}

// Build constructs the time-expanded flow network for ctx: ten edge
// groups wrapped in a two-frame mcmf.Stack (a baseline frame and a
// mutable overlay ready for homeflow to manage constant-load edges in),
// plus the Blueprint needed to extract a schedule afterward.
func Build(ctx *entities.Context) (*mcmf.Stack, *Blueprint, error) {
	g := mcmf.New()
	reg := newNodeRegistry(g)
	bp := newBlueprint()

	fraction := ctx.FirstTimestepFraction()
	price := ctx.ElectricityPrice()
	generation := ctx.GeneratedElectricity()
	uncontrolled := ctx.BeyondControlConsumption()

	generatorNode := reg.node(generatorKey())
	networkNode := reg.node(networkKey())

	// 1. Source -> Generator, cap infinite, cost 0.
	g.AddEdge(mcmf.Source, generatorNode, infiniteCapacity, 0)
	// 2. Source -> Network, cap infinite, cost 0.
	g.AddEdge(mcmf.Source, networkNode, infiniteCapacity, 0)

	for t := 0; t < timegrid.StepsPerDay; t++ {
		wireNode := reg.node(wireKey(t))
		bp.wireNode[t] = wireNode

		// 3. Generator -> Wire(t) when generation[t] > 0, cap = generation[t], cost 0.
		if gv := generation.MustAt(t); gv > 0 {
			g.AddEdge(generatorNode, wireNode, gv, 0)
		}

		// 4. Network -> Wire(t), cap infinite, cost = price[t]; recorded
		// in the network-consumption blueprint.
		h := g.AddEdge(networkNode, wireNode, infiniteCapacity, price.MustAt(t))
		bp.addNetwork(t, h)

		// 5. Wire(t) -> Sink when uncontrolled[t] > 0, cap = uncontrolled[t], cost 0.
		if uv := uncontrolled.MustAt(t); uv > 0 {
			g.AddEdge(wireNode, mcmf.Sink, uv, 0)
		}
	}

	for bIdx, bat := range ctx.Batteries() {
		// 6. Source -> Battery(b, 0), cap = initial_level, cost 0.
		b0 := reg.node(batteryKey(bIdx, 0))
		g.AddEdge(mcmf.Source, b0, bat.InitialLevel(), 0)
		bp.setBatteryInitialLevel(bat.ID(), bat.InitialLevel())

		for t := 0; t < timegrid.StepsPerDay; t++ {
			wireNode := reg.node(wireKey(t))
			batNode := reg.node(batteryKey(bIdx, t))

			// 7. Wire(t) -> Battery(b,t) cap=max_charge, Battery(b,t) -> Wire(t) cap=max_discharge.
			charge := scaleFirstStep(bat.MaxCharge(), t, fraction)
			discharge := scaleFirstStep(bat.MaxDischarge(), t, fraction)
			g.AddEdge(wireNode, batNode, charge, 0)
			g.AddEdge(batNode, wireNode, discharge, 0)

			// 8. Battery(b,t) -> Battery(b,t+1), cap=capacity, cost 0;
			// handle recorded keyed by t+1.
			nextNode := reg.node(batteryKey(bIdx, t+1))
			h := g.AddEdge(batNode, nextNode, bat.Capacity(), 0)
			bp.addBattery(bat.ID(), t+1, h)
		}
	}

	for aIdx, vl := range ctx.VariableLoads() {
		actionNode := reg.node(actionKey(aIdx))
		window := vl.Window()

		for t := window.Start; t < window.End; t++ {
			wireNode := reg.node(wireKey(t))

			// 9. Wire(t) -> Action(a), cap=max_consumption (first-step scaled), cost 0.
			cap := scaleFirstStep(vl.MaxConsumption(), t, fraction)
			h := g.AddEdge(wireNode, actionNode, cap, 0)
			bp.addVariableLoad(vl.ID(), t, h)
		}

		// 10. Action(a) -> Sink, cap=total_consumption, cost 0.
		g.AddEdge(actionNode, mcmf.Sink, vl.TotalConsumption(), 0)
	}

	stack := mcmf.NewStack(g)
	stack.Push()

	return stack, bp, nil
}

// TotalMandatoryFlow returns the sum of every variable load's
// total_consumption plus the sum of uncontrolled consumption across the
// horizon: the minimum flow a feasible solve must push, used by
// optimizer to detect flow infeasibility. Grounded on
// original_source/.../flow_constructor/builder.rs's calculate_total_flow.
func TotalMandatoryFlow(ctx *entities.Context) int64 {
	var total int64
	for _, vl := range ctx.VariableLoads() {
		total += vl.TotalConsumption()
	}
	uncontrolled := ctx.BeyondControlConsumption()
	for t := 0; t < timegrid.StepsPerDay; t++ {
		total += uncontrolled.MustAt(t)
	}
	return total
}
