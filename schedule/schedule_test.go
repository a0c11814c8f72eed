// Package schedule_test exercises Extract's happy path and its
// panic-on-missing-blueprint-entry branches, which fire only when a
// Blueprint and the Context read against it have drifted out of sync.
package schedule_test

import (
	"testing"

	"github.com/ArneCode/electricity-price-optimizer-go/entities"
	"github.com/ArneCode/electricity-price-optimizer-go/forecast"
	"github.com/ArneCode/electricity-price-optimizer-go/graphbuild"
	"github.com/ArneCode/electricity-price-optimizer-go/schedule"
)

func blankSeries() (forecast.Series, forecast.Series, forecast.Series) {
	return forecast.NewConstant(10), forecast.New(), forecast.New()
}

func TestExtract_PopulatesBatteryVariableLoadAndNetworkSeries(t *testing.T) {
	price, gen, unc := blankSeries()
	bat, err := entities.NewBattery("b1", 10, 5, 3, 3, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	vl, err := entities.NewVariableLoad("v1", 0, 10, 20, 5)
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := entities.NewContext(price, gen, unc, []entities.Battery{bat}, []entities.VariableLoad{vl}, nil, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	stack, bp, err := graphbuild.Build(ctx)
	if err != nil {
		t.Fatal(err)
	}
	g := stack.Top()
	g.Solve()

	sched, err := schedule.Extract(ctx, bp, g, map[string]entities.AssignedConstantLoad{})
	if err != nil {
		t.Fatal(err)
	}

	series, ok := sched.Batteries["b1"]
	if !ok {
		t.Fatal("expected a battery series for b1")
	}
	if series[0] != 5 {
		t.Errorf("Batteries[\"b1\"][0] = %d; want initial level 5", series[0])
	}

	vlSeries, ok := sched.VariableLoads["v1"]
	if !ok {
		t.Fatal("expected a variable-load series for v1")
	}
	if len(vlSeries) != vl.Window().Len() {
		t.Errorf("len(VariableLoads[\"v1\"]) = %d; want %d", len(vlSeries), vl.Window().Len())
	}

	if sched.NetworkImport.Len() == 0 {
		t.Error("expected a populated NetworkImport series")
	}
}

func TestExtract_CopiesConstantLoadsVerbatim(t *testing.T) {
	price, gen, unc := blankSeries()
	ctx, err := entities.NewContext(price, gen, unc, nil, nil, nil, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	stack, bp, err := graphbuild.Build(ctx)
	if err != nil {
		t.Fatal(err)
	}
	g := stack.Top()
	g.Solve()

	cl, err := entities.NewConstantLoad("c1", 0, 100, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	a, err := entities.NewAssignedConstantLoad(cl, 3)
	if err != nil {
		t.Fatal(err)
	}
	assigned := map[string]entities.AssignedConstantLoad{"c1": a}

	sched, err := schedule.Extract(ctx, bp, g, assigned)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := sched.ConstantLoads["c1"]
	if !ok {
		t.Fatal("expected c1 in ConstantLoads")
	}
	if got.StartTime() != 3 {
		t.Errorf("StartTime() = %d; want 3", got.StartTime())
	}
}

func TestExtract_MissingBatteryBlueprintEntryPanics(t *testing.T) {
	price, gen, unc := blankSeries()

	// bp is built against a context with no batteries at all, so it
	// records no battery entries whatsoever.
	emptyCtx, err := entities.NewContext(price, gen, unc, nil, nil, nil, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	stack, bp, err := graphbuild.Build(emptyCtx)
	if err != nil {
		t.Fatal(err)
	}
	g := stack.Top()
	g.Solve()

	// ctxWithBattery names a battery bp never saw.
	bat, err := entities.NewBattery("b1", 10, 5, 3, 3, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	ctxWithBattery, err := entities.NewContext(price, gen, unc, []entities.Battery{bat}, nil, nil, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Extract did not panic against a battery missing from the Blueprint")
		}
	}()
	schedule.Extract(ctxWithBattery, bp, g, map[string]entities.AssignedConstantLoad{})
}

func TestExtract_MissingVariableLoadBlueprintEntryPanics(t *testing.T) {
	price, gen, unc := blankSeries()

	emptyCtx, err := entities.NewContext(price, gen, unc, nil, nil, nil, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	stack, bp, err := graphbuild.Build(emptyCtx)
	if err != nil {
		t.Fatal(err)
	}
	g := stack.Top()
	g.Solve()

	vl, err := entities.NewVariableLoad("v1", 0, 10, 20, 5)
	if err != nil {
		t.Fatal(err)
	}
	ctxWithLoad, err := entities.NewContext(price, gen, unc, nil, []entities.VariableLoad{vl}, nil, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Extract did not panic against a variable load missing from the Blueprint")
		}
	}()
	schedule.Extract(ctxWithLoad, bp, g, map[string]entities.AssignedConstantLoad{})
}
