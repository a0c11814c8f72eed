package entities

import (
	"fmt"

	"github.com/ArneCode/electricity-price-optimizer-go/forecast"
)

// Context bundles everything a single optimisation call needs: the
// three forecast series, the batteries, variable loads and constant
// loads, and the first-timestep scaling fraction. It is fixed at
// construction and read-only thereafter.
type Context struct {
	electricityPrice         forecast.Series
	generatedElectricity     forecast.Series
	beyondControlConsumption forecast.Series

	batteries      []Battery
	variableLoads  []VariableLoad
	constantLoads  []ConstantLoad

	firstTimestepFraction float64
}

// NewContext validates and constructs a Context. forecast.Series are
// already fixed-length by construction, so length mismatch cannot occur
// through this path today; the check remains because Context is the
// boundary names explicitly, and a future caller assembling
// series from a different source should not be able to violate it
// silently.
func NewContext(
	electricityPrice, generatedElectricity, beyondControlConsumption forecast.Series,
	batteries []Battery,
	variableLoads []VariableLoad,
	constantLoads []ConstantLoad,
	firstTimestepFraction float64,
) (*Context, error) {
	if electricityPrice.Len() != generatedElectricity.Len() || electricityPrice.Len() != beyondControlConsumption.Len() {
		return nil, fmt.Errorf("%w: price=%d generation=%d uncontrolled=%d",
			ErrLengthMismatch, electricityPrice.Len(), generatedElectricity.Len(), beyondControlConsumption.Len())
	}
	if firstTimestepFraction <= 0 || firstTimestepFraction > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFraction, firstTimestepFraction)
	}

	batteriesCopy := make([]Battery, len(batteries))
	copy(batteriesCopy, batteries)
	variableLoadsCopy := make([]VariableLoad, len(variableLoads))
	copy(variableLoadsCopy, variableLoads)
	constantLoadsCopy := make([]ConstantLoad, len(constantLoads))
	copy(constantLoadsCopy, constantLoads)

	return &Context{
		electricityPrice:         electricityPrice,
		generatedElectricity:     generatedElectricity,
		beyondControlConsumption: beyondControlConsumption,
		batteries:                batteriesCopy,
		variableLoads:            variableLoadsCopy,
		constantLoads:            constantLoadsCopy,
		firstTimestepFraction:    firstTimestepFraction,
	}, nil
}

func (c *Context) ElectricityPrice() forecast.Series         { return c.electricityPrice }
func (c *Context) GeneratedElectricity() forecast.Series     { return c.generatedElectricity }
func (c *Context) BeyondControlConsumption() forecast.Series { return c.beyondControlConsumption }
func (c *Context) FirstTimestepFraction() float64            { return c.firstTimestepFraction }

// Batteries returns the context's batteries. The returned slice is owned
// by the caller; mutating it does not affect the Context.
func (c *Context) Batteries() []Battery {
	cp := make([]Battery, len(c.batteries))
	copy(cp, c.batteries)
	return cp
}

// VariableLoads returns the context's variable loads, copied as Batteries does.
func (c *Context) VariableLoads() []VariableLoad {
	cp := make([]VariableLoad, len(c.variableLoads))
	copy(cp, c.variableLoads)
	return cp
}

// ConstantLoads returns the context's constant loads, copied as Batteries does.
func (c *Context) ConstantLoads() []ConstantLoad {
	cp := make([]ConstantLoad, len(c.constantLoads))
	copy(cp, c.constantLoads)
	return cp
}
