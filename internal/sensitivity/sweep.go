// Package sensitivity re-runs a comparison over a range of one input
// parameter. Sweeps are purely combinatorial re-invocations of the engine;
// the base inputs are never mutated.
package sensitivity

import (
	"fmt"
	"math"

	"heatcompare/internal/engine"
	"heatcompare/internal/model"
)

// Parameter names the input a sweep varies.
type Parameter string

const (
	// ParamSpecificHeatDemand sweeps the specific heat demand in kWh/m2a.
	ParamSpecificHeatDemand Parameter = "specific_heat_demand"
	// ParamJAZ sweeps the heat pump's seasonal performance factor.
	ParamJAZ Parameter = "jaz"
)

// maxPoints bounds a sweep so a bad step cannot wedge a request handler.
const maxPoints = 10000

func ParseParameter(s string) (Parameter, error) {
	switch Parameter(s) {
	case ParamSpecificHeatDemand:
		return ParamSpecificHeatDemand, nil
	case ParamJAZ:
		return ParamJAZ, nil
	default:
		return "", fmt.Errorf("%w: unknown sensitivity parameter %q", model.ErrInvalidInput, s)
	}
}

// Point is one sweep element: the substituted value and the full comparison
// computed under it.
type Point struct {
	Value      float64
	Comparison *engine.Comparison
}

// Sweep is an ordered, finite result set; callers may iterate it any number
// of times.
type Sweep struct {
	Parameter Parameter
	Points    []Point
}

// Run evaluates the comparison at every value in [from, to] stepped by step
// (inclusive bounds, ascending order).
func Run(e *engine.Engine, in model.ComparisonInputs, param Parameter, from, to, step float64) (*Sweep, error) {
	if _, err := ParseParameter(string(param)); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: sweep step must be > 0", model.ErrInvalidInput)
	}
	if to < from {
		return nil, fmt.Errorf("%w: sweep range is empty (from %g > to %g)", model.ErrInvalidInput, from, to)
	}
	if param == ParamJAZ && in.HeatPump == nil {
		return nil, fmt.Errorf("%w: jaz sweep requires a heat pump spec", model.ErrInvalidInput)
	}

	// Tolerate float stepping so 2.5..4.5 step 0.5 yields exactly 5 points.
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	if n > maxPoints {
		return nil, fmt.Errorf("%w: sweep would produce %d points (max %d)", model.ErrInvalidInput, n, maxPoints)
	}

	sw := &Sweep{Parameter: param, Points: make([]Point, 0, n)}
	for i := 0; i < n; i++ {
		v := from + float64(i)*step
		cmp, err := e.Compare(substitute(in, param, v))
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%g: %w", param, v, err)
		}
		sw.Points = append(sw.Points, Point{Value: v, Comparison: cmp})
	}
	return sw, nil
}

// substitute returns a copy of the inputs with one parameter replaced.
func substitute(in model.ComparisonInputs, param Parameter, v float64) model.ComparisonInputs {
	out := in
	switch param {
	case ParamSpecificHeatDemand:
		out.Building.SpecificDemandKWhM2a = v
	case ParamJAZ:
		hp := *in.HeatPump
		hp.JAZ = v
		out.HeatPump = &hp
	}
	return out
}
