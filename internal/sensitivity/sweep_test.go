package sensitivity

import (
	"testing"

	"heatcompare/internal/engine"
	"heatcompare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInputs() model.ComparisonInputs {
	return model.ComparisonInputs{
		Building: model.BuildingProfile{
			ConstructionYear:     1994,
			DwellingUnits:        2,
			FloorAreaM2:          150,
			SpecificDemandKWhM2a: 110,
		},
		HeatPump: &model.HeatPumpSpec{RatedOutputKW: 10, JAZ: 3.2},
		Tariffs:  model.DefaultTariffs(),
	}
}

func TestParseParameter(t *testing.T) {
	for _, s := range []string{"jaz", "specific_heat_demand"} {
		p, err := ParseParameter(s)
		require.NoError(t, err)
		assert.Equal(t, Parameter(s), p)
	}
	_, err := ParseParameter("fuel_price")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestRun_JAZ(t *testing.T) {
	e := engine.New(nil)
	in := testInputs()

	sw, err := Run(e, in, ParamJAZ, 2.5, 4.5, 0.5)
	require.NoError(t, err)
	require.Len(t, sw.Points, 5)

	// Values are ordered and electricity consumption strictly decreases as
	// JAZ increases, for a fixed heat demand.
	prevElec := 1e18
	for i, p := range sw.Points {
		assert.InDelta(t, 2.5+0.5*float64(i), p.Value, 1e-9)
		hp := p.Comparison.ByVariant[model.VariantHeatPumpPV].HeatPump
		require.NotNil(t, hp)
		assert.Less(t, hp.ElectricityKWh, prevElec)
		prevElec = hp.ElectricityKWh
		// Fuel variants are unaffected by JAZ.
		assert.InDelta(t, 16500.0, p.Comparison.HeatDemandKWh, 1e-9)
	}

	t.Run("base inputs untouched", func(t *testing.T) {
		assert.InDelta(t, 3.2, in.HeatPump.JAZ, 1e-12)
	})

	t.Run("restartable", func(t *testing.T) {
		again, err := Run(e, in, ParamJAZ, 2.5, 4.5, 0.5)
		require.NoError(t, err)
		require.Len(t, again.Points, 5)
		for i := range again.Points {
			assert.Equal(t, sw.Points[i].Value, again.Points[i].Value)
			assert.Equal(t, sw.Points[i].Comparison.Results, again.Points[i].Comparison.Results)
		}
	})
}

func TestRun_SpecificHeatDemand(t *testing.T) {
	e := engine.New(nil)

	sw, err := Run(e, testInputs(), ParamSpecificHeatDemand, 60, 220, 5)
	require.NoError(t, err)
	require.Len(t, sw.Points, 33)

	prevCost := -1.0
	for _, p := range sw.Points {
		oil := p.Comparison.ByVariant[model.VariantOil]
		assert.Greater(t, oil.EnergyCostEUR, prevCost)
		prevCost = oil.EnergyCostEUR
	}
}

func TestRun_Validation(t *testing.T) {
	e := engine.New(nil)
	in := testInputs()

	t.Run("zero step", func(t *testing.T) {
		_, err := Run(e, in, ParamJAZ, 2.5, 4.5, 0)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := Run(e, in, ParamJAZ, 4.5, 2.5, 0.5)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("unknown parameter", func(t *testing.T) {
		_, err := Run(e, in, Parameter("oil_price"), 1, 2, 1)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("jaz sweep without heat pump", func(t *testing.T) {
		noHP := in
		noHP.HeatPump = nil
		_, err := Run(e, noHP, ParamJAZ, 2.5, 4.5, 0.5)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("too many points", func(t *testing.T) {
		_, err := Run(e, in, ParamSpecificHeatDemand, 0.001, 100, 0.0001)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
