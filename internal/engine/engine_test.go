package engine

import (
	"math"
	"testing"

	"heatcompare/internal/coverage"
	"heatcompare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseInputs is a 150 m2 building with an explicit specific demand of
// 110 kWh/m2a, so the expected heat demand is exactly 16500 kWh/a.
func baseInputs() model.ComparisonInputs {
	return model.ComparisonInputs{
		Building: model.BuildingProfile{
			ConstructionYear:     1994,
			DwellingUnits:        2,
			FloorAreaM2:          150,
			SpecificDemandKWhM2a: 110,
		},
		HeatPump: &model.HeatPumpSpec{RatedOutputKW: 10, JAZ: 3.5},
		Tariffs:  model.DefaultTariffs(),
	}
}

func TestHeatDemand(t *testing.T) {
	e := New(nil)

	q, err := e.HeatDemand(baseInputs().Building)
	require.NoError(t, err)
	assert.InDelta(t, 16500.0, q, 1e-9)

	t.Run("monotone in floor area", func(t *testing.T) {
		prev := 0.0
		for _, area := range []float64{10, 80, 150, 350.9, 1200} {
			b := baseInputs().Building
			b.FloorAreaM2 = area
			q, err := e.HeatDemand(b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q, prev)
			prev = q
		}
	})

	t.Run("era estimate when no explicit demand", func(t *testing.T) {
		b := baseInputs().Building
		b.SpecificDemandKWhM2a = 0
		q, err := e.HeatDemand(b)
		require.NoError(t, err)
		// 1994 falls into the 135 kWh/m2a bucket.
		assert.InDelta(t, 135.0*150, q, 1e-9)
	})

	t.Run("rejects non-positive area", func(t *testing.T) {
		b := baseInputs().Building
		b.FloorAreaM2 = 0
		_, err := e.HeatDemand(b)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestVariantResult_Fuels(t *testing.T) {
	e := New(nil)
	in := baseInputs()
	tf := in.Tariffs

	oil, err := e.VariantResult(model.VariantOil, in)
	require.NoError(t, err)
	wantLitres := 16500.0 / (tf.OilEfficiency * tf.OilHeatingValueKWhPerL)
	assert.InDelta(t, wantLitres, oil.CarrierConsumption, 1e-9)
	assert.InDelta(t, wantLitres*tf.OilPriceEURPerL, oil.EnergyCostEUR, 1e-9)
	assert.InDelta(t, wantLitres*tf.CO2OilKgPerL, oil.CO2Kg, 1e-9)
	assert.Equal(t, "L", oil.CarrierUnit)
	assert.Nil(t, oil.HeatPump)

	gas, err := e.VariantResult(model.VariantGas, in)
	require.NoError(t, err)
	wantM3 := 16500.0 / (tf.GasEfficiency * tf.GasHeatingValueKWhPerM3)
	assert.InDelta(t, wantM3, gas.CarrierConsumption, 1e-9)
	assert.InDelta(t, wantM3*tf.GasPriceEURPerM3, gas.EnergyCostEUR, 1e-9)
	assert.InDelta(t, wantM3*tf.CO2GasKgPerM3, gas.CO2Kg, 1e-9)
}

// Cost and CO2 for the fuel variants scale linearly with heat demand for
// fixed tariffs.
func TestVariantResult_FuelLinearity(t *testing.T) {
	e := New(nil)
	in := baseInputs()

	base, err := e.VariantResult(model.VariantOil, in)
	require.NoError(t, err)

	for _, k := range []float64{0.5, 2, 3.25} {
		scaled := in
		scaled.Building.SpecificDemandKWhM2a = 110 * k
		res, err := e.VariantResult(model.VariantOil, scaled)
		require.NoError(t, err)
		assert.InDelta(t, base.EnergyCostEUR*k, res.EnergyCostEUR, 1e-6)
		assert.InDelta(t, base.CO2Kg*k, res.CO2Kg, 1e-6)
	}
}

// 150 m2 building, JAZ 3.5, no PV/battery. Electricity consumed is
// heatDemand/3.5 and with zero PV the whole demand is grid-priced.
func TestVariantResult_HeatPumpNoPV(t *testing.T) {
	e := New(nil)
	in := baseInputs()

	res, err := e.VariantResult(model.VariantHeatPumpPV, in)
	require.NoError(t, err)

	wantElec := 16500.0 / 3.5
	require.NotNil(t, res.HeatPump)
	assert.InDelta(t, wantElec, res.HeatPump.ElectricityKWh, 1e-9)
	assert.Zero(t, res.HeatPump.SelfConsumedKWh)
	assert.InDelta(t, wantElec, res.HeatPump.GridKWh, 1e-9)
	assert.InDelta(t, wantElec*in.Tariffs.ElectricityPriceEURPerKWh, res.EnergyCostEUR, 1e-9)
	assert.InDelta(t, wantElec*in.Tariffs.CO2GridKgPerKWh, res.CO2Kg, 1e-9)
	assert.InDelta(t, 16500.0/10.0, res.HeatPump.FullLoadHours, 1e-9)
}

func TestVariantResult_HeatPumpWithPVAndBattery(t *testing.T) {
	e := New(coverage.BatteryAware{DirectUseShare: 0.2, CyclesPerYear: 200})
	in := baseInputs()
	in.PV = &model.PVSystem{CapacityKWp: 10, SpecificYieldKWhPerKWp: 950}
	in.Battery = &model.BatteryStorage{UsableCapacityKWh: 8}

	res, err := e.VariantResult(model.VariantHeatPumpPV, in)
	require.NoError(t, err)
	hp := res.HeatPump
	require.NotNil(t, hp)

	elec := 16500.0 / 3.5
	wantCovered := math.Min(0.2*elec+8*200, math.Min(9500, elec))
	assert.InDelta(t, wantCovered, hp.SelfConsumedKWh, 1e-9)
	assert.InDelta(t, elec-wantCovered, hp.GridKWh, 1e-9)
	assert.InDelta(t, hp.GridKWh*in.Tariffs.ElectricityPriceEURPerKWh, hp.GridCostEUR, 1e-9)
	assert.InDelta(t,
		wantCovered*in.Tariffs.PVCostEURPerKWh+hp.GridCostEUR,
		res.EnergyCostEUR, 1e-9)
	// CO2 counts the grid remainder only.
	assert.InDelta(t, hp.GridKWh*in.Tariffs.CO2GridKgPerKWh, res.CO2Kg, 1e-9)
}

// More battery never increases the net grid cost, all else fixed.
func TestVariantResult_BatteryMonotonicity(t *testing.T) {
	e := New(nil)
	in := baseInputs()
	in.PV = &model.PVSystem{CapacityKWp: 10, SpecificYieldKWhPerKWp: 950}

	prev := math.Inf(1)
	for _, capKWh := range []float64{0, 2, 5, 10, 20, 50, 100} {
		in.Battery = &model.BatteryStorage{UsableCapacityKWh: capKWh}
		res, err := e.VariantResult(model.VariantHeatPumpPV, in)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.HeatPump.GridCostEUR, prev, "battery %v kWh", capKWh)
		prev = res.HeatPump.GridCostEUR
	}
}

func TestVariantResult_Errors(t *testing.T) {
	e := New(nil)

	t.Run("unsupported variant", func(t *testing.T) {
		_, err := e.VariantResult(model.Variant("pellet"), baseInputs())
		assert.ErrorIs(t, err, model.ErrUnsupportedVariant)
	})

	t.Run("heat pump variant without spec", func(t *testing.T) {
		in := baseInputs()
		in.HeatPump = nil
		_, err := e.VariantResult(model.VariantHeatPumpPV, in)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("battery without pv", func(t *testing.T) {
		in := baseInputs()
		in.Battery = &model.BatteryStorage{UsableCapacityKWh: 10}
		_, err := e.VariantResult(model.VariantOil, in)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestCompare(t *testing.T) {
	e := New(nil)
	in := baseInputs()
	in.PV = &model.PVSystem{CapacityKWp: 24.5, SpecificYieldKWhPerKWp: 950}
	in.Battery = &model.BatteryStorage{UsableCapacityKWh: 40}

	cmp, err := e.Compare(in)
	require.NoError(t, err)

	assert.InDelta(t, 16500.0, cmp.HeatDemandKWh, 1e-9)
	assert.InDelta(t, 24.5*950, cmp.PVGenerationKWh, 1e-9)
	require.Len(t, cmp.Results, 3)
	assert.Len(t, cmp.ByVariant, 3)
	for _, v := range model.AllVariants() {
		assert.Contains(t, cmp.ByVariant, v)
	}

	t.Run("deterministic", func(t *testing.T) {
		again, err := e.Compare(in)
		require.NoError(t, err)
		assert.Equal(t, cmp.Results, again.Results)
	})

	t.Run("rankings cover all variants", func(t *testing.T) {
		byCost := cmp.RankedByCost()
		require.Len(t, byCost, 3)
		for i := 1; i < len(byCost); i++ {
			assert.LessOrEqual(t,
				cmp.ByVariant[byCost[i-1]].EnergyCostEUR,
				cmp.ByVariant[byCost[i]].EnergyCostEUR)
		}
		byCO2 := cmp.RankedByCO2()
		require.Len(t, byCO2, 3)
		for i := 1; i < len(byCO2); i++ {
			assert.LessOrEqual(t,
				cmp.ByVariant[byCO2[i-1]].CO2Kg,
				cmp.ByVariant[byCO2[i]].CO2Kg)
		}
	})

	t.Run("variant subset keeps order", func(t *testing.T) {
		in := baseInputs()
		in.Variants = []model.Variant{model.VariantGas, model.VariantOil}
		cmp, err := e.Compare(in)
		require.NoError(t, err)
		require.Len(t, cmp.Results, 2)
		assert.Equal(t, model.VariantGas, cmp.Results[0].Variant)
		assert.Equal(t, model.VariantOil, cmp.Results[1].Variant)
	})
}
