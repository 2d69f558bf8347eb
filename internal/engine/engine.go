package engine

import (
	"fmt"

	"heatcompare/internal/coverage"
	"heatcompare/internal/model"
)

// Engine computes per-variant annual energy demand, cost and CO2 for a
// building. It is stateless apart from the configured coverage model;
// identical inputs always yield identical outputs, and independent calls
// need no coordination.
type Engine struct {
	coverage coverage.Model
}

// New creates an engine. A nil coverage model selects the default
// battery-aware one.
func New(cov coverage.Model) *Engine {
	if cov == nil {
		cov = coverage.Default()
	}
	return &Engine{coverage: cov}
}

// HeatDemand estimates the annual useful heat demand in kWh: specific demand
// (explicit or construction-era derived) times heated floor area.
func (e *Engine) HeatDemand(b model.BuildingProfile) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b.EffectiveSpecificDemand() * b.FloorAreaM2, nil
}

// VariantResult computes the annual outcome for a single variant.
func (e *Engine) VariantResult(v model.Variant, in model.ComparisonInputs) (model.VariantResult, error) {
	if !v.IsValid() {
		return model.VariantResult{}, fmt.Errorf("%w: %q", model.ErrUnsupportedVariant, string(v))
	}
	if err := in.Validate(); err != nil {
		return model.VariantResult{}, err
	}
	demand, err := e.HeatDemand(in.Building)
	if err != nil {
		return model.VariantResult{}, err
	}
	return e.variantResult(v, demand, in)
}

// variantResult assumes inputs were validated and demand precomputed, so
// Compare can reuse one demand across variants.
func (e *Engine) variantResult(v model.Variant, demandKWh float64, in model.ComparisonInputs) (model.VariantResult, error) {
	t := in.Tariffs
	res := model.VariantResult{
		Variant:       v,
		HeatDemandKWh: demandKWh,
		CarrierUnit:   v.CarrierUnit(),
	}

	switch v {
	case model.VariantOil:
		litres := demandKWh / (t.OilEfficiency * t.OilHeatingValueKWhPerL)
		res.CarrierConsumption = litres
		res.EnergyCostEUR = litres * t.OilPriceEURPerL
		res.CO2Kg = litres * t.CO2OilKgPerL

	case model.VariantGas:
		m3 := demandKWh / (t.GasEfficiency * t.GasHeatingValueKWhPerM3)
		res.CarrierConsumption = m3
		res.EnergyCostEUR = m3 * t.GasPriceEURPerM3
		res.CO2Kg = m3 * t.CO2GasKgPerM3

	case model.VariantHeatPumpPV:
		if in.HeatPump == nil {
			return model.VariantResult{}, fmt.Errorf("%w: variant %s requires a heat pump spec", model.ErrInvalidInput, v)
		}
		hp := *in.HeatPump
		elec := demandKWh / hp.JAZ

		var pvGen float64
		if in.PV != nil {
			pvGen = in.PV.AnnualGenerationKWh()
		}
		var battKWh float64
		if in.Battery != nil {
			battKWh = in.Battery.UsableCapacityKWh
		}

		covered := e.coverage.CoveredKWh(coverage.Context{
			ElectricityKWh:     elec,
			PVGenerationKWh:    pvGen,
			BatteryCapacityKWh: battKWh,
		})
		grid := elec - covered
		if grid < 0 {
			grid = 0
		}
		gridCost := grid * t.ElectricityPriceEURPerKWh

		res.CarrierConsumption = elec
		res.EnergyCostEUR = covered*t.PVCostEURPerKWh + gridCost
		res.CO2Kg = grid * t.CO2GridKgPerKWh

		share := 0.0
		if elec > 0 {
			share = covered / elec
		}
		res.HeatPump = &model.HeatPumpBreakdown{
			ElectricityKWh:       elec,
			PVGenerationKWh:      pvGen,
			SelfConsumedKWh:      covered,
			GridKWh:              grid,
			GridCostEUR:          gridCost,
			SelfConsumptionShare: share,
			FullLoadHours:        demandKWh / hp.RatedOutputKW,
		}
	}

	return res, nil
}

// Compare evaluates every requested variant against one heat demand.
func (e *Engine) Compare(in model.ComparisonInputs) (*Comparison, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	demand, err := e.HeatDemand(in.Building)
	if err != nil {
		return nil, err
	}

	variants := in.RequestedVariants()
	cmp := &Comparison{
		HeatDemandKWh: demand,
		Results:       make([]model.VariantResult, 0, len(variants)),
		ByVariant:     make(map[model.Variant]model.VariantResult, len(variants)),
	}
	if in.PV != nil {
		cmp.PVGenerationKWh = in.PV.AnnualGenerationKWh()
	}

	for _, v := range variants {
		res, err := e.variantResult(v, demand, in)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v, err)
		}
		cmp.Results = append(cmp.Results, res)
		cmp.ByVariant[v] = res
	}
	return cmp, nil
}
