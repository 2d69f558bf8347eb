package main

import (
	"flag"
	"fmt"

	"heatcompare/internal/config"
	"heatcompare/internal/coverage"
	"heatcompare/internal/engine"
	"heatcompare/internal/model"
	"heatcompare/internal/sensitivity"
)

// Demo:
// - Build a five-unit 1994 apartment building with PV, storage and heat pump
// - Compare oil, gas and heat-pump variants under default tariffs
// - Run a short JAZ sweep to show how the models fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	in := model.ComparisonInputs{
		Building: model.BuildingProfile{
			ProjectNumber:    "PRJ-2025-001",
			Address:          "Musterstrasse 1",
			PostalCode:       "79098",
			City:             "Freiburg im Breisgau",
			ConstructionYear: 1994,
			BuildStandard:    "partially refurbished",
			DwellingUnits:    5,
			FloorAreaM2:      350.9,
		},
		PV:       &model.PVSystem{CapacityKWp: 24.5, SpecificYieldKWhPerKWp: 950},
		Battery:  &model.BatteryStorage{UsableCapacityKWh: 40},
		HeatPump: &model.HeatPumpSpec{RatedOutputKW: 13.0, JAZ: 3.2},
		Tariffs:  model.DefaultTariffs(),
	}
	var cov coverage.Model = coverage.Default()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		in, err = cfg.ToInputs()
		if err != nil {
			panic(err)
		}
		cov, err = cfg.CoverageModel()
		if err != nil {
			panic(err)
		}
	}

	e := engine.New(cov)
	cmp, err := e.Compare(in)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Building: %.1f m2, built %d => heat demand %.0f kWh/a\n",
		in.Building.FloorAreaM2, in.Building.ConstructionYear, cmp.HeatDemandKWh)
	if cmp.PVGenerationKWh > 0 {
		fmt.Printf("PV: %.0f kWh/a estimated generation\n", cmp.PVGenerationKWh)
	}
	fmt.Println()

	for _, r := range cmp.Results {
		fmt.Printf("%-26s %10.0f %-3s %8.0f EUR/a %8.2f t CO2/a\n",
			r.Variant.Label(), r.CarrierConsumption, r.CarrierUnit, r.EnergyCostEUR, r.CO2Kg/1000.0)
		if hp := r.HeatPump; hp != nil {
			fmt.Printf("  self-consumed %.0f kWh (%.0f%%), grid %.0f kWh, %.0f full-load hours\n",
				hp.SelfConsumedKWh, hp.SelfConsumptionShare*100, hp.GridKWh, hp.FullLoadHours)
		}
	}

	if in.HeatPump != nil {
		fmt.Println("\nJAZ sweep (heat pump cost only):")
		sw, err := sensitivity.Run(e, in, sensitivity.ParamJAZ, 2.5, 4.5, 0.5)
		if err != nil {
			panic(err)
		}
		for _, p := range sw.Points {
			r := p.Comparison.ByVariant[model.VariantHeatPumpPV]
			fmt.Printf("  JAZ %.1f: %6.0f kWh elec, %6.0f EUR/a\n",
				p.Value, r.HeatPump.ElectricityKWh, r.EnergyCostEUR)
		}
	}
}
