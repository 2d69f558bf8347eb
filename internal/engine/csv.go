package engine

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteComparisonCSV writes one row per variant, suitable for spreadsheets
// and the download surface of a front end.
func WriteComparisonCSV(path string, cmp *Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"variant",
		"label",
		"heat_demand_kwh",
		"carrier_consumption",
		"carrier_unit",
		"energy_cost_eur",
		"co2_kg",
		"co2_t",
		"electricity_kwh",
		"pv_generation_kwh",
		"self_consumed_kwh",
		"grid_kwh",
		"grid_cost_eur",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range cmp.Results {
		row := []string{
			string(r.Variant),
			r.Variant.Label(),
			fmtFloat(r.HeatDemandKWh),
			fmtFloat(r.CarrierConsumption),
			r.CarrierUnit,
			fmtFloat(r.EnergyCostEUR),
			fmtFloat(r.CO2Kg),
			fmtFloat(r.CO2Kg / 1000.0),
			"", "", "", "", "",
		}
		if hp := r.HeatPump; hp != nil {
			row[8] = fmtFloat(hp.ElectricityKWh)
			row[9] = fmtFloat(hp.PVGenerationKWh)
			row[10] = fmtFloat(hp.SelfConsumedKWh)
			row[11] = fmtFloat(hp.GridKWh)
			row[12] = fmtFloat(hp.GridCostEUR)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
