package model

import "errors"

// Error kinds reported by the engine. Callers match with errors.Is and map
// them to user-facing validation messages; nothing here is retryable.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnsupportedVariant = errors.New("unsupported variant")
)

// Variant identifies one of the heating-system configurations being compared.
// Keep these values stable; they appear in CSV output and API payloads.
type Variant string

const (
	VariantOil        Variant = "oil"
	VariantGas        Variant = "gas"
	VariantHeatPumpPV Variant = "heat_pump_pv"
)

// AllVariants returns the comparison set in display order.
func AllVariants() []Variant {
	return []Variant{VariantOil, VariantGas, VariantHeatPumpPV}
}

func (v Variant) IsValid() bool {
	switch v {
	case VariantOil, VariantGas, VariantHeatPumpPV:
		return true
	}
	return false
}

// Label is a human-friendly name for tables and CSV rows.
func (v Variant) Label() string {
	switch v {
	case VariantOil:
		return "Oil boiler"
	case VariantGas:
		return "Gas condensing boiler"
	case VariantHeatPumpPV:
		return "Heat pump + PV + storage"
	default:
		return string(v)
	}
}

// CarrierUnit is the unit the variant's energy carrier is metered in.
func (v Variant) CarrierUnit() string {
	switch v {
	case VariantOil:
		return "L"
	case VariantGas:
		return "m3"
	case VariantHeatPumpPV:
		return "kWh"
	default:
		return ""
	}
}

// VariantResult is the annual outcome for one heating variant.
// Units:
// - HeatDemandKWh: kWh/a useful heat
// - CarrierConsumption: in CarrierUnit (L oil, m3 gas, kWh electricity)
// - EnergyCostEUR: EUR/a
// - CO2Kg: kg/a
type VariantResult struct {
	Variant            Variant
	HeatDemandKWh      float64
	CarrierConsumption float64
	CarrierUnit        string
	EnergyCostEUR      float64
	CO2Kg              float64

	// HeatPump carries the electricity balance for VariantHeatPumpPV.
	// Nil for fuel variants.
	HeatPump *HeatPumpBreakdown
}

// HeatPumpBreakdown splits the heat pump's electricity demand into the
// PV-covered share and the grid remainder.
type HeatPumpBreakdown struct {
	ElectricityKWh       float64
	PVGenerationKWh      float64
	SelfConsumedKWh      float64
	GridKWh              float64
	GridCostEUR          float64
	SelfConsumptionShare float64 // SelfConsumedKWh / ElectricityKWh
	FullLoadHours        float64 // heat demand / rated output
}
