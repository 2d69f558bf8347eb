package model

import "fmt"

// Tariffs bundles the price and emission constants a comparison runs under.
// They are passed explicitly with every computation; the engine reads no
// ambient configuration.
//
// Units:
// - fuel prices: EUR/L and EUR/m3; electricity and PV cost: EUR/kWh
// - heating values: kWh per L / m3
// - efficiencies: fraction of heating value delivered as useful heat
// - emission factors: kg CO2 per L / m3 / kWh
type Tariffs struct {
	OilPriceEURPerL           float64
	GasPriceEURPerM3          float64
	ElectricityPriceEURPerKWh float64
	// PVCostEURPerKWh is the levelized cost of self-consumed PV electricity
	// (cost equivalence, not a market price).
	PVCostEURPerKWh float64

	OilHeatingValueKWhPerL  float64
	GasHeatingValueKWhPerM3 float64
	OilEfficiency           float64
	GasEfficiency           float64

	CO2OilKgPerL    float64
	CO2GasKgPerM3   float64
	CO2GridKgPerKWh float64
}

// DefaultTariffs returns conservative German residential figures.
func DefaultTariffs() Tariffs {
	return Tariffs{
		OilPriceEURPerL:           1.05,
		GasPriceEURPerM3:          1.20,
		ElectricityPriceEURPerKWh: 0.26,
		PVCostEURPerKWh:           0.12,
		OilHeatingValueKWhPerL:    10.0,
		GasHeatingValueKWhPerM3:   10.0,
		OilEfficiency:             0.85,
		GasEfficiency:             0.95,
		CO2OilKgPerL:              2.65,
		CO2GasKgPerM3:             2.00,
		CO2GridKgPerKWh:           0.35,
	}
}

func (t Tariffs) Validate() error {
	if t.OilPriceEURPerL < 0 || t.GasPriceEURPerM3 < 0 || t.ElectricityPriceEURPerKWh < 0 || t.PVCostEURPerKWh < 0 {
		return fmt.Errorf("%w: prices must be >= 0", ErrInvalidInput)
	}
	if t.OilHeatingValueKWhPerL <= 0 || t.GasHeatingValueKWhPerM3 <= 0 {
		return fmt.Errorf("%w: heating values must be > 0", ErrInvalidInput)
	}
	if t.OilEfficiency <= 0 || t.OilEfficiency > 1 {
		return fmt.Errorf("%w: oil efficiency must be in (0, 1]", ErrInvalidInput)
	}
	// Condensing boilers referenced to net calorific value can slightly
	// exceed 1.
	if t.GasEfficiency <= 0 || t.GasEfficiency > 1.1 {
		return fmt.Errorf("%w: gas efficiency must be in (0, 1.1]", ErrInvalidInput)
	}
	if t.CO2OilKgPerL < 0 || t.CO2GasKgPerM3 < 0 || t.CO2GridKgPerKWh < 0 {
		return fmt.Errorf("%w: emission factors must be >= 0", ErrInvalidInput)
	}
	return nil
}
