package model

import "fmt"

// PVSystem describes a rooftop photovoltaic installation.
// Units:
// - CapacityKWp: kWp installed
// - SpecificYieldKWhPerKWp: kWh per kWp and year (site/orientation dependent)
type PVSystem struct {
	CapacityKWp            float64
	SpecificYieldKWhPerKWp float64
}

func (p PVSystem) Validate() error {
	if p.CapacityKWp < 0 {
		return fmt.Errorf("%w: pv capacity must be >= 0 kWp", ErrInvalidInput)
	}
	if p.CapacityKWp > 0 && (p.SpecificYieldKWhPerKWp < 300 || p.SpecificYieldKWhPerKWp > 1500) {
		return fmt.Errorf("%w: pv specific yield must be within 300..1500 kWh/kWp*a", ErrInvalidInput)
	}
	return nil
}

// AnnualGenerationKWh is the estimated yearly PV output.
func (p PVSystem) AnnualGenerationKWh() float64 {
	return p.CapacityKWp * p.SpecificYieldKWhPerKWp
}

// BatteryStorage describes a stationary electricity storage paired with PV.
type BatteryStorage struct {
	UsableCapacityKWh float64
}

func (b BatteryStorage) Validate() error {
	if b.UsableCapacityKWh < 0 {
		return fmt.Errorf("%w: battery capacity must be >= 0 kWh", ErrInvalidInput)
	}
	return nil
}

// HeatPumpSpec describes the heat pump variant's equipment.
// JAZ is the seasonal performance factor: heat delivered per kWh of
// electricity, averaged over a year.
type HeatPumpSpec struct {
	RatedOutputKW float64
	JAZ           float64
}

func (h HeatPumpSpec) Validate() error {
	if h.RatedOutputKW <= 0 {
		return fmt.Errorf("%w: heat pump rated output must be > 0 kW", ErrInvalidInput)
	}
	if h.JAZ <= 1 || h.JAZ > 10 {
		return fmt.Errorf("%w: JAZ must be within (1, 10]", ErrInvalidInput)
	}
	return nil
}
