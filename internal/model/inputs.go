package model

import "fmt"

// ComparisonInputs is the canonical "inputs to the engine" object: building,
// optional equipment, tariffs, and the variants to evaluate. It is assembled
// once at the system boundary (config file or API request) and consumed
// synchronously; the engine never mutates it.
type ComparisonInputs struct {
	Building BuildingProfile
	PV       *PVSystem
	Battery  *BatteryStorage
	HeatPump *HeatPumpSpec
	Tariffs  Tariffs

	// Variants to compute; empty means all of AllVariants().
	Variants []Variant
}

// RequestedVariants resolves the variant list, defaulting to all.
func (in ComparisonInputs) RequestedVariants() []Variant {
	if len(in.Variants) == 0 {
		return AllVariants()
	}
	return in.Variants
}

// Validate checks everything that does not depend on the chosen variant.
// Variant-specific equipment presence is checked at computation time.
func (in ComparisonInputs) Validate() error {
	if err := in.Building.Validate(); err != nil {
		return err
	}
	if err := in.Tariffs.Validate(); err != nil {
		return err
	}
	if in.PV != nil {
		if err := in.PV.Validate(); err != nil {
			return err
		}
	}
	if in.Battery != nil {
		if err := in.Battery.Validate(); err != nil {
			return err
		}
		if in.Battery.UsableCapacityKWh > 0 && (in.PV == nil || in.PV.CapacityKWp == 0) {
			return fmt.Errorf("%w: battery storage requires a pv system", ErrInvalidInput)
		}
	}
	if in.HeatPump != nil {
		if err := in.HeatPump.Validate(); err != nil {
			return err
		}
	}
	for _, v := range in.Variants {
		if !v.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnsupportedVariant, string(v))
		}
	}
	return nil
}
