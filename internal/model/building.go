package model

import "fmt"

// BuildingProfile describes the object being heated.
// Address fields are opaque to the engine; they only travel into exports.
type BuildingProfile struct {
	ProjectNumber    string
	Address          string
	PostalCode       string
	City             string
	ConstructionYear int
	BuildStandard    string

	DwellingUnits int
	FloorAreaM2   float64

	// SpecificDemandKWhM2a overrides the construction-year derived value
	// when > 0. kWh per m2 and year.
	SpecificDemandKWhM2a float64
}

func (p BuildingProfile) Validate() error {
	if p.FloorAreaM2 <= 0 {
		return fmt.Errorf("%w: floor area must be > 0 m2", ErrInvalidInput)
	}
	if p.DwellingUnits < 1 {
		return fmt.Errorf("%w: dwelling units must be >= 1", ErrInvalidInput)
	}
	if p.SpecificDemandKWhM2a < 0 {
		return fmt.Errorf("%w: specific heat demand must be >= 0", ErrInvalidInput)
	}
	if p.SpecificDemandKWhM2a == 0 && (p.ConstructionYear < 1850 || p.ConstructionYear > 2100) {
		return fmt.Errorf("%w: construction year %d out of range (needed to derive specific heat demand)", ErrInvalidInput, p.ConstructionYear)
	}
	return nil
}

// EffectiveSpecificDemand returns the specific heat demand in kWh/m2a,
// preferring the explicit override over the construction-era estimate.
func (p BuildingProfile) EffectiveSpecificDemand() float64 {
	if p.SpecificDemandKWhM2a > 0 {
		return p.SpecificDemandKWhM2a
	}
	return SpecificDemandForYear(p.ConstructionYear)
}

// SpecificDemandForYear estimates specific heat demand (kWh/m2a) from the
// construction era. Coarse envelope-quality buckets; callers that know the
// building better should set BuildingProfile.SpecificDemandKWhM2a instead.
func SpecificDemandForYear(year int) float64 {
	switch {
	case year < 1978: // before the first thermal insulation ordinance
		return 170
	case year < 1995:
		return 135
	case year < 2002:
		return 110
	case year < 2016:
		return 85
	default:
		return 55
	}
}
