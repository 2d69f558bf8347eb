package models

// CompareRequest represents the request body for running a comparison
type CompareRequest struct {
	Building BuildingRequest  `json:"building" binding:"required"`
	PV       *PVRequest       `json:"pv,omitempty"`
	Battery  *BatteryRequest  `json:"battery,omitempty"`
	HeatPump *HeatPumpRequest `json:"heat_pump,omitempty"`

	// TariffFile names a preset under the tariff directory (without
	// extension). Explicit Tariffs fields override the preset.
	TariffFile string          `json:"tariff_file,omitempty"`
	Tariffs    *TariffsRequest `json:"tariffs,omitempty"`

	Coverage *CoverageRequest `json:"coverage,omitempty"`
	Variants []string         `json:"variants,omitempty"`
	Options  CompareOptions   `json:"options,omitempty"`
}

// BuildingRequest defines the building profile
type BuildingRequest struct {
	ProjectNumber        string  `json:"project_number,omitempty"`
	Address              string  `json:"address,omitempty"`
	PostalCode           string  `json:"postal_code,omitempty"`
	City                 string  `json:"city,omitempty"`
	ConstructionYear     int     `json:"construction_year,omitempty"`
	BuildStandard        string  `json:"build_standard,omitempty"`
	DwellingUnits        int     `json:"dwelling_units" binding:"required"`
	FloorAreaM2          float64 `json:"floor_area_m2" binding:"required"`
	SpecificDemandKWhM2a float64 `json:"specific_heat_demand_kwh_m2a,omitempty"`
}

// PVRequest defines the photovoltaic system
type PVRequest struct {
	CapacityKWp            float64 `json:"capacity_kwp"`
	SpecificYieldKWhPerKWp float64 `json:"specific_yield_kwh_kwp,omitempty"`
}

// BatteryRequest defines the electricity storage
type BatteryRequest struct {
	UsableCapacityKWh float64 `json:"usable_capacity_kwh"`
}

// HeatPumpRequest defines the heat pump equipment
type HeatPumpRequest struct {
	RatedOutputKW float64 `json:"rated_output_kw"`
	JAZ           float64 `json:"jaz"`
}

// TariffsRequest overrides individual price/emission constants
type TariffsRequest struct {
	OilPriceEURPerL           float64 `json:"oil_price_eur_l,omitempty"`
	GasPriceEURPerM3          float64 `json:"gas_price_eur_m3,omitempty"`
	ElectricityPriceEURPerKWh float64 `json:"electricity_price_eur_kwh,omitempty"`
	PVCostEURPerKWh           float64 `json:"pv_cost_eur_kwh,omitempty"`
	OilHeatingValueKWhPerL    float64 `json:"oil_heating_value_kwh_l,omitempty"`
	GasHeatingValueKWhPerM3   float64 `json:"gas_heating_value_kwh_m3,omitempty"`
	OilEfficiency             float64 `json:"oil_efficiency,omitempty"`
	GasEfficiency             float64 `json:"gas_efficiency,omitempty"`
	CO2OilKgPerL              float64 `json:"co2_oil_kg_l,omitempty"`
	CO2GasKgPerM3             float64 `json:"co2_gas_kg_m3,omitempty"`
	CO2GridKgPerKWh           float64 `json:"co2_grid_kg_kwh,omitempty"`
}

// CoverageRequest selects the PV self-consumption model
type CoverageRequest struct {
	Name   string                 `json:"name" binding:"required"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// CompareOptions contains optional comparison parameters
type CompareOptions struct {
	IncludeBreakdown bool `json:"include_breakdown,omitempty"` // default: false
}

// SensitivityRequest represents a request to sweep one parameter
type SensitivityRequest struct {
	CompareRequest
	Parameter string  `json:"parameter" binding:"required"` // "specific_heat_demand" or "jaz"
	From      float64 `json:"from" binding:"required"`
	To        float64 `json:"to" binding:"required"`
	Step      float64 `json:"step" binding:"required"`
}
