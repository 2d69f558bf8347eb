package models

// CompareResponse represents the response from a comparison run
type CompareResponse struct {
	ID              string          `json:"id,omitempty"`
	Status          string          `json:"status"`
	HeatDemandKWh   float64         `json:"heat_demand_kwh"`
	PVGenerationKWh float64         `json:"pv_generation_kwh,omitempty"`
	Results         []VariantResult `json:"results"`
	Rankings        Rankings        `json:"rankings"`
}

// VariantResult is the annual outcome for one variant
type VariantResult struct {
	Variant            string             `json:"variant"`
	Label              string             `json:"label"`
	HeatDemandKWh      float64            `json:"heat_demand_kwh"`
	CarrierConsumption float64            `json:"carrier_consumption"`
	CarrierUnit        string             `json:"carrier_unit"`
	EnergyCostEUR      float64            `json:"energy_cost_eur"`
	CO2Kg              float64            `json:"co2_kg"`
	CO2T               float64            `json:"co2_t"`
	HeatPump           *HeatPumpBreakdown `json:"heat_pump,omitempty"`
}

// HeatPumpBreakdown splits heat pump electricity into PV and grid shares
type HeatPumpBreakdown struct {
	ElectricityKWh       float64 `json:"electricity_kwh"`
	PVGenerationKWh      float64 `json:"pv_generation_kwh"`
	SelfConsumedKWh      float64 `json:"self_consumed_kwh"`
	GridKWh              float64 `json:"grid_kwh"`
	GridCostEUR          float64 `json:"grid_cost_eur"`
	SelfConsumptionShare float64 `json:"self_consumption_share"`
	FullLoadHours        float64 `json:"full_load_hours"`
}

// Rankings orders the variants by the two headline figures
type Rankings struct {
	ByCost []string `json:"by_cost"` // cheapest first
	ByCO2  []string `json:"by_co2"`  // lowest emissions first
}

// SensitivityResponse represents the response from a parameter sweep
type SensitivityResponse struct {
	Parameter string             `json:"parameter"`
	Points    []SensitivityPoint `json:"points"`
}

// SensitivityPoint is one sweep element
type SensitivityPoint struct {
	Value   float64         `json:"value"`
	Results []VariantResult `json:"results"`
}

// VariantInfo describes one supported variant
type VariantInfo struct {
	ID                string   `json:"id"`
	Label             string   `json:"label"`
	CarrierUnit       string   `json:"carrier_unit"`
	RequiredEquipment []string `json:"required_equipment,omitempty"`
}

// TariffPresetInfo represents one tariff preset file
type TariffPresetInfo struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	File   string       `json:"file"`
	Prices TariffPrices `json:"prices"`
}

// TariffPrices summarizes the headline prices of a preset
type TariffPrices struct {
	OilPriceEURPerL           float64 `json:"oil_price_eur_l"`
	GasPriceEURPerM3          float64 `json:"gas_price_eur_m3"`
	ElectricityPriceEURPerKWh float64 `json:"electricity_price_eur_kwh"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
