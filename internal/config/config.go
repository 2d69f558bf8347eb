package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"heatcompare/internal/coverage"
	"heatcompare/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML): building, equipment,
// tariffs, coverage model, and the variants to evaluate.
type Config struct {
	// Optional: load tariff constants from a preset YAML
	// (e.g. examples/tariffs/*.yaml). Explicit Tariffs fields override
	// the preset.
	TariffFile string `yaml:"tariff_file"`

	Building BuildingConfig  `yaml:"building"`
	PV       *PVConfig       `yaml:"pv"`
	Battery  *BatteryConfig  `yaml:"battery"`
	HeatPump *HeatPumpConfig `yaml:"heat_pump"`
	Tariffs  TariffConfig    `yaml:"tariffs"`
	Coverage CoverageConfig  `yaml:"coverage"`
	Variants []string        `yaml:"variants"`
}

type BuildingConfig struct {
	ProjectNumber        string  `yaml:"project_number"`
	Address              string  `yaml:"address"`
	PostalCode           string  `yaml:"postal_code"`
	City                 string  `yaml:"city"`
	ConstructionYear     int     `yaml:"construction_year"`
	BuildStandard        string  `yaml:"build_standard"`
	DwellingUnits        int     `yaml:"dwelling_units"`
	FloorAreaM2          float64 `yaml:"floor_area_m2"`
	SpecificDemandKWhM2a float64 `yaml:"specific_heat_demand_kwh_m2a"`
}

type PVConfig struct {
	CapacityKWp            float64 `yaml:"capacity_kwp"`
	SpecificYieldKWhPerKWp float64 `yaml:"specific_yield_kwh_kwp"`
}

type BatteryConfig struct {
	UsableCapacityKWh float64 `yaml:"usable_capacity_kwh"`
}

type HeatPumpConfig struct {
	RatedOutputKW float64 `yaml:"rated_output_kw"`
	JAZ           float64 `yaml:"jaz"`
}

type TariffConfig struct {
	Name                      string  `yaml:"name"`
	OilPriceEURPerL           float64 `yaml:"oil_price_eur_l"`
	GasPriceEURPerM3          float64 `yaml:"gas_price_eur_m3"`
	ElectricityPriceEURPerKWh float64 `yaml:"electricity_price_eur_kwh"`
	PVCostEURPerKWh           float64 `yaml:"pv_cost_eur_kwh"`
	OilHeatingValueKWhPerL    float64 `yaml:"oil_heating_value_kwh_l"`
	GasHeatingValueKWhPerM3   float64 `yaml:"gas_heating_value_kwh_m3"`
	OilEfficiency             float64 `yaml:"oil_efficiency"`
	GasEfficiency             float64 `yaml:"gas_efficiency"`
	CO2OilKgPerL              float64 `yaml:"co2_oil_kg_l"`
	CO2GasKgPerM3             float64 `yaml:"co2_gas_kg_m3"`
	CO2GridKgPerKWh           float64 `yaml:"co2_grid_kg_kwh"`
}

type CoverageConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// Load reads, merges, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.TariffFile != "" {
		tariffPath := c.TariffFile
		if !filepath.IsAbs(tariffPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), tariffPath)
			if _, err := os.Stat(cand); err == nil {
				tariffPath = cand
			}
		}
		loaded, err := LoadTariffFile(tariffPath)
		if err != nil {
			return nil, err
		}
		c.Tariffs = MergeTariffs(loaded, c.Tariffs)
	}
	c.Tariffs = MergeTariffs(DefaultTariffConfig(), c.Tariffs)
	if c.PV != nil && c.PV.CapacityKWp > 0 && c.PV.SpecificYieldKWhPerKWp == 0 {
		c.PV.SpecificYieldKWhPerKWp = 950
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the domain inputs.
	in, err := c.ToInputs()
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	if _, err := coverage.FromConfig(c.Coverage.Name, c.Coverage.Params); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// ToInputs maps the config onto the engine's input object.
func (c *Config) ToInputs() (model.ComparisonInputs, error) {
	in := model.ComparisonInputs{
		Building: model.BuildingProfile{
			ProjectNumber:        c.Building.ProjectNumber,
			Address:              c.Building.Address,
			PostalCode:           c.Building.PostalCode,
			City:                 c.Building.City,
			ConstructionYear:     c.Building.ConstructionYear,
			BuildStandard:        c.Building.BuildStandard,
			DwellingUnits:        c.Building.DwellingUnits,
			FloorAreaM2:          c.Building.FloorAreaM2,
			SpecificDemandKWhM2a: c.Building.SpecificDemandKWhM2a,
		},
		Tariffs: c.Tariffs.ToModel(),
	}
	if c.PV != nil {
		in.PV = &model.PVSystem{
			CapacityKWp:            c.PV.CapacityKWp,
			SpecificYieldKWhPerKWp: c.PV.SpecificYieldKWhPerKWp,
		}
	}
	if c.Battery != nil {
		in.Battery = &model.BatteryStorage{UsableCapacityKWh: c.Battery.UsableCapacityKWh}
	}
	if c.HeatPump != nil {
		in.HeatPump = &model.HeatPumpSpec{
			RatedOutputKW: c.HeatPump.RatedOutputKW,
			JAZ:           c.HeatPump.JAZ,
		}
	}
	for _, v := range c.Variants {
		in.Variants = append(in.Variants, model.Variant(v))
	}
	return in, nil
}

// CoverageModel builds the configured coverage model.
func (c *Config) CoverageModel() (coverage.Model, error) {
	return coverage.FromConfig(c.Coverage.Name, c.Coverage.Params)
}

func (t TariffConfig) ToModel() model.Tariffs {
	return model.Tariffs{
		OilPriceEURPerL:           t.OilPriceEURPerL,
		GasPriceEURPerM3:          t.GasPriceEURPerM3,
		ElectricityPriceEURPerKWh: t.ElectricityPriceEURPerKWh,
		PVCostEURPerKWh:           t.PVCostEURPerKWh,
		OilHeatingValueKWhPerL:    t.OilHeatingValueKWhPerL,
		GasHeatingValueKWhPerM3:   t.GasHeatingValueKWhPerM3,
		OilEfficiency:             t.OilEfficiency,
		GasEfficiency:             t.GasEfficiency,
		CO2OilKgPerL:              t.CO2OilKgPerL,
		CO2GasKgPerM3:             t.CO2GasKgPerM3,
		CO2GridKgPerKWh:           t.CO2GridKgPerKWh,
	}
}

type tariffFileWrapper struct {
	Tariffs TariffConfig `yaml:"tariffs"`
}

// LoadTariffFile reads a tariff preset. The file may either wrap the block
// in a `tariffs:` key or be the bare block.
func LoadTariffFile(path string) (TariffConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TariffConfig{}, err
	}
	var w tariffFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TariffConfig{}, err
	}
	if w.Tariffs != (TariffConfig{}) {
		return w.Tariffs, nil
	}
	var t TariffConfig
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return TariffConfig{}, err
	}
	return t, nil
}

// MergeTariffs overlays non-zero fields from override onto base. Used when
// loading a tariff preset and then applying explicit overrides from the
// config or an API request.
func MergeTariffs(base, override TariffConfig) TariffConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.OilPriceEURPerL != 0 {
		out.OilPriceEURPerL = override.OilPriceEURPerL
	}
	if override.GasPriceEURPerM3 != 0 {
		out.GasPriceEURPerM3 = override.GasPriceEURPerM3
	}
	if override.ElectricityPriceEURPerKWh != 0 {
		out.ElectricityPriceEURPerKWh = override.ElectricityPriceEURPerKWh
	}
	if override.PVCostEURPerKWh != 0 {
		out.PVCostEURPerKWh = override.PVCostEURPerKWh
	}
	if override.OilHeatingValueKWhPerL != 0 {
		out.OilHeatingValueKWhPerL = override.OilHeatingValueKWhPerL
	}
	if override.GasHeatingValueKWhPerM3 != 0 {
		out.GasHeatingValueKWhPerM3 = override.GasHeatingValueKWhPerM3
	}
	if override.OilEfficiency != 0 {
		out.OilEfficiency = override.OilEfficiency
	}
	if override.GasEfficiency != 0 {
		out.GasEfficiency = override.GasEfficiency
	}
	if override.CO2OilKgPerL != 0 {
		out.CO2OilKgPerL = override.CO2OilKgPerL
	}
	if override.CO2GasKgPerM3 != 0 {
		out.CO2GasKgPerM3 = override.CO2GasKgPerM3
	}
	if override.CO2GridKgPerKWh != 0 {
		out.CO2GridKgPerKWh = override.CO2GridKgPerKWh
	}
	return out
}

// DefaultTariffConfig mirrors model.DefaultTariffs in config shape.
func DefaultTariffConfig() TariffConfig {
	d := model.DefaultTariffs()
	return TariffConfig{
		Name:                      "defaults",
		OilPriceEURPerL:           d.OilPriceEURPerL,
		GasPriceEURPerM3:          d.GasPriceEURPerM3,
		ElectricityPriceEURPerKWh: d.ElectricityPriceEURPerKWh,
		PVCostEURPerKWh:           d.PVCostEURPerKWh,
		OilHeatingValueKWhPerL:    d.OilHeatingValueKWhPerL,
		GasHeatingValueKWhPerM3:   d.GasHeatingValueKWhPerM3,
		OilEfficiency:             d.OilEfficiency,
		GasEfficiency:             d.GasEfficiency,
		CO2OilKgPerL:              d.CO2OilKgPerL,
		CO2GasKgPerM3:             d.CO2GasKgPerM3,
		CO2GridKgPerKWh:           d.CO2GridKgPerKWh,
	}
}
