package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"heatcompare/internal/api/models"
	"heatcompare/internal/api/results"
	"heatcompare/internal/config"
	"heatcompare/internal/coverage"
	"heatcompare/internal/engine"
	"heatcompare/internal/model"

	"github.com/gin-gonic/gin"
)

// CompareHandler handles comparison-related requests
type CompareHandler struct {
	store     *results.Store
	tariffDir string
}

// NewCompareHandler creates a new comparison handler
func NewCompareHandler(store *results.Store) *CompareHandler {
	return &CompareHandler{
		store:     store,
		tariffDir: tariffDir(),
	}
}

// RunCompare handles POST /api/v1/compare
func (h *CompareHandler) RunCompare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in, cov, err := h.buildInputs(req)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	cmp, err := engine.New(cov).Compare(in)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := buildCompareResponse(cmp, req.Options.IncludeBreakdown)
	resp.ID = h.store.Put(resp)
	c.JSON(http.StatusOK, resp)
}

// GetComparison handles GET /api/v1/compare/:id
func (h *CompareHandler) GetComparison(c *gin.Context) {
	id := c.Param("id")
	resp, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "comparison not found or expired",
				Details: map[string]interface{}{"id": id},
			},
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// buildInputs maps a request onto engine inputs, resolving the tariff
// preset and overlaying explicit tariff fields.
func (h *CompareHandler) buildInputs(req models.CompareRequest) (model.ComparisonInputs, coverage.Model, error) {
	tariffs := config.TariffConfig{}
	if req.TariffFile != "" {
		loaded, err := config.LoadTariffFile(presetPath(h.tariffDir, req.TariffFile))
		if err != nil {
			return model.ComparisonInputs{}, nil, fmt.Errorf("%w: tariff preset %q: %v", model.ErrInvalidInput, req.TariffFile, err)
		}
		tariffs = loaded
	}
	if req.Tariffs != nil {
		tariffs = config.MergeTariffs(tariffs, tariffOverride(*req.Tariffs))
	}
	tariffs = config.MergeTariffs(config.DefaultTariffConfig(), tariffs)

	in := model.ComparisonInputs{
		Building: model.BuildingProfile{
			ProjectNumber:        req.Building.ProjectNumber,
			Address:              req.Building.Address,
			PostalCode:           req.Building.PostalCode,
			City:                 req.Building.City,
			ConstructionYear:     req.Building.ConstructionYear,
			BuildStandard:        req.Building.BuildStandard,
			DwellingUnits:        req.Building.DwellingUnits,
			FloorAreaM2:          req.Building.FloorAreaM2,
			SpecificDemandKWhM2a: req.Building.SpecificDemandKWhM2a,
		},
		Tariffs: tariffs.ToModel(),
	}
	if req.PV != nil {
		yield := req.PV.SpecificYieldKWhPerKWp
		if req.PV.CapacityKWp > 0 && yield == 0 {
			yield = 950
		}
		in.PV = &model.PVSystem{CapacityKWp: req.PV.CapacityKWp, SpecificYieldKWhPerKWp: yield}
	}
	if req.Battery != nil {
		in.Battery = &model.BatteryStorage{UsableCapacityKWh: req.Battery.UsableCapacityKWh}
	}
	if req.HeatPump != nil {
		in.HeatPump = &model.HeatPumpSpec{RatedOutputKW: req.HeatPump.RatedOutputKW, JAZ: req.HeatPump.JAZ}
	}
	for _, v := range req.Variants {
		in.Variants = append(in.Variants, model.Variant(v))
	}

	covName := ""
	var covParams map[string]any
	if req.Coverage != nil {
		covName = req.Coverage.Name
		covParams = req.Coverage.Params
	}
	cov, err := coverage.FromConfig(covName, covParams)
	if err != nil {
		return model.ComparisonInputs{}, nil, err
	}
	return in, cov, nil
}

func buildCompareResponse(cmp *engine.Comparison, includeBreakdown bool) models.CompareResponse {
	resp := models.CompareResponse{
		Status:          "completed",
		HeatDemandKWh:   cmp.HeatDemandKWh,
		PVGenerationKWh: cmp.PVGenerationKWh,
		Results:         convertResults(cmp.Results, includeBreakdown),
		Rankings: models.Rankings{
			ByCost: variantStrings(cmp.RankedByCost()),
			ByCO2:  variantStrings(cmp.RankedByCO2()),
		},
	}
	return resp
}

func convertResults(rs []model.VariantResult, includeBreakdown bool) []models.VariantResult {
	out := make([]models.VariantResult, len(rs))
	for i, r := range rs {
		out[i] = models.VariantResult{
			Variant:            string(r.Variant),
			Label:              r.Variant.Label(),
			HeatDemandKWh:      r.HeatDemandKWh,
			CarrierConsumption: r.CarrierConsumption,
			CarrierUnit:        r.CarrierUnit,
			EnergyCostEUR:      r.EnergyCostEUR,
			CO2Kg:              r.CO2Kg,
			CO2T:               r.CO2Kg / 1000.0,
		}
		if includeBreakdown && r.HeatPump != nil {
			hp := *r.HeatPump
			out[i].HeatPump = &models.HeatPumpBreakdown{
				ElectricityKWh:       hp.ElectricityKWh,
				PVGenerationKWh:      hp.PVGenerationKWh,
				SelfConsumedKWh:      hp.SelfConsumedKWh,
				GridKWh:              hp.GridKWh,
				GridCostEUR:          hp.GridCostEUR,
				SelfConsumptionShare: hp.SelfConsumptionShare,
				FullLoadHours:        hp.FullLoadHours,
			}
		}
	}
	return out
}

func variantStrings(vs []model.Variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// writeEngineError maps engine error kinds onto HTTP error envelopes.
func writeEngineError(c *gin.Context, err error) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrUnsupportedVariant):
		code = "UNSUPPORTED_VARIANT"
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidInput):
		code = "INVALID_INPUT"
		status = http.StatusBadRequest
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func tariffOverride(t models.TariffsRequest) config.TariffConfig {
	return config.TariffConfig{
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
