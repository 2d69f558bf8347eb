package handlers

import (
	"net/http"

	"heatcompare/internal/api/models"
	"heatcompare/internal/engine"
	"heatcompare/internal/sensitivity"

	"github.com/gin-gonic/gin"
)

// SensitivityHandler handles parameter-sweep requests
type SensitivityHandler struct {
	compare *CompareHandler
}

// NewSensitivityHandler creates a new sensitivity handler. It shares the
// compare handler's request-to-inputs mapping.
func NewSensitivityHandler(compare *CompareHandler) *SensitivityHandler {
	return &SensitivityHandler{compare: compare}
}

// RunSensitivity handles POST /api/v1/sensitivity
func (h *SensitivityHandler) RunSensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	param, err := sensitivity.ParseParameter(req.Parameter)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	in, cov, err := h.compare.buildInputs(req.CompareRequest)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	sw, err := sensitivity.Run(engine.New(cov), in, param, req.From, req.To, req.Step)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildSensitivityResponse(sw, req.Options.IncludeBreakdown))
}

func buildSensitivityResponse(sw *sensitivity.Sweep, includeBreakdown bool) models.SensitivityResponse {
	resp := models.SensitivityResponse{
		Parameter: string(sw.Parameter),
		Points:    make([]models.SensitivityPoint, 0, len(sw.Points)),
	}
	for _, p := range sw.Points {
		resp.Points = append(resp.Points, models.SensitivityPoint{
			Value:   p.Value,
			Results: convertResults(p.Comparison.Results, includeBreakdown),
		})
	}
	return resp
}
