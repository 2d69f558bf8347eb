package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"heatcompare/internal/api/models"
	"heatcompare/internal/config"
	"heatcompare/internal/model"

	"github.com/gin-gonic/gin"
)

// ListVariants handles GET /api/v1/variants
func ListVariants(c *gin.Context) {
	variants := make([]models.VariantInfo, 0, len(model.AllVariants()))
	for _, v := range model.AllVariants() {
		info := models.VariantInfo{
			ID:          string(v),
			Label:       v.Label(),
			CarrierUnit: v.CarrierUnit(),
		}
		if v == model.VariantHeatPumpPV {
			info.RequiredEquipment = []string{"heat_pump"}
		}
		variants = append(variants, info)
	}
	c.JSON(http.StatusOK, gin.H{"variants": variants})
}

// TariffHandler serves the tariff preset catalog
type TariffHandler struct {
	tariffDir string
}

// NewTariffHandler creates a new tariff handler
func NewTariffHandler() *TariffHandler {
	return &TariffHandler{tariffDir: tariffDir()}
}

// GetTariffDir returns the preset directory path (for debugging)
func (h *TariffHandler) GetTariffDir() string {
	return h.tariffDir
}

// ListTariffs handles GET /api/v1/tariffs
func (h *TariffHandler) ListTariffs(c *gin.Context) {
	presets := []models.TariffPresetInfo{}

	entries, err := os.ReadDir(h.tariffDir)
	if err != nil {
		log.Printf("TariffHandler: cannot read %s: %v", h.tariffDir, err)
		c.JSON(http.StatusOK, gin.H{"tariffs": presets})
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.tariffDir, e.Name())
		t, err := config.LoadTariffFile(path)
		if err != nil {
			log.Printf("TariffHandler: skipping %s: %v", path, err)
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		name := t.Name
		if name == "" {
			name = id
		}
		presets = append(presets, models.TariffPresetInfo{
			ID:   id,
			Name: name,
			File: e.Name(),
			Prices: models.TariffPrices{
				OilPriceEURPerL:           t.OilPriceEURPerL,
				GasPriceEURPerM3:          t.GasPriceEURPerM3,
				ElectricityPriceEURPerKWh: t.ElectricityPriceEURPerKWh,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"tariffs": presets})
}

// tariffDir resolves the tariff preset directory, honoring TARIFF_DIR.
func tariffDir() string {
	dir := os.Getenv("TARIFF_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "tariffs")
		} else {
			dir = "./examples/tariffs"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// presetPath maps a preset ID (filename without extension) into the dir.
func presetPath(dir, id string) string {
	return filepath.Join(dir, id+".yaml")
}
