package engine

import (
	"sort"

	"heatcompare/internal/model"
)

// Comparison is the primary artifact of a run: one VariantResult per
// requested variant, all derived from the same heat demand.
type Comparison struct {
	HeatDemandKWh   float64
	PVGenerationKWh float64

	// Results keeps the requested order; ByVariant indexes the same values.
	Results   []model.VariantResult
	ByVariant map[model.Variant]model.VariantResult
}

// RankedByCost returns the variants ordered by annual energy cost, cheapest
// first. Ties keep the comparison order.
func (c *Comparison) RankedByCost() []model.Variant {
	return c.ranked(func(r model.VariantResult) float64 { return r.EnergyCostEUR })
}

// RankedByCO2 returns the variants ordered by annual emissions, lowest first.
func (c *Comparison) RankedByCO2() []model.Variant {
	return c.ranked(func(r model.VariantResult) float64 { return r.CO2Kg })
}

func (c *Comparison) ranked(key func(model.VariantResult) float64) []model.Variant {
	idx := make([]int, len(c.Results))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return key(c.Results[idx[a]]) < key(c.Results[idx[b]])
	})
	out := make([]model.Variant, len(idx))
	for i, j := range idx {
		out[i] = c.Results[j].Variant
	}
	return out
}
