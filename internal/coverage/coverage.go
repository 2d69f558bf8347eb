// Package coverage models how much of the heat pump's annual electricity
// demand is covered by on-site PV (optionally shifted by a battery).
// Models are selected by name with a params map, so config files and API
// requests can switch them without code changes.
package coverage

import (
	"fmt"
	"math"

	"heatcompare/internal/model"
)

// Context is the annual electricity balance a model decides over.
type Context struct {
	ElectricityKWh     float64 // heat pump electricity demand
	PVGenerationKWh    float64 // annual PV output
	BatteryCapacityKWh float64 // usable storage capacity (0 = none)
}

type Model interface {
	Name() string
	// CoveredKWh returns the self-consumed share of ElectricityKWh. The
	// result never exceeds ElectricityKWh or PVGenerationKWh.
	CoveredKWh(ctx Context) float64
}

const (
	DefaultFixedShare     = 0.20
	DefaultDirectUseShare = 0.20
	DefaultCyclesPerYear  = 200.0
)

// FixedShare covers a flat annual-mean fraction of the heat pump demand,
// capped at what the PV actually produces. The battery is ignored.
type FixedShare struct {
	Share float64 // 0..1
}

func (s FixedShare) Name() string { return "fixed_share" }

func (s FixedShare) CoveredKWh(ctx Context) float64 {
	share := clamp(s.Share, 0, 1)
	return math.Min(share*ctx.ElectricityKWh, math.Max(ctx.PVGenerationKWh, 0))
}

// BatteryAware extends the flat direct-use share by what the battery can
// shift: each kWh of usable capacity moves up to CyclesPerYear kWh of PV
// surplus into heat pump operation per year. Coverage is capped by both the
// PV generation and the demand itself, so it is monotone non-decreasing in
// battery capacity and never over-credits.
type BatteryAware struct {
	DirectUseShare float64 // fraction of demand covered without storage
	CyclesPerYear  float64 // equivalent full cycles the battery runs per year
}

func (s BatteryAware) Name() string { return "battery_aware" }

func (s BatteryAware) CoveredKWh(ctx Context) float64 {
	direct := clamp(s.DirectUseShare, 0, 1) * ctx.ElectricityKWh
	shifted := math.Max(ctx.BatteryCapacityKWh, 0) * math.Max(s.CyclesPerYear, 0)
	covered := direct + shifted
	covered = math.Min(covered, math.Max(ctx.PVGenerationKWh, 0))
	return math.Min(covered, ctx.ElectricityKWh)
}

// Default is the model used when none is configured.
func Default() Model {
	return BatteryAware{DirectUseShare: DefaultDirectUseShare, CyclesPerYear: DefaultCyclesPerYear}
}

// FromConfig builds a model from a name + params map (config/API shape).
func FromConfig(name string, params map[string]any) (Model, error) {
	switch name {
	case "", "battery_aware":
		return BatteryAware{
			DirectUseShare: numParam(params, "direct_use_share", DefaultDirectUseShare),
			CyclesPerYear:  numParam(params, "cycles_per_year", DefaultCyclesPerYear),
		}, nil
	case "fixed_share":
		return FixedShare{
			Share: numParam(params, "share", DefaultFixedShare),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown coverage model %q", model.ErrInvalidInput, name)
	}
}

func numParam(m map[string]any, key string, def float64) float64 {
	if v, ok := m[key]; ok && v != nil {
		switch x := v.(type) {
		case float64:
			return x
		case int:
			return float64(x)
		}
	}
	return def
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
