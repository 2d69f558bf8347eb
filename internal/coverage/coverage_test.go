package coverage

import (
	"testing"

	"heatcompare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedShare(t *testing.T) {
	m := FixedShare{Share: 0.2}

	assert.InDelta(t, 1000.0, m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000}), 1e-9)

	t.Run("capped by pv generation", func(t *testing.T) {
		assert.InDelta(t, 300.0, m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 300}), 1e-9)
	})

	t.Run("zero without pv", func(t *testing.T) {
		assert.Zero(t, m.CoveredKWh(Context{ElectricityKWh: 5000}))
	})

	t.Run("battery is ignored", func(t *testing.T) {
		with := m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000, BatteryCapacityKWh: 50})
		without := m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000})
		assert.Equal(t, without, with)
	})

	t.Run("share clamped to [0,1]", func(t *testing.T) {
		assert.InDelta(t, 5000.0, FixedShare{Share: 1.7}.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000}), 1e-9)
		assert.Zero(t, FixedShare{Share: -1}.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000}))
	})
}

func TestBatteryAware(t *testing.T) {
	m := BatteryAware{DirectUseShare: 0.2, CyclesPerYear: 200}

	t.Run("battery shifts pv surplus", func(t *testing.T) {
		got := m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000, BatteryCapacityKWh: 5})
		assert.InDelta(t, 0.2*5000+5*200, got, 1e-9)
	})

	t.Run("never exceeds demand", func(t *testing.T) {
		got := m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000, BatteryCapacityKWh: 100})
		assert.InDelta(t, 5000.0, got, 1e-9)
	})

	t.Run("never exceeds pv generation", func(t *testing.T) {
		got := m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 1200, BatteryCapacityKWh: 100})
		assert.InDelta(t, 1200.0, got, 1e-9)
	})

	t.Run("monotone in battery capacity", func(t *testing.T) {
		prev := -1.0
		for _, b := range []float64{0, 1, 5, 10, 40, 400} {
			got := m.CoveredKWh(Context{ElectricityKWh: 5000, PVGenerationKWh: 9000, BatteryCapacityKWh: b})
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	})
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		wantName string
		hasError bool
	}{
		{"", nil, "battery_aware", false},
		{"battery_aware", map[string]any{"direct_use_share": 0.3, "cycles_per_year": 150}, "battery_aware", false},
		{"fixed_share", map[string]any{"share": 0.25}, "fixed_share", false},
		{"fixed_share", map[string]any{"share": 1}, "fixed_share", false}, // int param
		{"oracle", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromConfig(tt.name, tt.params)
			if tt.hasError {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.Name())
		})
	}

	t.Run("params applied", func(t *testing.T) {
		m, err := FromConfig("battery_aware", map[string]any{"direct_use_share": 0.5, "cycles_per_year": 100})
		require.NoError(t, err)
		got := m.CoveredKWh(Context{ElectricityKWh: 1000, PVGenerationKWh: 5000, BatteryCapacityKWh: 2})
		assert.InDelta(t, 0.5*1000+2*100, got, 1e-9)
	})
}
