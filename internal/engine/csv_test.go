package engine

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"heatcompare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteComparisonCSV(t *testing.T) {
	e := New(nil)
	in := baseInputs()
	in.PV = &model.PVSystem{CapacityKWp: 24.5, SpecificYieldKWhPerKWp: 950}
	in.Battery = &model.BatteryStorage{UsableCapacityKWh: 40}

	cmp, err := e.Compare(in)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "comparison.csv")
	require.NoError(t, WriteComparisonCSV(path, cmp))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + three variants

	assert.Equal(t, "variant", rows[0][0])
	assert.Equal(t, "oil", rows[1][0])
	assert.Equal(t, "gas", rows[2][0])
	assert.Equal(t, "heat_pump_pv", rows[3][0])

	// Fuel rows leave the electricity columns empty.
	assert.Empty(t, rows[1][8])
	assert.NotEmpty(t, rows[3][8])
	assert.Equal(t, "L", rows[1][4])
	assert.Equal(t, "kWh", rows[3][4])
}
