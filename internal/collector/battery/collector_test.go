package battery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

func writeSupply(t *testing.T, root, name string, attrs map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for attr, value := range attrs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, attr), []byte(value+"\n"), 0o644))
	}
}

func collect(t *testing.T, root string) (*BatterySnapshot, error) {
	t.Helper()
	return NewCollector(logger.Nop(), root).Collect(context.Background())
}

func TestCollectMissingClass(t *testing.T) {
	snap, err := collect(t, filepath.Join(t.TempDir(), "power_supply"))
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestCollectNoBattery(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "AC", map[string]string{"type": "Mains", "online": "1"})

	snap, err := collect(t, root)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestCollectIgnoresPeripheralBatteries(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "hidpp_battery_0", map[string]string{
		"type":     "Battery",
		"scope":    "Device",
		"capacity": "40",
	})

	snap, err := collect(t, root)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name        string
		supplies    map[string]map[string]string
		wantName    string
		wantPercent float64
		wantState   domain.PowerState
	}{
		{
			name: "energy ratio with ac online",
			supplies: map[string]map[string]string{
				"BAT0": {"type": "Battery", "energy_now": "25000000", "energy_full": "50000000", "status": "Discharging"},
				"AC":   {"type": "Mains", "online": "1"},
			},
			wantName:    "BAT0",
			wantPercent: 50,
			wantState:   domain.PowerPlugged,
		},
		{
			name: "charge ratio with ac offline",
			supplies: map[string]map[string]string{
				"BAT1": {"type": "Battery", "charge_now": "3000000", "charge_full": "4000000", "status": "Charging"},
				"ADP1": {"type": "Mains", "online": "0"},
			},
			wantName:    "BAT1",
			wantPercent: 75,
			wantState:   domain.PowerUnplugged,
		},
		{
			name: "capacity and status only",
			supplies: map[string]map[string]string{
				"BAT0": {"type": "Battery", "capacity": "88", "status": "Full"},
			},
			wantName:    "BAT0",
			wantPercent: 88,
			wantState:   domain.PowerPlugged,
		},
		{
			name: "discharging status",
			supplies: map[string]map[string]string{
				"BAT0": {"type": "Battery", "capacity": "30", "status": "Discharging"},
			},
			wantName:    "BAT0",
			wantPercent: 30,
			wantState:   domain.PowerUnplugged,
		},
		{
			name: "unknown status",
			supplies: map[string]map[string]string{
				"BAT0": {"type": "Battery", "capacity": "50", "status": "Not charging"},
			},
			wantName:    "BAT0",
			wantPercent: 50,
			wantState:   domain.PowerUnknown,
		},
		{
			name: "untyped supplies matched by name",
			supplies: map[string]map[string]string{
				"BAT0": {"capacity": "61"},
				"ACAD": {"online": "1"},
			},
			wantName:    "BAT0",
			wantPercent: 61,
			wantState:   domain.PowerPlugged,
		},
		{
			name: "overfull reading is not clamped",
			supplies: map[string]map[string]string{
				"BAT0": {"type": "Battery", "energy_now": "60000000", "energy_full": "40000000"},
			},
			wantName:    "BAT0",
			wantPercent: 150,
			wantState:   domain.PowerUnknown,
		},
		{
			name: "lowest name wins",
			supplies: map[string]map[string]string{
				"BAT1": {"type": "Battery", "capacity": "10"},
				"BAT0": {"type": "Battery", "capacity": "90"},
			},
			wantName:    "BAT0",
			wantPercent: 90,
			wantState:   domain.PowerUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for name, attrs := range tt.supplies {
				writeSupply(t, root, name, attrs)
			}

			snap, err := collect(t, root)
			require.NoError(t, err)
			require.NotNil(t, snap)

			assert.Equal(t, tt.wantName, snap.Name)
			assert.InDelta(t, tt.wantPercent, snap.Percent, 0.001)
			assert.Equal(t, tt.wantState, snap.PowerPlugged)
		})
	}
}

func TestCollectUnreadableCharge(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", map[string]string{"type": "Battery", "status": "Charging"})

	snap, err := collect(t, root)
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoCharge)
}

func TestNewCollectorDefaultRoot(t *testing.T) {
	assert.Equal(t, DefaultRoot, NewCollector(logger.Nop(), "").root)
}
