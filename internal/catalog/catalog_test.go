package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.TimeSlots, 8)
	assert.Len(t, c.Services, 12)
	assert.Len(t, c.Showrooms, 4)

	c, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeFile(t, `
services:
  - id: "1"
    name: Oil Change
    description: Engine oil change
showrooms:
  - id: "1"
    name: Main Service Center
    address: Mumbai Naka
    contact: 1800-001
mechanics:
  "1":
    - id: "1"
      name: Ravi Kumar
      specialization: Engine Specialist
time_slots:
  - "09:00 AM"
  - "10:00 AM"
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "10:00 AM"}, c.Slots())
	assert.Equal(t, "Ravi Kumar", c.Mechanics["1"][0].Name)
	assert.True(t, c.IsValidTimeSlot("10:00 AM"))
	assert.False(t, c.IsValidTimeSlot("01:00 PM"))
}

func TestLoad_EmptySlotsFallBackToDefault(t *testing.T) {
	path := writeFile(t, "services: []\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().TimeSlots, c.TimeSlots)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate slot", "time_slots: [\"09:00 AM\", \"09:00 AM\"]\n"},
		{"mechanic at unknown showroom", "mechanics:\n  \"9\":\n    - name: X\n"},
		{"broken yaml", "services: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSlots_ReturnsCopy(t *testing.T) {
	c := Default()
	slots := c.Slots()
	slots[0] = "changed"
	assert.Equal(t, "09:00 AM", c.TimeSlots[0])
}
