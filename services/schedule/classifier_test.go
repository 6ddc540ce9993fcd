package schedule

import (
	"testing"

	"tablero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByInterval_SplitShift(t *testing.T) {
	intervals := []models.OpeningInterval{
		interval("13:00", "16:00"),
		interval("20:00", "23:00"),
	}
	slots, err := GenerateSlots(intervals, 60)
	require.NoError(t, err)

	groups := GroupByInterval(slots, intervals)

	require.Len(t, groups, 2)
	assert.Equal(t, "comida", groups[0].Label)
	assert.Equal(t, []string{"13:00", "14:00", "15:00", "16:00"}, groups[0].Slots)
	assert.Equal(t, "cena", groups[1].Label)
	assert.Equal(t, []string{"20:00", "21:00", "22:00", "23:00"}, groups[1].Slots)
}

func TestGroupByInterval_OverlapKeepsDuplicates(t *testing.T) {
	// Malformed overlapping intervals: the shared slot shows up in both
	// labeled groups rather than being silently dropped from one.
	intervals := []models.OpeningInterval{
		interval("12:00", "14:00"),
		interval("13:00", "15:00"),
	}
	slots, err := GenerateSlots(intervals, 60)
	require.NoError(t, err)

	groups := GroupByInterval(slots, intervals)

	require.Len(t, groups, 2)
	assert.Contains(t, groups[0].Slots, "13:00")
	assert.Contains(t, groups[1].Slots, "13:00")
}

func TestGroupByInterval_InactiveIntervalExcluded(t *testing.T) {
	closedMonday := interval("13:00", "16:00")
	closedMonday.IsActive = false
	intervals := []models.OpeningInterval{closedMonday, interval("20:00", "23:00")}

	slots, err := GenerateSlots(intervals, 60)
	require.NoError(t, err)
	groups := GroupByInterval(slots, intervals)

	require.Len(t, groups, 1)
	// The group keeps its original interval index even when earlier
	// intervals are inactive.
	assert.Equal(t, 1, groups[0].IntervalIndex)
	assert.Equal(t, "cena", groups[0].Label)
}

func TestShiftLabel(t *testing.T) {
	assert.Equal(t, "comida", ShiftLabel(0))
	assert.Equal(t, "cena", ShiftLabel(1))
	assert.Equal(t, "turno 3", ShiftLabel(2))
}
