package timeline

import (
	"testing"

	"tablero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placement(id string, startMinute, duration int) models.Placement {
	return models.Placement{
		ReservationID:   id,
		TableID:         "t1",
		StartMinute:     startMinute,
		DurationMinutes: duration,
	}
}

func TestNeedsTurn_SecondSeatingWithinLookahead(t *testing.T) {
	// 13:00 for 90 minutes, then a distinct reservation at 15:30: the table
	// must be turned between the two seatings.
	placements := []models.Placement{
		placement("r1", 13*60, 90),
		placement("r2", 15*60+30, 90),
	}

	assert.True(t, NeedsTurn(13*60, placements, 180))
}

func TestNeedsTurn_NoSelfFlag(t *testing.T) {
	// A single long reservation's own continuation never flags itself.
	placements := []models.Placement{placement("r1", 13*60, 90)}

	assert.False(t, NeedsTurn(13*60, placements, 180))
	assert.False(t, NeedsTurn(14*60, placements, 180))
}

func TestNeedsTurn_BeyondLookahead(t *testing.T) {
	placements := []models.Placement{
		placement("r1", 13*60, 90),
		placement("r2", 16*60+30, 90), // 210 minutes later
	}

	assert.False(t, NeedsTurn(13*60, placements, 180))
}

func TestNeedsTurn_EmptySlot(t *testing.T) {
	placements := []models.Placement{placement("r1", 13*60, 90)}

	// 12:00 is unoccupied; nothing to flag.
	assert.False(t, NeedsTurn(12*60, placements, 180))
}

func TestNeedsTurn_OverlappingPlacements(t *testing.T) {
	// Upstream assignment should prevent overlap, but when it happens the
	// detector still reports the turn instead of crashing or merging.
	placements := []models.Placement{
		placement("r1", 13*60, 120),
		placement("r2", 14*60, 90),
	}

	assert.True(t, NeedsTurn(13*60, placements, 180))
}

func TestPlacementAt(t *testing.T) {
	placements := []models.Placement{placement("r1", 13*60, 90)}

	occupying := PlacementAt(13*60, placements)
	require.NotNil(t, occupying)
	assert.Equal(t, "r1", occupying.ReservationID)

	// Half-open on the minute axis: the end minute is free.
	assert.Nil(t, PlacementAt(14*60+30, placements))
	assert.NotNil(t, PlacementAt(14*60+29, placements))
}
