package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"tablero/models"
	"tablero/services/notify"
	"tablero/services/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.Local)
}

func TestCheck_CommitsResult(t *testing.T) {
	priority := 1
	client := &platform.MockClient{
		QueryAvailabilityFunc: func(ctx context.Context, req platform.AvailabilityRequest) ([]models.AvailabilitySlot, error) {
			assert.Equal(t, "2026-03-14", req.Date)
			assert.Equal(t, 4, req.Guests)
			assert.Equal(t, 90, req.DurationMinutes)
			return []models.AvailabilitySlot{
				{Time: "13:00", Capacity: 4, ZoneID: "z1", ZoneName: "Terraza", ZoneColor: "#2e7d32", ZonePriority: &priority},
				{Time: "13:30", Capacity: 2},
			}, nil
		},
	}
	r := NewResolver(client, &notify.Recorder{}, zap.NewNop())

	result, err := r.Check(context.Background(), day(2026, time.March, 14), 4, 90)

	require.NoError(t, err)
	require.Len(t, result.Slots, 2)
	assert.Equal(t, "Terraza", result.Slots[0].ZoneName)
	require.NotNil(t, result.Slots[0].ZonePriority)
	assert.Equal(t, 1, *result.Slots[0].ZonePriority)

	state := r.Latest()
	assert.False(t, state.Loading)
	require.NoError(t, state.Err)
	assert.Equal(t, result, state.Result)
}

func TestCheck_LocalCalendarDate(t *testing.T) {
	var queried string
	client := &platform.MockClient{
		QueryAvailabilityFunc: func(ctx context.Context, req platform.AvailabilityRequest) ([]models.AvailabilitySlot, error) {
			queried = req.Date
			return nil, nil
		},
	}
	r := NewResolver(client, &notify.Recorder{}, zap.NewNop())

	// 23:30 local must stay on its own calendar day regardless of the UTC
	// offset in effect.
	evening := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.Local)
	_, err := r.Check(context.Background(), evening, 2, 90)

	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", queried)
}

func TestCheck_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := &platform.MockClient{
		QueryAvailabilityFunc: func(ctx context.Context, req platform.AvailabilityRequest) ([]models.AvailabilitySlot, error) {
			if req.Date == "2026-03-14" {
				close(started)
				<-release
				return []models.AvailabilitySlot{{Time: "13:00", Capacity: 4}}, nil
			}
			return []models.AvailabilitySlot{{Time: "20:00", Capacity: 2}}, nil
		},
	}
	r := NewResolver(client, &notify.Recorder{}, zap.NewNop())

	type outcome struct {
		result *models.AvailabilityResult
		err    error
	}
	firstDone := make(chan outcome, 1)
	go func() {
		result, err := r.Check(context.Background(), day(2026, time.March, 14), 4, 90)
		firstDone <- outcome{result, err}
	}()
	<-started

	// The user changes the date while the first check is still in flight.
	_, err := r.Check(context.Background(), day(2026, time.March, 15), 2, 90)
	require.NoError(t, err)

	close(release)
	first := <-firstDone
	require.NoError(t, first.err)

	// The superseded caller still gets its own result back, but the visible
	// state belongs to the newest check only.
	assert.Equal(t, "2026-03-14", first.result.Date)
	state := r.Latest()
	require.NotNil(t, state.Result)
	assert.Equal(t, "2026-03-15", state.Result.Date)
	assert.Equal(t, "20:00", state.Result.Slots[0].Time)
}

func TestCheck_FailureNotifiesOnce(t *testing.T) {
	client := &platform.MockClient{
		QueryAvailabilityFunc: func(ctx context.Context, req platform.AvailabilityRequest) ([]models.AvailabilitySlot, error) {
			return nil, errors.New("connection refused")
		},
	}
	recorder := &notify.Recorder{}
	r := NewResolver(client, recorder, zap.NewNop())

	_, err := r.Check(context.Background(), day(2026, time.March, 14), 4, 90)

	require.ErrorIs(t, err, ErrFetchFailed)
	require.Len(t, recorder.Messages(), 1)
	assert.Equal(t, "No se pudo comprobar la disponibilidad. Inténtalo de nuevo.", recorder.Messages()[0])

	// The committed state is an explicit empty result, not the previous one.
	state := r.Latest()
	assert.ErrorIs(t, state.Err, ErrFetchFailed)
	require.NotNil(t, state.Result)
	assert.Empty(t, state.Result.Slots)
	assert.Equal(t, "2026-03-14", state.Result.Date)
}

func TestCheck_EmptySlotsIsNotAnError(t *testing.T) {
	client := &platform.MockClient{
		QueryAvailabilityFunc: func(ctx context.Context, req platform.AvailabilityRequest) ([]models.AvailabilitySlot, error) {
			return []models.AvailabilitySlot{}, nil
		},
	}
	recorder := &notify.Recorder{}
	r := NewResolver(client, recorder, zap.NewNop())

	result, err := r.Check(context.Background(), day(2026, time.March, 14), 12, 90)

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Empty(t, recorder.Messages())
}

func TestLatest_InitialState(t *testing.T) {
	r := NewResolver(&platform.MockClient{}, &notify.Recorder{}, zap.NewNop())

	state := r.Latest()

	assert.False(t, state.Loading)
	assert.Nil(t, state.Result)
	assert.NoError(t, state.Err)
}
