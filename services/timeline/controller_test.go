package timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"tablero/models"
	"tablero/services/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scheduleSourceFunc func(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error)

func (f scheduleSourceFunc) GetDaySchedule(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error) {
	return f(ctx, dayOfWeek)
}

type feedSourceFunc func(ctx context.Context, date string) (*models.ReservationFeed, error)

func (f feedSourceFunc) GetReservationFeed(ctx context.Context, date string) (*models.ReservationFeed, error) {
	return f(ctx, date)
}

func testConfig() Config {
	return Config{StepMinutes: 30, DefaultDurationMinutes: 90, TurnLookaheadMinutes: 180}
}

func splitShiftSchedule(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error) {
	return []models.OpeningInterval{
		openInterval("13:00", "16:00"),
		openInterval("20:00", "23:30"),
	}, nil
}

func staticFeed(ctx context.Context, date string) (*models.ReservationFeed, error) {
	return &models.ReservationFeed{
		Date:   date,
		Tables: []models.Table{{ID: "t1", Name: "Mesa 1", Capacity: 4}},
		Reservations: []models.Reservation{
			{ID: "r1", TableID: "t1", Date: date, Time: "13:30", Guests: 2, CustomerName: "Ruiz"},
		},
	}, nil
}

func TestControllerRefresh_CommitsSnapshot(t *testing.T) {
	c := NewController(scheduleSourceFunc(splitShiftSchedule), feedSourceFunc(staticFeed), &notify.Recorder{}, zap.NewNop(), testConfig())

	model, err := c.Refresh(context.Background(), "2026-03-14")

	require.NoError(t, err)
	require.NotNil(t, model)
	assert.False(t, model.Closed)
	assert.Equal(t, "2026-03-14", c.CurrentDate())
	require.Len(t, model.Rows, 1)
	assert.Len(t, model.Rows[0].Blocks, 1)
}

func TestControllerModel_LoadingBeforeFirstRefresh(t *testing.T) {
	c := NewController(scheduleSourceFunc(splitShiftSchedule), feedSourceFunc(staticFeed), &notify.Recorder{}, zap.NewNop(), testConfig())

	model, ok := c.Model("")

	assert.False(t, ok)
	assert.Nil(t, model)
	assert.Empty(t, c.CurrentDate())
}

func TestControllerModel_PeriodWindows(t *testing.T) {
	c := NewController(scheduleSourceFunc(splitShiftSchedule), feedSourceFunc(staticFeed), &notify.Recorder{}, zap.NewNop(), testConfig())
	_, err := c.Refresh(context.Background(), "2026-03-14")
	require.NoError(t, err)

	full, ok := c.Model("")
	require.True(t, ok)
	assert.Equal(t, 13*60, full.WindowStartMinute)
	assert.Equal(t, 23*60+30, full.WindowEndMinute)

	lunch, ok := c.Model("comida")
	require.True(t, ok)
	assert.Equal(t, 13*60, lunch.WindowStartMinute)
	assert.Equal(t, 16*60, lunch.WindowEndMinute)

	dinner, ok := c.Model("cena")
	require.True(t, ok)
	assert.Equal(t, 20*60, dinner.WindowStartMinute)
	assert.Equal(t, 23*60+30, dinner.WindowEndMinute)
}

func TestControllerRefresh_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	feed := feedSourceFunc(func(ctx context.Context, date string) (*models.ReservationFeed, error) {
		if date == "2026-03-14" {
			close(started)
			<-release
		}
		return staticFeed(ctx, date)
	})
	c := NewController(scheduleSourceFunc(splitShiftSchedule), feed, &notify.Recorder{}, zap.NewNop(), testConfig())

	firstDone := make(chan error, 1)
	go func() {
		_, err := c.Refresh(context.Background(), "2026-03-14")
		firstDone <- err
	}()
	<-started

	// A newer reload lands while the first is still in flight.
	_, err := c.Refresh(context.Background(), "2026-03-15")
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-firstDone)

	// The superseded response never overwrites the newer snapshot.
	assert.Equal(t, "2026-03-15", c.CurrentDate())
	model, ok := c.Model("")
	require.True(t, ok)
	assert.Equal(t, "2026-03-15", model.Date)
}

func TestControllerRefresh_FetchFailure(t *testing.T) {
	schedule := scheduleSourceFunc(func(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error) {
		return nil, errors.New("connection refused")
	})
	recorder := &notify.Recorder{}
	c := NewController(schedule, feedSourceFunc(staticFeed), recorder, zap.NewNop(), testConfig())

	_, err := c.Refresh(context.Background(), "2026-03-14")

	require.ErrorIs(t, err, ErrFetchFailed)
	require.Len(t, recorder.Messages(), 1)
	assert.Equal(t, "No se pudieron cargar las reservas. Inténtalo de nuevo.", recorder.Messages()[0])

	// The failure commits an empty snapshot: an explicit empty grid instead of
	// stale data from a previous date.
	assert.Equal(t, "2026-03-14", c.CurrentDate())
	model, ok := c.Model("")
	require.True(t, ok)
	assert.True(t, model.Closed)
	assert.Empty(t, model.Rows)
}

func TestControllerRefresh_InvalidDate(t *testing.T) {
	recorder := &notify.Recorder{}
	c := NewController(scheduleSourceFunc(splitShiftSchedule), feedSourceFunc(staticFeed), recorder, zap.NewNop(), testConfig())

	_, err := c.Refresh(context.Background(), "14/03/2026")

	require.Error(t, err)
	assert.Empty(t, recorder.Messages())
	assert.Empty(t, c.CurrentDate())
}

func TestControllerModel_NowMarkerOnlyForSnapshotDate(t *testing.T) {
	c := NewController(scheduleSourceFunc(splitShiftSchedule), feedSourceFunc(staticFeed), &notify.Recorder{}, zap.NewNop(), testConfig())
	c.clock = func() time.Time {
		return time.Date(2026, 3, 14, 14, 0, 0, 0, time.Local)
	}

	_, err := c.Refresh(context.Background(), "2026-03-14")
	require.NoError(t, err)
	model, ok := c.Model("")
	require.True(t, ok)
	assert.NotNil(t, model.NowMarkerPct)

	_, err = c.Refresh(context.Background(), "2026-03-20")
	require.NoError(t, err)
	model, ok = c.Model("")
	require.True(t, ok)
	assert.Nil(t, model.NowMarkerPct)
}
