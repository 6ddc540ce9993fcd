package timeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tablero/models"
	"tablero/services/notify"
	"tablero/utils"

	"go.uber.org/zap"
)

// Config holds the grid parameters the controller builds models with.
type Config struct {
	StepMinutes            int
	DefaultDurationMinutes int
	TurnLookaheadMinutes   int
}

// snapshot is the single last-write-wins cell holding the latest committed
// inputs for a date. It is replaced wholesale, never mutated.
type snapshot struct {
	token     uint64
	date      string
	intervals []models.OpeningInterval
	feed      *models.ReservationFeed
	fetchedAt time.Time
}

// Controller owns the staff timeline's data lifecycle: full reloads on date
// change, on an external change cue, or on explicit manual refresh. Every
// reload is tagged with a sequence number; a response for superseded inputs
// is discarded, which doubles as logical cancellation.
type Controller struct {
	schedule ScheduleSource
	feed     FeedSource
	notifier notify.Notifier
	logger   *zap.Logger
	cfg      Config

	clock func() time.Time

	mu  sync.Mutex
	seq uint64
	cur *snapshot
}

func NewController(scheduleSrc ScheduleSource, feedSrc FeedSource, notifier notify.Notifier, logger *zap.Logger, cfg Config) *Controller {
	return &Controller{
		schedule: scheduleSrc,
		feed:     feedSrc,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		clock:    time.Now,
	}
}

// Refresh performs an idempotent full reload for the given date and commits
// the result unless a newer reload has been issued meanwhile. On fetch
// failure an empty snapshot is committed: an obvious empty grid beats
// silently-wrong stale data.
func (c *Controller) Refresh(ctx context.Context, date string) (*models.TimelineModel, error) {
	day, err := time.ParseInLocation(utils.DateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("timeline: invalid date %q: %w", date, err)
	}

	c.mu.Lock()
	c.seq++
	token := c.seq
	c.mu.Unlock()

	intervals, schedErr := c.schedule.GetDaySchedule(ctx, int(day.Weekday()))
	var feed *models.ReservationFeed
	var feedErr error
	if schedErr == nil {
		feed, feedErr = c.feed.GetReservationFeed(ctx, date)
	}

	if schedErr != nil || feedErr != nil {
		cause := schedErr
		if cause == nil {
			cause = feedErr
		}
		c.logger.Error("timeline refresh failed", zap.String("date", date), zap.Error(cause))
		c.notifier.Notify("No se pudieron cargar las reservas. Inténtalo de nuevo.")
		c.commit(&snapshot{token: token, date: date, fetchedAt: c.clock()})
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, cause)
	}

	committed := c.commit(&snapshot{
		token:     token,
		date:      date,
		intervals: intervals,
		feed:      feed,
		fetchedAt: c.clock(),
	})
	if !committed {
		// A newer reload superseded this one; dropping the response is the
		// stale-response-discard contract, not an error.
		c.logger.Debug("stale timeline response discarded", zap.String("date", date), zap.Uint64("token", token))
	}

	model, _ := c.Model("")
	return model, nil
}

// commit installs the snapshot only if no newer reload has been issued.
func (c *Controller) commit(s *snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.token != c.seq {
		return false
	}
	c.cur = s
	return true
}

// Model recomputes the render model from the latest committed snapshot.
// period selects the visible window: "" for the full day, "comida" for the
// first service, "cena" for the second. The bool is false while no reload
// has completed yet (the Loading state).
func (c *Controller) Model(period string) (*models.TimelineModel, bool) {
	c.mu.Lock()
	cur := c.cur
	c.mu.Unlock()
	if cur == nil {
		return nil, false
	}

	var start, end int
	var ok bool
	switch period {
	case "comida":
		start, end, ok = PeriodWindow(cur.intervals, 0)
	case "cena":
		start, end, ok = PeriodWindow(cur.intervals, 1)
	default:
		start, end, ok = DayWindow(cur.intervals)
	}
	if !ok {
		return BuildModel(BuildInput{Date: cur.date, StepMinutes: c.cfg.StepMinutes}), true
	}

	in := BuildInput{
		Date:                   cur.date,
		Intervals:              cur.intervals,
		StepMinutes:            c.cfg.StepMinutes,
		DefaultDurationMinutes: c.cfg.DefaultDurationMinutes,
		TurnLookaheadMinutes:   c.cfg.TurnLookaheadMinutes,
		WindowStartMinute:      start,
		WindowEndMinute:        end,
	}
	if cur.feed != nil {
		in.Tables = cur.feed.Tables
		in.Reservations = cur.feed.Reservations
	}
	if now := c.clock(); now.Format(utils.DateLayout) == cur.date {
		in.Now = &now
	}

	return BuildModel(in), true
}

// CurrentDate returns the date of the latest committed snapshot, empty while
// still loading.
func (c *Controller) CurrentDate() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur == nil {
		return ""
	}
	return c.cur.date
}
