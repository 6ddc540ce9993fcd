package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tablero/models"
	"tablero/services/notify"
	"tablero/services/platform"
	"tablero/utils"

	"go.uber.org/zap"
)

// State is the resolver's externally visible request lifecycle.
type State struct {
	Loading bool
	Err     error
	Result  *models.AvailabilityResult
}

// Resolver orchestrates availability checks against the platform RPC. A
// check runs only on explicit caller request, never as an automatic
// recompute on input change.
//
// Every check is tagged with a sequence number; only the response matching
// the newest check may update the resolver state. A response for superseded
// inputs is dropped, which doubles as logical cancellation.
type Resolver struct {
	client   Client
	notifier notify.Notifier
	logger   *zap.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

func NewResolver(client Client, notifier notify.Notifier, logger *zap.Logger) *Resolver {
	return &Resolver{
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Check queries availability for a party on a date. The date is formatted
// from the local calendar day, not UTC, so dates near midnight in negative
// offsets don't land on the wrong day. On failure the caller gets a wrapped
// ErrFetchFailed, the user gets exactly one notification, and the committed
// state becomes an explicit empty result.
func (r *Resolver) Check(ctx context.Context, day time.Time, guests, durationMinutes int) (*models.AvailabilityResult, error) {
	date := day.Format(utils.DateLayout)

	r.mu.Lock()
	r.seq++
	token := r.seq
	r.state.Loading = true
	r.mu.Unlock()

	slots, err := r.client.QueryAvailability(ctx, platform.AvailabilityRequest{
		Date:            date,
		Guests:          guests,
		DurationMinutes: durationMinutes,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrFetchFailed, err)
		r.logger.Error("availability check failed",
			zap.String("date", date), zap.Int("guests", guests), zap.Error(err))
		r.notifier.Notify("No se pudo comprobar la disponibilidad. Inténtalo de nuevo.")
		if token == r.seq {
			r.state = State{
				Err: wrapped,
				Result: &models.AvailabilityResult{
					Date:            date,
					Guests:          guests,
					DurationMinutes: durationMinutes,
					Slots:           []models.AvailabilitySlot{},
				},
			}
		}
		return nil, wrapped
	}

	result := &models.AvailabilityResult{
		Date:            date,
		Guests:          guests,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}

	if token != r.seq {
		// Superseded by a newer check; dropping the commit is an internal
		// no-op, the caller of that newer check owns the visible state.
		r.logger.Debug("stale availability response discarded",
			zap.String("date", date), zap.Uint64("token", token))
		return result, nil
	}

	r.state = State{Result: result}
	return result, nil
}

// Latest returns the resolver's current state: the committed result of the
// newest completed check, or the loading flag while one is in flight.
func (r *Resolver) Latest() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
