package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tablero/cron"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// debounceWindow collapses repeat change cues for the same date into one
// refresh task.
const debounceWindow = 3 * time.Second

// Bridge subscribes to the platform's change-notification channel and turns
// each cue into a timeline refresh task. A cue only says reservation data
// for some date may have changed; it is never a diff, so the reaction is
// always an idempotent full reload.
type Bridge struct {
	rdb     *redis.Client
	tasks   *asynq.Client
	channel string
	logger  *zap.Logger
}

func NewBridge(rdb *redis.Client, tasks *asynq.Client, channel string, logger *zap.Logger) *Bridge {
	return &Bridge{
		rdb:     rdb,
		tasks:   tasks,
		channel: channel,
		logger:  logger,
	}
}

// Run blocks consuming change cues until the context is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	b.logger.Info("realtime bridge subscribed", zap.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("realtime bridge stopping")
			return
		case msg, ok := <-ch:
			if !ok {
				b.logger.Warn("realtime bridge channel closed")
				return
			}
			b.handle(msg.Payload)
		}
	}
}

func (b *Bridge) handle(payload string) {
	var cue struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal([]byte(payload), &cue); err != nil {
		// Bare "2006-01-02" payloads are accepted as-is.
		cue.Date = payload
	}

	task, err := cron.NewTimelineRefreshTask(cue.Date)
	if err != nil {
		b.logger.Error("failed to build refresh task", zap.Error(err))
		return
	}

	if _, err := b.tasks.Enqueue(task, asynq.Unique(debounceWindow)); err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			b.logger.Debug("change cue debounced", zap.String("date", cue.Date))
			return
		}
		b.logger.Error("failed to enqueue refresh task", zap.String("date", cue.Date), zap.Error(err))
	}
}
