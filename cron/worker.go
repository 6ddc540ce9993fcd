package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tablero/config"
	"tablero/services/timeline"

	"github.com/hibiken/asynq"
)

const TypeTimelineRefresh = "timeline:refresh"

type refreshPayload struct {
	Date string `json:"date"`
}

// NewTimelineRefreshTask builds the task enqueued for a change cue. Tasks
// for the same date collapse under asynq uniqueness, which debounces bursts
// of notifications.
func NewTimelineRefreshTask(date string) (*asynq.Task, error) {
	payload, err := json.Marshal(refreshPayload{Date: date})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTimelineRefresh, payload), nil
}

// InitRefreshWorker runs the async worker in background.
func InitRefreshWorker(ctrl *timeline.Controller) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTimelineRefresh, handleRefreshTask(ctrl))

	// Start async worker with retry logic
	go func() {
		log.Println("[RefreshWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RefreshWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RefreshWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRefreshTask(ctrl *timeline.Controller) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p refreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RefreshWorker] 🔴 Invalid payload: %v", err)
			return err
		}

		date := p.Date
		if date == "" {
			// A cue without a date means "something changed"; reload the
			// date currently in view, if any.
			date = ctrl.CurrentDate()
		}
		if date == "" {
			return nil
		}

		if _, err := ctrl.Refresh(ctx, date); err != nil {
			log.Printf("[RefreshWorker] 🔴 Refresh failed for %s: %v", date, err)
			return err
		}
		return nil
	}
}
