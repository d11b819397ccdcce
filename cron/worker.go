package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"dentalcare/models"
	"dentalcare/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderWorker processes appointment reminder tasks from Redis.
type ReminderWorker struct {
	srv    *asynq.Server
	logger *zap.Logger
}

func NewReminderWorker(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *ReminderWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return &ReminderWorker{srv: srv, logger: logger}
}

// Start runs the worker in the background.
func (w *ReminderWorker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, HandleReminderTask(w.logger))
	if err := w.srv.Start(mux); err != nil {
		return fmt.Errorf("start reminder worker: %w", err)
	}
	w.logger.Info("reminder worker started")
	return nil
}

// Shutdown waits for in-flight reminders and stops the worker.
func (w *ReminderWorker) Shutdown() {
	w.srv.Shutdown()
	w.logger.Info("reminder worker stopped")
}

// HandleReminderTask delivers a reminder. The clinic has no outbound channel
// configured yet, so delivery is a structured log entry.
func HandleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("decode reminder payload: %v: %w", err, asynq.SkipRetry)
		}
		logger.Info("appointment reminder",
			zap.String("booking", payload.BookingID),
			zap.String("patient", payload.PatientEmail),
			zap.String("treatment", payload.Treatment),
			zap.String("date", payload.Date),
			zap.String("slot", payload.Slot))
		return nil
	}
}
