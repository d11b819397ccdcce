package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"dentalcare/models"
	"dentalcare/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandleReminderTask(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := HandleReminderTask(zap.New(core))

	task, _, err := tasks.NewReminderTask(models.ReminderPayload{
		BookingID:    "b-1",
		PatientEmail: "ann@example.com",
		Treatment:    "Cleaning",
		Date:         "2024-01-05",
		Slot:         "9AM",
	}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), task))
	entries := logs.FilterMessage("appointment reminder").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ann@example.com", entries[0].ContextMap()["patient"])
}

func TestHandleReminderTaskBadPayloadSkipsRetry(t *testing.T) {
	handler := HandleReminderTask(zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeSendReminder, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
