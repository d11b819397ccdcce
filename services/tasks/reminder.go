package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dentalcare/models"
	"dentalcare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

var slotLayouts = []string{"03:04 PM", "3:04 PM", "03.04 PM", "3.04 PM", "03:04PM", "3:04PM", "03 PM", "3 PM", "03PM", "3PM", "15:04"}

// NewReminderTask builds the reminder task for payload, processed at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.BookingID),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler queues a reminder Lead before each appointment.
type ReminderScheduler struct {
	Queue       Enqueuer
	DateLayouts []string
	Lead        time.Duration
	Location    *time.Location
	Logger      *zap.Logger
	Now         func() time.Time
}

// AppointmentTime combines the booking date and the start of its slot label.
// Slots whose start cannot be parsed resolve to the start of the day.
func AppointmentTime(date, slot string, dateLayouts []string, loc *time.Location) (time.Time, error) {
	day, err := utils.ParseDate(date, dateLayouts)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute := 0, 0
	start := strings.TrimSpace(strings.SplitN(slot, "-", 2)[0])
	for _, layout := range slotLayouts {
		if t, err := time.Parse(layout, start); err == nil {
			hour, minute = t.Hour(), t.Minute()
			break
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// ScheduleReminder enqueues the reminder for b. Bookings with unparseable
// dates, or whose reminder time has already passed, are skipped.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, b models.Booking) error {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	at, err := AppointmentTime(b.Date, b.Slot, s.DateLayouts, loc)
	if err != nil {
		s.Logger.Debug("reminder skipped: date not parseable", zap.String("date", b.Date))
		return nil
	}
	fireAt := at.Add(-s.Lead)
	if !fireAt.After(now()) {
		s.Logger.Debug("reminder skipped: appointment too close", zap.String("booking", b.ID))
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		BookingID:    b.ID,
		PatientEmail: b.PatientEmail,
		Treatment:    b.Treatment,
		Date:         b.Date,
		Slot:         b.Slot,
	}, fireAt)
	if err != nil {
		return err
	}

	info, err := s.Queue.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	s.Logger.Info("reminder scheduled", zap.String("booking", b.ID), zap.String("task", info.ID), zap.Time("at", fireAt))
	return nil
}
