package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"handyhub/config"
	"handyhub/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues reminder tasks on the shared asynq queue.
type Scheduler struct {
	Client *asynq.Client
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues an appointment reminder to fire ahead of
// the booking's date by the configured lead time. Appointments already
// inside the lead window get no reminder.
func (s *Scheduler) ScheduleBookingReminder(b *models.Booking) error {
	lead := time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
	fireAt := b.Date.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:  b.ID,
		UserID:     b.UserID,
		ProviderID: b.ProviderID,
		ServiceID:  b.ServiceID,
		FireDate:   b.Date.Format(time.RFC3339),
		Title:      "Upcoming Appointment",
		Body:       fmt.Sprintf("Your appointment is on %s.", b.Date.Format("2 January, 3:04 PM")),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
