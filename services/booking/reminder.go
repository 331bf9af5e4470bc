package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"citixo/config"
	"citixo/models"

	"github.com/hibiken/asynq"
)

// TypeReminderSend is the asynq task type for scheduled booking reminders.
const TypeReminderSend = "reminder:send"

// reminderLead is how long before the scheduled time the reminder fires.
const reminderLead = 2 * time.Hour

// ReminderScheduler enqueues delayed reminder tasks on the Redis-backed
// queue; cron.InitReminderWorker consumes them.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler on the configured reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues a reminder firing two hours before the
// booking's scheduled time. Bookings already inside that window get none.
func (r *ReminderScheduler) ScheduleBookingReminder(b *models.Booking) error {
	scheduledAt, err := b.ScheduledAt()
	if err != nil {
		return fmt.Errorf("unparseable schedule for booking %s: %w", b.BookingID, err)
	}
	fireAt := scheduledAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: b.BookingID,
		UserID:    b.UserID,
		Title:     "Upcoming service booking",
		Body:      fmt.Sprintf("Your %s booking is scheduled for %s at %s", b.ServiceDetails.Name, b.ScheduledDate, b.ScheduledTime),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, data)
	if _, err := r.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
