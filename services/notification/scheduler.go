// File: services/notification/scheduler.go
package notification

import (
	"context"
	"fmt"
	"time"

	"inkstudio/models"
	"inkstudio/services/tasks"
	"inkstudio/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// aftercareSchedule maps days-after-appointment to the reminder kind sent.
// Day 0 fires the evening of the session with care instructions; later
// check-ins track healing, and the last one asks for a review.
var aftercareSchedule = []struct {
	Days int
	Kind string
}{
	{0, "care_instructions"},
	{3, "check_in"},
	{7, "check_in"},
	{14, "review_request"},
}

const aftercareFireHour = 20 // 8pm local

// ReminderQueue schedules booking reminders onto the asynq queue the worker
// consumes.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue builds a ReminderQueue over an asynq client.
func NewReminderQueue(client *asynq.Client) *ReminderQueue {
	return &ReminderQueue{client: client}
}

// ScheduleBookingReminders enqueues the full aftercare sequence for a new
// booking. Enqueue failures after the first reminder are logged and skipped
// so one broken task does not lose the rest.
func (q *ReminderQueue) ScheduleBookingReminders(ctx context.Context, booking *models.Booking) error {
	day, err := time.Parse("2006-01-02", booking.ScheduledDate)
	if err != nil {
		return fmt.Errorf("booking %s has invalid date %q", booking.ID, booking.ScheduledDate)
	}

	for _, entry := range aftercareSchedule {
		fireAt := day.AddDate(0, 0, entry.Days).Add(aftercareFireHour * time.Hour)
		payload := models.ReminderPayload{
			ReminderID: fmt.Sprintf("%s:%s:%d", booking.ID, entry.Kind, entry.Days),
			BookingID:  booking.ID,
			ClientID:   booking.ClientID,
			ArtistID:   booking.ArtistID,
			Kind:       entry.Kind,
			FireDate:   fireAt.Format(time.RFC3339),
		}

		task, opts, err := tasks.NewReminderTask(payload, fireAt)
		if err != nil {
			return err
		}
		if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
			utils.GetLogger().Error("Failed to enqueue reminder task",
				zap.Error(err), zap.String("reminderID", payload.ReminderID))
		}
	}
	return nil
}
