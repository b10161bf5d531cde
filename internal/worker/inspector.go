package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
)

// ReminderTaskID is the deterministic task id for an appointment's scheduled
// reminder, so the task can be deleted when the appointment is cancelled.
func ReminderTaskID(appointmentID string) string {
	return "reminder:" + appointmentID
}

// ReminderNoticeTaskID is the task id for the in-app reminder notice scheduled
// next to the SMS.
func ReminderNoticeTaskID(appointmentID string) string {
	return "reminder-notice:" + appointmentID
}

type TaskInspector interface {
	CancelAppointmentReminder(ctx context.Context, appointmentID string) error
}

type RedisTaskInspector struct {
	inspector *asynq.Inspector
}

func NewTaskInspector(redisOpt asynq.RedisClientOpt) TaskInspector {
	return &RedisTaskInspector{
		inspector: asynq.NewInspector(redisOpt),
	}
}

// CancelAppointmentReminder drops the scheduled reminder tasks, if any. An
// appointment cancelled before confirmation has no tasks; that is not an error.
func (i *RedisTaskInspector) CancelAppointmentReminder(ctx context.Context, appointmentID string) error {
	for _, taskID := range []string{ReminderTaskID(appointmentID), ReminderNoticeTaskID(appointmentID)} {
		err := i.inspector.DeleteTask(QueueDefault, taskID)
		if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) && !errors.Is(err, asynq.ErrQueueNotFound) {
			return fmt.Errorf("failed to delete reminder task: %w", err)
		}
	}
	return nil
}
