package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PayloadSendAppointmentReminder carries one reminder SMS.
type PayloadSendAppointmentReminder struct {
	AppointmentID string
	Phone         string
	Message       string
}

func (distributor *RedisTaskDistributor) DistributeTaskSendAppointmentReminder(
	ctx context.Context,
	payload *PayloadSendAppointmentReminder,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendAppointmentReminder, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Str("appointmentID", payload.AppointmentID).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskSendAppointmentReminder(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendAppointmentReminder
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	if err := processor.smsService.Send(ctx, payload.Phone, payload.Message); err != nil {
		log.Error().Err(err).Str("appointmentID", payload.AppointmentID).Msg("failed to send reminder SMS")
		return err
	}

	// Marking the flag after a successful send keeps retries from spamming
	// the patient; a crash between send and mark may repeat one SMS.
	if err := processor.store.MarkAppointmentReminderSent(ctx, payload.AppointmentID); err != nil {
		log.Error().Err(err).Str("appointmentID", payload.AppointmentID).Msg("failed to mark reminder sent")
		return err
	}

	log.Info().Str("type", task.Type()).Str("appointmentID", payload.AppointmentID).Msg("task processed")

	return nil
}
