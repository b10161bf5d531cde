package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/katatrina/dentcare-BE/internal/mailer"
	"github.com/rs/zerolog/log"
)

// PayloadSendAppointmentConfirmed carries one confirmation email.
type PayloadSendAppointmentConfirmed struct {
	To              string
	PatientName     string
	AppointmentCode string
	Treatment       string
	Slot            string
	DentistName     string
}

func (distributor *RedisTaskDistributor) DistributeTaskSendAppointmentConfirmed(
	ctx context.Context,
	payload *PayloadSendAppointmentConfirmed,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendAppointmentConfirmed, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Str("appointmentCode", payload.AppointmentCode).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskSendAppointmentConfirmed(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendAppointmentConfirmed
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	err := processor.mailService.SendAppointmentConfirmation(ctx, mailer.AppointmentConfirmationPayload{
		To:              payload.To,
		PatientName:     payload.PatientName,
		AppointmentCode: payload.AppointmentCode,
		Treatment:       payload.Treatment,
		Slot:            payload.Slot,
		DentistName:     payload.DentistName,
	})
	if err != nil {
		log.Error().Err(err).Str("appointmentCode", payload.AppointmentCode).Msg("failed to send confirmation email")
		return err
	}

	log.Info().Str("type", task.Type()).Str("appointmentCode", payload.AppointmentCode).Msg("task processed")

	return nil
}
