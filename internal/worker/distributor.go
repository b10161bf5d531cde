package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

const (
	TaskSendNotification         = "notification:send"
	TaskSendAppointmentReminder  = "sms:appointment_reminder"
	TaskSendAppointmentConfirmed = "email:appointment_confirmation"
)

/*
This file will contain the codes to create tasks and distributes them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskSendNotification(ctx context.Context, payload *PayloadSendNotification, opts ...asynq.Option) error
	DistributeTaskSendAppointmentReminder(ctx context.Context, payload *PayloadSendAppointmentReminder, opts ...asynq.Option) error
	DistributeTaskSendAppointmentConfirmed(ctx context.Context, payload *PayloadSendAppointmentConfirmed, opts ...asynq.Option) error
}

type RedisTaskDistributor struct {
	client *asynq.Client // client sends tasks to redis queue.
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}
