package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/mailer"
	"github.com/katatrina/dentcare-BE/internal/sms"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type RedisTaskProcessor struct {
	server      *asynq.Server
	store       *firedb.Store
	mailService mailer.EmailSender
	smsService  *sms.Client
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store *firedb.Store, mailService mailer.EmailSender, smsService *sms.Client) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		mailService: mailService,
		smsService:  smsService,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)
	mux.HandleFunc(TaskSendAppointmentReminder, processor.ProcessTaskSendAppointmentReminder)
	mux.HandleFunc(TaskSendAppointmentConfirmed, processor.ProcessTaskSendAppointmentConfirmed)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
