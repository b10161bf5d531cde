package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/hibiken/asynq"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/util"
	"github.com/katatrina/dentcare-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

// Scheduler sweeps for confirmed appointments entering the reminder window
// and enqueues one reminder SMS for each. Scheduled asynq tasks cover the
// common case already; the sweep catches appointments confirmed inside the
// window and tasks lost to Redis restarts.
type Scheduler struct {
	store           *firedb.Store
	taskDistributor worker.TaskDistributor
	leadTime        time.Duration
	scheduler       gocron.Scheduler
}

func NewScheduler(store *firedb.Store, taskDistributor worker.TaskDistributor, leadTime time.Duration) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		store:           store,
		taskDistributor: taskDistributor,
		leadTime:        leadTime,
		scheduler:       scheduler,
	}, nil
}

// Start runs the sweep every 15 minutes.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(
			func() {
				s.sweep(context.Background())
			},
		),
	)

	if err != nil {
		return err
	}

	s.scheduler.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) sweep(ctx context.Context) {
	now := time.Now()
	appointments, err := s.store.ListAppointmentsNeedingReminder(ctx, now, now.Add(s.leadTime))
	if err != nil {
		log.Error().Err(err).Msg("reminder sweep failed to list appointments")
		return
	}

	for _, appointment := range appointments {
		payload := &worker.PayloadSendAppointmentReminder{
			AppointmentID: appointment.ID,
			Phone:         appointment.Phone,
			Message:       ReminderMessage(appointment),
		}

		err = s.taskDistributor.DistributeTaskSendAppointmentReminder(ctx, payload,
			asynq.TaskID(worker.ReminderTaskID(appointment.ID)),
			asynq.Queue(worker.QueueDefault),
			asynq.MaxRetry(3),
		)
		if err != nil {
			// Duplicate task ids mean a scheduled task already exists; skip quietly.
			log.Debug().Err(err).Str("appointmentID", appointment.ID).Msg("reminder task not enqueued")
			continue
		}

		log.Info().Str("appointmentID", appointment.ID).Str("code", appointment.Code).Msg("reminder SMS enqueued")
	}
}

// ReminderMessage renders the SMS body for one appointment.
func ReminderMessage(appointment firedb.Appointment) string {
	return fmt.Sprintf("DentCare: Nhac lich hen %s luc %s. Vui long den truoc 10 phut. LH 1900-6868 neu can doi lich.",
		appointment.Code,
		util.FormatAppointmentSlot(appointment.Date, appointment.Time),
	)
}
