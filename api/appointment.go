package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/reminder"
	"github.com/katatrina/dentcare-BE/internal/util"
	"github.com/katatrina/dentcare-BE/internal/validator"
	"github.com/katatrina/dentcare-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

type createAppointmentRequest struct {
	UserName  string `json:"user_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Treatment string `json:"treatment" binding:"required"`
	DentistID string `json:"dentist_id"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Note      string `json:"note"`
}

func (req *createAppointmentRequest) validate() []*FieldViolation {
	var violations []*FieldViolation

	if err := validator.ValidateFullName(req.UserName); err != nil {
		violations = append(violations, fieldViolation("user_name", err))
	}
	if err := validator.ValidatePhoneNumber(req.Phone); err != nil {
		violations = append(violations, fieldViolation("phone", err))
	}
	if req.Email != "" {
		if err := validator.ValidateEmail(req.Email); err != nil {
			violations = append(violations, fieldViolation("email", err))
		}
	}
	if err := validator.ValidateAppointmentDate(req.Date); err != nil {
		violations = append(violations, fieldViolation("date", err))
	}
	if err := validator.ValidateAppointmentSlot(req.Time); err != nil {
		violations = append(violations, fieldViolation("time", err))
	}
	if err := validator.ValidateAppointmentSlotInFuture(req.Date, req.Time); err != nil {
		violations = append(violations, fieldViolation("time", err))
	}

	return violations
}

// appointmentStartsAt resolves the clinic-local starting instant of a slot.
func appointmentStartsAt(date, slot string) time.Time {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	if loc == nil {
		loc = time.FixedZone("Asia/Ho_Chi_Minh", 7*60*60)
	}

	startsAt, _ := time.ParseInLocation("2006-01-02 15:04", date+" "+slot, loc)
	return startsAt
}

//	@Summary		Create Walk-in Appointment
//	@Description	Front desk staff registers an appointment for a walk-in patient
//	@Tags			appointments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createAppointmentRequest	true	"Appointment details"
//	@Success		201		{object}	firedb.Appointment
//	@Router			/appointments [post]
func (server *Server) createAppointment(ctx *gin.Context) {
	var req createAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if violations := req.validate(); len(violations) > 0 {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	appointment, err := server.store.CreateAppointment(ctx, firedb.CreateAppointmentParams{
		UserName:  req.UserName,
		Phone:     req.Phone,
		Email:     req.Email,
		Treatment: req.Treatment,
		DentistID: req.DentistID,
		Date:      req.Date,
		Time:      req.Time,
		StartsAt:  appointmentStartsAt(req.Date, req.Time),
		Note:      req.Note,
		Status:    firedb.AppointmentStatusPending,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, appointment)
}

type listAppointmentsRequest struct {
	Status string `form:"status"`
	Date   string `form:"date"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (server *Server) listAppointments(ctx *gin.Context) {
	var req listAppointmentsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	appointments, err := server.store.ListAppointments(ctx, firedb.ListAppointmentsParams{
		Status: req.Status,
		Date:   req.Date,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, appointments)
}

func (server *Server) getAppointment(ctx *gin.Context) {
	appointment, err := server.store.GetAppointment(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

//	@Summary		Confirm Appointment
//	@Description	Confirms a pending appointment, schedules the reminder SMS and sends a confirmation email
//	@Tags			appointments
//	@Produce		json
//	@Param			id	path		string	true	"Appointment ID"
//	@Success		200	{object}	firedb.Appointment
//	@Router			/appointments/{id}/confirm [patch]
func (server *Server) confirmAppointment(ctx *gin.Context) {
	appointment, err := server.store.GetAppointment(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if appointment.Status != firedb.AppointmentStatusPending {
		ctx.JSON(http.StatusConflict, errorResponse(ErrAppointmentNotPending))
		return
	}

	if err = server.store.UpdateAppointmentStatus(ctx, appointment.ID, firedb.AppointmentStatusConfirmed); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	appointment.Status = firedb.AppointmentStatusConfirmed

	// Schedule the reminder SMS ahead of the visit. The periodic sweep picks
	// the appointment up anyway if this enqueue is lost.
	remindAt := appointment.StartsAt.Add(-server.config.ReminderLeadTime)
	err = server.taskDistributor.DistributeTaskSendAppointmentReminder(ctx, &worker.PayloadSendAppointmentReminder{
		AppointmentID: appointment.ID,
		Phone:         appointment.Phone,
		Message:       reminder.ReminderMessage(appointment),
	},
		asynq.TaskID(worker.ReminderTaskID(appointment.ID)),
		asynq.Queue(worker.QueueDefault),
		asynq.ProcessAt(remindAt),
		asynq.MaxRetry(3),
	)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointment.ID).Msg("failed to schedule reminder SMS")
	}

	// The portals get the same reminder as an in-app notification.
	err = server.taskDistributor.DistributeTaskSendNotification(ctx, &worker.PayloadSendNotification{
		Title:         "Upcoming appointment",
		Message:       reminder.ReminderMessage(appointment),
		Type:          "reminder",
		ReferenceID:   appointment.ID,
		RecipientRole: firedb.RoleDentist,
	},
		asynq.TaskID(worker.ReminderNoticeTaskID(appointment.ID)),
		asynq.Queue(worker.QueueDefault),
		asynq.ProcessAt(remindAt),
		asynq.MaxRetry(3),
	)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointment.ID).Msg("failed to schedule reminder notification")
	}

	if appointment.Email != "" {
		dentistName := server.dentistName(ctx, appointment.DentistID)

		err = server.taskDistributor.DistributeTaskSendAppointmentConfirmed(ctx, &worker.PayloadSendAppointmentConfirmed{
			To:              appointment.Email,
			PatientName:     appointment.UserName,
			AppointmentCode: appointment.Code,
			Treatment:       appointment.Treatment,
			Slot:            util.FormatAppointmentSlot(appointment.Date, appointment.Time),
			DentistName:     dentistName,
		}, asynq.Queue(worker.QueueCritical))
		if err != nil {
			log.Error().Err(err).Str("appointmentID", appointment.ID).Msg("failed to enqueue confirmation email")
		}
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (server *Server) cancelAppointment(ctx *gin.Context) {
	appointment, err := server.store.GetAppointment(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if appointment.Status == firedb.AppointmentStatusCancelled || appointment.Status == firedb.AppointmentStatusCompleted {
		ctx.JSON(http.StatusConflict, errorResponse(ErrAppointmentAlreadyClosed))
		return
	}

	if err = server.store.UpdateAppointmentStatus(ctx, appointment.ID, firedb.AppointmentStatusCancelled); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	appointment.Status = firedb.AppointmentStatusCancelled

	if err = server.taskInspector.CancelAppointmentReminder(ctx, appointment.ID); err != nil {
		log.Error().Err(err).Str("appointmentID", appointment.ID).Msg("failed to cancel scheduled reminder")
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (server *Server) completeAppointment(ctx *gin.Context) {
	appointment, err := server.store.GetAppointment(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if appointment.Status != firedb.AppointmentStatusConfirmed {
		ctx.JSON(http.StatusConflict, errorResponse(ErrAppointmentNotConfirmed))
		return
	}

	if err = server.store.UpdateAppointmentStatus(ctx, appointment.ID, firedb.AppointmentStatusCompleted); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	appointment.Status = firedb.AppointmentStatusCompleted

	ctx.JSON(http.StatusOK, appointment)
}

func (server *Server) dentistName(ctx *gin.Context, dentistID string) string {
	if dentistID == "" {
		return ""
	}

	dentist, err := server.store.GetUser(ctx, dentistID)
	if err != nil {
		log.Warn().Err(err).Str("dentistID", dentistID).Msg("failed to look up dentist")
		return ""
	}

	return dentist.FullName
}
