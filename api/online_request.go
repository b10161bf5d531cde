package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/util"
	"github.com/katatrina/dentcare-BE/internal/validator"
	"github.com/rs/zerolog/log"
)

type createOnlineRequestRequest struct {
	UserName        string `json:"user_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email"`
	TreatmentOption string `json:"treatment_option" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Message         string `json:"message"`
}

func (req *createOnlineRequestRequest) validate() []*FieldViolation {
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

	return violations
}

//	@Summary		Create Online Booking Request
//	@Description	Public endpoint for patients to request an appointment from the booking page
//	@Tags			online-requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createOnlineRequestRequest	true	"Booking request"
//	@Success		201		{object}	firedb.OnlineRequest
//	@Failure		400		{object}	FailedValidationResponse
//	@Router			/online-requests [post]
func (server *Server) createOnlineRequest(ctx *gin.Context) {
	var req createOnlineRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if violations := req.validate(); len(violations) > 0 {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	request, err := server.store.CreateOnlineRequest(ctx, firedb.CreateOnlineRequestParams{
		UserName:        req.UserName,
		Phone:           req.Phone,
		Email:           req.Email,
		TreatmentOption: req.TreatmentOption,
		Date:            req.Date,
		Time:            req.Time,
		Message:         req.Message,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Ping the ops channel so the front desk notices even without a portal open.
	go func() {
		message := fmt.Sprintf("🦷 Yêu cầu đặt lịch mới: %s | %s | %s",
			request.UserName, request.TreatmentOption, util.FormatAppointmentSlot(request.Date, request.Time))
		if err := server.alerter.Notify(message); err != nil {
			log.Warn().Err(err).Str("requestID", request.ID).Msg("failed to send ops alert")
		}
	}()

	ctx.JSON(http.StatusCreated, request)
}

type listOnlineRequestsRequest struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (server *Server) listOnlineRequests(ctx *gin.Context) {
	var req listOnlineRequestsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	requests, err := server.store.ListOnlineRequests(ctx, firedb.ListOnlineRequestsParams{
		Status: req.Status,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

func (server *Server) getOnlineRequest(ctx *gin.Context) {
	request, err := server.store.GetOnlineRequest(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, request)
}

type approveOnlineRequestRequest struct {
	DentistID string `json:"dentist_id"`
	Note      string `json:"note"`
}

//	@Summary		Approve Online Booking Request
//	@Description	Accepts a pending request and registers a pending appointment for it
//	@Tags			online-requests
//	@Produce		json
//	@Param			id	path		string	true	"Request ID"
//	@Success		200	{object}	firedb.Appointment
//	@Router			/online-requests/{id}/approve [patch]
func (server *Server) approveOnlineRequest(ctx *gin.Context) {
	// Body is optional: staff may approve without assigning a dentist yet.
	var req approveOnlineRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	request, err := server.store.GetOnlineRequest(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if request.Status != firedb.RequestStatusPending {
		ctx.JSON(http.StatusConflict, errorResponse(ErrRequestAlreadyHandled))
		return
	}

	appointment, err := server.store.CreateAppointment(ctx, firedb.CreateAppointmentParams{
		UserName:  request.UserName,
		Phone:     request.Phone,
		Email:     request.Email,
		Treatment: request.TreatmentOption,
		DentistID: req.DentistID,
		Date:      request.Date,
		Time:      request.Time,
		StartsAt:  appointmentStartsAt(request.Date, request.Time),
		Note:      req.Note,
		Status:    firedb.AppointmentStatusPending,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if err = server.store.UpdateOnlineRequestStatus(ctx, request.ID, firedb.RequestStatusConfirmed); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (server *Server) rejectOnlineRequest(ctx *gin.Context) {
	request, err := server.store.GetOnlineRequest(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if request.Status != firedb.RequestStatusPending {
		ctx.JSON(http.StatusConflict, errorResponse(ErrRequestAlreadyHandled))
		return
	}

	if err = server.store.UpdateOnlineRequestStatus(ctx, request.ID, firedb.RequestStatusRejected); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	request.Status = firedb.RequestStatusRejected
	ctx.JSON(http.StatusOK, request)
}
