package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInsufficientPermission   = errors.New("requires admin, staff or dentist role")
	ErrAppointmentNotPending    = errors.New("appointment is not in pending status")
	ErrAppointmentNotConfirmed  = errors.New("appointment is not in confirmed status")
	ErrAppointmentAlreadyClosed = errors.New("appointment is already cancelled or completed")
	ErrRequestAlreadyHandled    = errors.New("online request has already been handled")
	ErrPaymentAlreadyPaid       = errors.New("payment is already paid")
)

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}
}
