package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/firedb"
)

type paymentItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" binding:"required,min=0"`
}

type createPaymentRequest struct {
	CustomerName string               `json:"customer_name" binding:"required"`
	PatientID    string               `json:"patient_id"`
	Items        []paymentItemRequest `json:"items" binding:"required,min=1,dive"`
}

//	@Summary		Create Invoice
//	@Description	Creates a pending invoice with its billing line items; totals are computed server-side
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createPaymentRequest	true	"Invoice details"
//	@Success		201		{object}	firedb.Payment
//	@Router			/payments [post]
func (server *Server) createPayment(ctx *gin.Context) {
	var req createPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	items := make([]firedb.PaymentItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = firedb.PaymentItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	payment, err := server.store.CreatePayment(ctx, firedb.CreatePaymentParams{
		CustomerName: req.CustomerName,
		PatientID:    req.PatientID,
		Items:        items,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

type listPaymentsRequest struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (server *Server) listPayments(ctx *gin.Context) {
	var req listPaymentsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	payments, err := server.store.ListPayments(ctx, firedb.ListPaymentsParams{
		Status: req.Status,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

func (server *Server) getPayment(ctx *gin.Context) {
	payment, err := server.store.GetPayment(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

//	@Summary		Mark Invoice Paid
//	@Description	Settles a pending invoice; the payment-received notification follows from the live payment stream
//	@Tags			billing
//	@Produce		json
//	@Param			id	path		string	true	"Payment ID"
//	@Success		200	{object}	firedb.Payment
//	@Router			/payments/{id}/pay [patch]
func (server *Server) markPaymentPaid(ctx *gin.Context) {
	payment, err := server.store.GetPayment(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if payment.Status == firedb.PaymentStatusPaid {
		ctx.JSON(http.StatusConflict, errorResponse(ErrPaymentAlreadyPaid))
		return
	}

	payment, err = server.store.MarkPaymentPaid(ctx, payment.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}
