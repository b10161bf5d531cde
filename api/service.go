package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/firedb"
)

type createServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           int64  `json:"price" binding:"required,min=0"`
	DurationMinutes int64  `json:"duration_minutes" binding:"required,min=15"`
}

func (server *Server) createService(ctx *gin.Context) {
	var req createServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	service, err := server.store.CreateService(ctx, firedb.CreateServiceParams{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, service)
}

// listServices serves the public booking page; only active services show up.
func (server *Server) listServices(ctx *gin.Context) {
	services, err := server.store.ListServices(ctx, true)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, services)
}

func (server *Server) getServiceBySlug(ctx *gin.Context) {
	service, err := server.store.GetServiceBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, service)
}

type updateServiceRequest struct {
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Active      *bool   `json:"active"`
}

func (server *Server) updateService(ctx *gin.Context) {
	var req updateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	err := server.store.UpdateService(ctx, ctx.Param("id"), firedb.UpdateServiceParams{
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "service updated"})
}
