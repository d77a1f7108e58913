package handlers

import (
	"errors"
	"net/http"

	request "stitchworks/internal/adapter/http/dto/request"
	response "stitchworks/internal/adapter/http/dto/response"
	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase"
	"stitchworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)
)

// MaterialHandler handles HTTP requests for raw materials.

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), entities.Material{
		Name:         payload.Name,
		Supplier:     payload.Supplier,
		Unit:         payload.Unit,
		Quantity:     payload.Quantity,
		ReorderLevel: payload.ReorderLevel,
		CostPerUnit:  payload.CostPerUnit,
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterial(created))
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

func (h *MaterialHandler) GetMaterialByID(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(m))
}

func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), entities.Material{
		ID:           c.Param("id"),
		Name:         payload.Name,
		Supplier:     payload.Supplier,
		Unit:         payload.Unit,
		ReorderLevel: payload.ReorderLevel,
		CostPerUnit:  payload.CostPerUnit,
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(updated))
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MaterialHandler) AdjustMaterialQuantity(c *gin.Context) {
	var payload request.StockAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	adjusted, err := h.usecase.AdjustQuantity(c.Request.Context(), c.Param("id"), payload.Delta)
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(adjusted))
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialID),
		errors.Is(err, usecase.ErrInvalidMaterialName),
		errors.Is(err, usecase.ErrInvalidMaterialUnit),
		errors.Is(err, usecase.ErrZeroQuantityAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientMaterial):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_MATERIAL", "Material quantity cannot go negative", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
