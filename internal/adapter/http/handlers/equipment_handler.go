package handlers

import (
	"errors"
	"net/http"

	request "projeto_solar/internal/adapter/http/dto/request"
	response "projeto_solar/internal/adapter/http/dto/response"
	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase"
	"projeto_solar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEquipmentPayload = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Invalid equipment payload", http.StatusBadRequest)
	errMissingTypeFilter       = pkg.NewDomainErrorSimple("MISSING_TYPE", "Query parameter 'type' is required", http.StatusBadRequest)
)

// EquipmentHandler handles HTTP requests for the equipment catalog.
type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc}
}

// RegisterEquipment adds a catalog item owned by the caller.
func (h *EquipmentHandler) RegisterEquipment(c *gin.Context) {
	userID := sessionUserID(c)
	if userID == "" {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Register(c.Request.Context(), userID, payload.ToInput())
	if err != nil {
		appErr := mapEquipmentError(err)
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromEquipmentItem(item)))
}

// ListEquipment lists the caller's catalog filtered by category and,
// optionally, by linked client. The category filter is mandatory.
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	userID := sessionUserID(c)
	if userID == "" {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	categoria := c.Query("type")
	if categoria == "" {
		c.JSON(errMissingTypeFilter.HTTPStatus, errMissingTypeFilter.ToHTTPError())
		return
	}

	items, err := h.usecase.ListByUser(c.Request.Context(), userID, entities.EquipmentCategory(categoria), c.Query("clientId"))
	if err != nil {
		appErr := mapEquipmentError(err)
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromEquipmentItems(items)))
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEquipmentCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown equipment category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEquipmentName):
		return pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Manufacturer and model are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEquipmentRating):
		return pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Electrical ratings must not be negative", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
