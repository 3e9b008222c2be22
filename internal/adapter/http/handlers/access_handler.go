package handlers

import (
	"errors"
	"net/http"

	request "projeto_solar/internal/adapter/http/dto/request"
	response "projeto_solar/internal/adapter/http/dto/response"
	"projeto_solar/internal/usecase"
	"projeto_solar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAccessPayload = pkg.NewDomainErrorSimple("INVALID_ACCESS_INPUT", "Invalid access payload", http.StatusBadRequest)

// AccessHandler handles HTTP requests for access-record maintenance.
type AccessHandler struct {
	usecase usecase.IAccessUseCase
}

func NewAccessHandler(uc usecase.IAccessUseCase) *AccessHandler {
	return &AccessHandler{usecase: uc}
}

// GetAccess returns the access record for a client tax document.
func (h *AccessHandler) GetAccess(c *gin.Context) {
	rec, err := h.usecase.GetByClientTaxID(c.Request.Context(), c.Param("clientTaxId"))
	if err != nil {
		appErr := mapAccessError(err)
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromAccessRecord(rec)))
}

// UpdateAccess applies a partial update to an existing access record.
// Updating never creates a record.
func (h *AccessHandler) UpdateAccess(c *gin.Context) {
	var payload request.AccessUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessPayload.HTTPStatus, errInvalidAccessPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.UpdateByClientTaxID(c.Request.Context(), c.Param("clientTaxId"), payload.ToUpdate())
	if err != nil {
		appErr := mapAccessError(err)
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromAccessRecord(rec)))
}

func mapAccessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientTaxID), errors.Is(err, usecase.ErrEmptyAccessUpdate), errors.Is(err, usecase.ErrInvalidTipoLigacao):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccessNotFound):
		return pkg.NewDomainErrorSimple("ACCESS_NOT_FOUND", "Access record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
