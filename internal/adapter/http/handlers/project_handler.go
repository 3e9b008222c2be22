package handlers

import (
	"errors"
	"net/http"

	request "projeto_solar/internal/adapter/http/dto/request"
	response "projeto_solar/internal/adapter/http/dto/response"
	"projeto_solar/internal/domain/wizard"
	"projeto_solar/internal/usecase"
	"projeto_solar/internal/usecase/interfaces"
	"projeto_solar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
	errMissingSession        = pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// ProjectHandler handles HTTP requests for project registration.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// sessionUserID reads the user id stored by the auth middleware.
func sessionUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// respondError writes the mapped error to the response. Errors carrying an
// internal cause are recorded on the request context so the logging
// middleware can emit the detail; the response body never includes it.
func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// CreateProject registers a complete wizard submission.
//
// The wizard state machine is replayed over the submitted step payloads, so
// a submission that could not have navigated the wizard (an invalid or
// missing step) never reaches the registration orchestrator.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := sessionUserID(c)
	if userID == "" {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	sub, err := replayWizard(payload)
	if err != nil {
		var ferrs wizard.FieldErrors
		if errors.As(err, &ferrs) {
			c.JSON(http.StatusBadRequest, response.FromFieldErrors(ferrs))
			return
		}
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.CreateProject(c.Request.Context(), userID, sub)
	if err != nil {
		var ferrs wizard.FieldErrors
		if errors.As(err, &ferrs) {
			c.JSON(http.StatusBadRequest, response.FromFieldErrors(ferrs))
			return
		}
		appErr := mapProjectError(err)
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromProjectRecord(rec)))
}

// ValidateStep validates a single wizard step payload in isolation and
// returns it sanitized. Backs the per-step validation calls made by the UI
// while the user navigates.
func (h *ProjectHandler) ValidateStep(c *gin.Context) {
	step, ok := wizard.ParseStep(c.Param("step"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_STEP", "Unknown wizard step", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload := request.NewStepPayload(step)
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	sanitized, ferrs := wizard.ValidateStep(step, payload)
	if ferrs != nil {
		c.JSON(http.StatusBadRequest, response.FromFieldErrors(ferrs))
		return
	}
	c.JSON(http.StatusOK, response.OK(sanitized))
}

// ListProjects returns the caller's projects as summary rows.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := sessionUserID(c)
	if userID == "" {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	projects, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapProjectError(err)
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProjects(projects)))
}

// GetProject returns the denormalized view of one project. Projects of
// other users are indistinguishable from absent ones.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID := sessionUserID(c)
	if userID == "" {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	rec, err := h.usecase.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		respondError(c, appErr)
		return
	}
	if rec.Project.UserID != userID {
		appErr := mapProjectError(usecase.ErrProjectNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProjectRecord(rec)))
}

// replayWizard drives the navigation machine through the submitted steps in
// order. Skipped optional steps advance with their empty payloads.
func replayWizard(payload request.ProjectRequest) (wizard.Submission, error) {
	m := wizard.NewMachine()

	cliente := payload.Cliente
	if _, err := m.Advance(&cliente); err != nil {
		return wizard.Submission{}, err
	}

	tecnico := wizard.TecnicoPayload{}
	if payload.Tecnico != nil {
		tecnico = *payload.Tecnico
	}
	if _, err := m.Advance(&tecnico); err != nil {
		return wizard.Submission{}, err
	}

	acesso := wizard.AcessoPayload{}
	if payload.Acesso != nil {
		acesso = *payload.Acesso
	}
	if _, err := m.Advance(&acesso); err != nil {
		return wizard.Submission{}, err
	}

	equipamentos := payload.Equipamentos
	sub, err := m.Submit(&equipamentos)
	if err != nil {
		m.Fail(err)
		return wizard.Submission{}, err
	}
	return sub, nil
}

func mapProjectError(err error) *pkg.AppError {
	var (
		ownership *usecase.OwnershipMismatchError
		category  *usecase.CategoryMismatchError
		conflict  *interfaces.ConflictError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Referenced equipment item does not exist", http.StatusBadRequest)
	case errors.As(err, &ownership):
		return pkg.NewDomainErrorSimple("EQUIPMENT_OWNERSHIP", ownership.Error(), http.StatusBadRequest)
	case errors.As(err, &category):
		return pkg.NewDomainErrorSimple("EQUIPMENT_CATEGORY", category.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.As(err, &conflict):
		return pkg.NewDomainErrorSimple("NUMBER_CONFLICT", "Conflict on field "+conflict.Field, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
