package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/dto/request"
	response "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/dto/response"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/pkg"
)

// AssignmentHandler handles the technician relation on a service request.

type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

func (h *AssignmentHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sr, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.TechnicianID)
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

func (h *AssignmentHandler) UnassignTechnician(c *gin.Context) {
	sr, err := h.usecase.Unassign(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// GetAssignment resolves the assigned technician's current display name. An
// unassigned request resolves to the "No asignado" marker, not an error.
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	name, err := h.usecase.ResolveDisplayName(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AssignmentResponse{
		ServiceRequestID: c.Param("id"),
		TechnicianName:   name,
	})
}

func mapAssignmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceRequestID), errors.Is(err, usecase.ErrInvalidTechnicianID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
