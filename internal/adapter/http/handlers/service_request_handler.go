package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/dto/request"
	response "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/dto/response"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/quote"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/pkg"
)

var (
	errInvalidServiceRequestPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)
)

// ServiceRequestHandler handles HTTP requests for the service request
// lifecycle: creation, reads, status transitions and notes.

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

func (h *ServiceRequestHandler) CreateServiceRequest(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceRequestPayload.HTTPStatus, errInvalidServiceRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateServiceRequestInput{
		ClientID:    payload.ClientID,
		Description: payload.Description,
		Category:    payload.Category,
		Subtotal:    payload.Subtotal,
		ApplyVat:    payload.ApplyVat,
	})
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func (h *ServiceRequestHandler) GetServiceRequest(c *gin.Context) {
	sr, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// ListServiceRequests returns all requests, optionally filtered by the
// `status` query parameter.
func (h *ServiceRequestHandler) ListServiceRequests(c *gin.Context) {
	var status *entities.ServiceRequestStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := entities.ParseStatus(raw)
		if !ok {
			appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status value", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		status = &parsed
	}

	items, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequests(items))
}

// TransitionServiceRequest moves a request to the target status. Requesting
// the current status responds 200 with the unchanged record.
func (h *ServiceRequestHandler) TransitionServiceRequest(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceRequestPayload.HTTPStatus, errInvalidServiceRequestPayload.ToHTTPError())
		return
	}

	target, ok := entities.ParseStatus(payload.Status)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sr, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), target, payload.Reason, payload.Author)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

func (h *ServiceRequestHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceRequestPayload.HTTPStatus, errInvalidServiceRequestPayload.ToHTTPError())
		return
	}

	sr, err := h.usecase.AddNote(c.Request.Context(), c.Param("id"), payload.Text, payload.Author)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceRequestID), errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, quote.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The request was modified concurrently, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
