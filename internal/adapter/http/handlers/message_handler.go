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

// MessageHandler composes client-facing status messages and the WhatsApp
// hand-off link. Delivery happens outside this system.

type MessageHandler struct {
	usecase usecase.IMessageUseCase
}

func NewMessageHandler(uc usecase.IMessageUseCase) *MessageHandler {
	return &MessageHandler{usecase: uc}
}

func (h *MessageHandler) ComposeStatusMessage(c *gin.Context) {
	// Both fields are optional, so an empty body is a valid request.
	var payload request.MessageRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	msg, err := h.usecase.ComposeStatusMessage(c.Request.Context(), c.Param("id"), usecase.MessageRequest{
		PricingInformation:       payload.PricingInformation,
		AdditionalConsiderations: payload.AdditionalConsiderations,
	})
	if err != nil {
		appErr := mapMessageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGeneratedMessage(msg))
}

func mapMessageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingClientPhone):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_PHONE", "Client has no phone number on record", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMessageGenerationFailed):
		return pkg.NewDomainErrorSimple("MESSAGE_GENERATION_FAILED", "Message generation failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
