package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	response "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/dto/response"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/pkg"
)

// PaymentHandler handles the two payments of the lifecycle. The amount is
// always derived from the quotation server-side; the body only carries the
// provider payload (card token, payer, payment method).

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CollectInitialPayment collects the down payment confirming the quotation;
// on approval the request moves to InProgress.
func (h *PaymentHandler) CollectInitialPayment(c *gin.Context) {
	h.collect(c, h.usecase.CollectInitialPayment)
}

// CollectFinalPayment collects the remaining balance after the work is done;
// on approval the request moves to Closed.
func (h *PaymentHandler) CollectFinalPayment(c *gin.Context) {
	h.collect(c, h.usecase.CollectFinalPayment)
}

func (h *PaymentHandler) collect(
	c *gin.Context,
	collector func(ctx context.Context, serviceRequestID string, payload json.RawMessage) (entities.Payment, error),
) {
	serviceRequestID := c.Param("id")

	payload, err := readProviderPayload(c)
	if err != nil {
		if isPaymentGatewayMockEnabled() {
			log.Warn().Err(err).Str("service_request_id", serviceRequestID).Msg("invalid payload in mock mode, falling back to empty payload")
			payload = json.RawMessage("{}")
		} else {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := collector(c.Request.Context(), serviceRequestID, payload)
	if err != nil {
		log.Error().Err(err).Str("service_request_id", serviceRequestID).Msg("payment collection failed")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().Str("service_request_id", serviceRequestID).Str("payment_id", created.ID).Str("kind", string(created.Kind)).Msg("payment collected")

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// ListPayments returns every payment recorded for a service request.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByServiceRequestID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotAllowed):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_ALLOWED", "Payment not allowed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment rejected by provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The request was modified concurrently, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_FAILED", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
