package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/dto/request"
	response "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/dto/response"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/quote"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/pkg"
)

// QuotationHandler handles the quotation attached to a service request.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByServiceRequestID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// RepriceQuotation recomputes the quotation figures from a new subtotal and
// refreshes the copy on the parent request.
func (h *QuotationHandler) RepriceQuotation(c *gin.Context) {
	var payload request.RepriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quotation payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.Reprice(c.Request.Context(), c.Param("id"), payload.Subtotal, payload.ApplyVat)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceRequestID), errors.Is(err, quote.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
