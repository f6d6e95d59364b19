package response

import (
	"time"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
)

type QuotationResponse struct {
	ServiceRequestID string `json:"service_request_id"`

	Subtotal    float64 `json:"subtotal"`
	VatAmount   float64 `json:"vat_amount"`
	Total       float64 `json:"total"`
	IncludesVat bool    `json:"includes_vat"`

	InitialPaymentPercentage float64 `json:"initial_payment_percentage"`
	InitialPaymentAmount     float64 `json:"initial_payment_amount"`
	GuaranteeDays            int     `json:"guarantee_days"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ServiceRequestID:         q.ServiceRequestID,
		Subtotal:                 q.Subtotal,
		VatAmount:                q.VatAmount,
		Total:                    q.Total,
		IncludesVat:              q.IncludesVat,
		InitialPaymentPercentage: q.InitialPaymentPercentage,
		InitialPaymentAmount:     q.InitialPaymentAmount(),
		GuaranteeDays:            q.GuaranteeDays,
		CreatedAt:                q.CreatedAt,
		ExpiresAt:                timePtr(q.ExpiresAt),
		UpdatedAt:                q.UpdatedAt,
	}
}
