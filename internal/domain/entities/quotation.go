package entities

import "time"

// Quotation is the priced proposal attached to a service request. It is the
// authoritative source for the quote figures; the copy on ServiceRequest is
// a cache re-derivable from this record at any time.
//
// Storage model (DynamoDB):
//   - PK: service_request_id
//
// Using the parent id as PK guarantees one quotation per service request and
// keeps lookups by request cheap.
type Quotation struct {
	ServiceRequestID string `json:"service_request_id"`

	Subtotal    float64 `json:"subtotal"`
	VatAmount   float64 `json:"vat_amount"`
	Total       float64 `json:"total"`
	IncludesVat bool    `json:"includes_vat"`

	InitialPaymentPercentage float64 `json:"initial_payment_percentage"`
	GuaranteeDays            int     `json:"guarantee_days"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitialPaymentAmount derives the upfront amount due before work starts.
func (q Quotation) InitialPaymentAmount() float64 {
	return q.Total * q.InitialPaymentPercentage / 100
}
