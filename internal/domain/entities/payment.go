package entities

import (
	"encoding/json"
	"time"
)

// PaymentKind distinguishes the upfront payment that unlocks scheduling from
// the final one that closes the job.

type PaymentKind string

const (
	PaymentKindInitial PaymentKind = "initial"
	PaymentKindFinal   PaymentKind = "final"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is a confirmed payment against a service request's quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_request_id-index): service_request_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation for debugging.
type Payment struct {
	ID               string        `json:"id"`
	ServiceRequestID string        `json:"service_request_id"`
	Kind             PaymentKind   `json:"kind"`
	Amount           float64       `json:"amount"`
	Date             time.Time     `json:"date"`
	Status           PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
