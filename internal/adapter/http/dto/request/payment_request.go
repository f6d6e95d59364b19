package request

import "encoding/json"

// PaymentCreateRequest is the payload for the payment collection routes.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying
// Mercado Pago schemas; amount and external reference are always derived
// server-side from the quotation.

type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
