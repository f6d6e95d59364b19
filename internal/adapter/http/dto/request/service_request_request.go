package request

// CreateServiceRequestRequest opens a new service request. The subtotal is
// the technician-entered base amount; VAT is derived server-side.
type CreateServiceRequestRequest struct {
	ClientID    string  `json:"client_id" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"`
	Subtotal    float64 `json:"subtotal"`
	ApplyVat    bool    `json:"apply_vat"`
}

// TransitionRequest asks for a status change. Reason is only meaningful when
// the target status is canceled.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
	Author string `json:"author"`
}

// NoteRequest appends a remark to the request's note trail.
type NoteRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}

// AssignTechnicianRequest points the request at a technician.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

// RepriceRequest recomputes the quotation from a new subtotal.
type RepriceRequest struct {
	Subtotal float64 `json:"subtotal"`
	ApplyVat bool    `json:"apply_vat"`
}

// MessageRequest carries the optional free-text fields for a generated
// client status message.
type MessageRequest struct {
	PricingInformation       string `json:"pricing_information"`
	AdditionalConsiderations string `json:"additional_considerations"`
}
