package entities

import "time"

// Note is an append-only remark attached to a service request.
type Note struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceRequest is the job/ticket entity tracked from quote to closure,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Relationships:
//   - ClientID is required and immutable after creation.
//   - AssignedTechnicianID is a reference, never a copy of the technician
//     record. Display values are resolved at read time so a later edit to
//     the technician profile is always reflected.
//
// The quote figures are a denormalized copy of the Quotation sub-record,
// refreshed on every reprice and repaired on read if they drift.
type ServiceRequest struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	Description string `json:"description"`
	Category    string `json:"category"`

	Status ServiceRequestStatus `json:"status"`

	AssignedTechnicianID string `json:"assigned_technician_id,omitempty"`

	QuoteSubtotal    float64 `json:"quote_subtotal"`
	QuoteVat         float64 `json:"quote_vat"`
	QuoteTotal       float64 `json:"quote_total"`
	QuoteIncludesVat bool    `json:"quote_includes_vat"`

	WarrantyPeriodDays int `json:"warranty_period_days"`

	CreatedAt       time.Time `json:"created_at"`
	QuoteSentAt     time.Time `json:"quote_sent_at,omitempty"`
	QuoteApprovedAt time.Time `json:"quote_approved_at,omitempty"`
	ScheduledAt     time.Time `json:"scheduled_at,omitempty"`
	CompletedAt     time.Time `json:"completed_at,omitempty"`

	Notes []Note `json:"notes,omitempty"`

	// Version backs the conditional writes; bumped on every save.
	Version int64 `json:"version"`
}

// ApplyTransition mutates the request to the target status and sets the
// side-effect timestamp defined for that edge. Each timestamp is set exactly
// once and never cleared, even if the same edge fires again.
//
// The caller must have validated the edge with CanTransition first; this
// method only applies effects.
func (sr *ServiceRequest) ApplyTransition(target ServiceRequestStatus, now time.Time) {
	from := sr.Status
	sr.Status = target

	switch {
	case from == StatusQuote && target == StatusPending:
		if sr.QuoteSentAt.IsZero() {
			sr.QuoteSentAt = now
		}
	case from == StatusPending && target == StatusApproved:
		if sr.QuoteApprovedAt.IsZero() {
			sr.QuoteApprovedAt = now
		}
	case from == StatusApproved && target == StatusInProgress:
		if sr.ScheduledAt.IsZero() {
			sr.ScheduledAt = now
		}
	case from == StatusInProgress && target == StatusCompleted:
		if sr.CompletedAt.IsZero() {
			sr.CompletedAt = now
		}
	}
}

// AppendNote adds a note to the request's append-only note trail.
func (sr *ServiceRequest) AppendNote(text, author string, now time.Time) {
	sr.Notes = append(sr.Notes, Note{Text: text, Author: author, CreatedAt: now})
}
