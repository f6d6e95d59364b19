package response

import (
	"time"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
)

type NoteResponse struct {
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceRequestResponse struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`

	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`

	AssignedTechnicianID string `json:"assigned_technician_id,omitempty"`

	QuoteSubtotal    float64 `json:"quote_subtotal"`
	QuoteVat         float64 `json:"quote_vat"`
	QuoteTotal       float64 `json:"quote_total"`
	QuoteIncludesVat bool    `json:"quote_includes_vat"`

	WarrantyPeriodDays int `json:"warranty_period_days"`

	CreatedAt       time.Time  `json:"created_at"`
	QuoteSentAt     *time.Time `json:"quote_sent_at,omitempty"`
	QuoteApprovedAt *time.Time `json:"quote_approved_at,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	Notes []NoteResponse `json:"notes,omitempty"`

	Version int64 `json:"version"`
}

func FromServiceRequest(sr entities.ServiceRequest) ServiceRequestResponse {
	notes := make([]NoteResponse, 0, len(sr.Notes))
	for _, n := range sr.Notes {
		notes = append(notes, NoteResponse{Text: n.Text, Author: n.Author, CreatedAt: n.CreatedAt})
	}
	if len(notes) == 0 {
		notes = nil
	}

	return ServiceRequestResponse{
		ID:                   sr.ID,
		ClientID:             sr.ClientID,
		Description:          sr.Description,
		Category:             sr.Category,
		Status:               string(sr.Status),
		StatusLabel:          sr.Status.DisplayLabel(),
		AssignedTechnicianID: sr.AssignedTechnicianID,
		QuoteSubtotal:        sr.QuoteSubtotal,
		QuoteVat:             sr.QuoteVat,
		QuoteTotal:           sr.QuoteTotal,
		QuoteIncludesVat:     sr.QuoteIncludesVat,
		WarrantyPeriodDays:   sr.WarrantyPeriodDays,
		CreatedAt:            sr.CreatedAt,
		QuoteSentAt:          timePtr(sr.QuoteSentAt),
		QuoteApprovedAt:      timePtr(sr.QuoteApprovedAt),
		ScheduledAt:          timePtr(sr.ScheduledAt),
		CompletedAt:          timePtr(sr.CompletedAt),
		Notes:                notes,
		Version:              sr.Version,
	}
}

func FromServiceRequests(items []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(items))
	for _, sr := range items {
		out = append(out, FromServiceRequest(sr))
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
