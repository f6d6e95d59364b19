package response

import (
	"testing"
	"time"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
)

func TestFromServiceRequest(t *testing.T) {
	now := time.Now().UTC()
	sent := now.Add(-time.Hour)

	sr := entities.ServiceRequest{
		ID:                   "sr-1",
		ClientID:             "cli-1",
		Description:          "Fuga en el lavaplatos",
		Category:             "plomeria",
		Status:               entities.StatusPending,
		AssignedTechnicianID: "tech-1",
		QuoteSubtotal:        100,
		QuoteVat:             15,
		QuoteTotal:           115,
		QuoteIncludesVat:     true,
		WarrantyPeriodDays:   90,
		CreatedAt:            now.Add(-2 * time.Hour),
		QuoteSentAt:          sent,
		Notes:                []entities.Note{{Text: "cliente confirmado", Author: "admin", CreatedAt: now}},
		Version:              3,
	}

	res := FromServiceRequest(sr)
	if res.ID != "sr-1" || res.ClientID != "cli-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "Pending" || res.StatusLabel != "Pendiente" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.QuoteSubtotal != 100 || res.QuoteVat != 15 || res.QuoteTotal != 115 || !res.QuoteIncludesVat {
		t.Fatalf("unexpected quote figures: %+v", res)
	}
	if res.QuoteSentAt == nil || !res.QuoteSentAt.Equal(sent) {
		t.Fatalf("unexpected quote_sent_at: %+v", res.QuoteSentAt)
	}
	if res.QuoteApprovedAt != nil || res.ScheduledAt != nil || res.CompletedAt != nil {
		t.Fatalf("expected unset timestamps to be omitted: %+v", res)
	}
	if len(res.Notes) != 1 || res.Notes[0].Text != "cliente confirmado" {
		t.Fatalf("unexpected notes: %+v", res.Notes)
	}
	if res.Version != 3 {
		t.Fatalf("unexpected version: %d", res.Version)
	}
}

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quotation{
		ServiceRequestID:         "sr-1",
		Subtotal:                 200,
		VatAmount:                30,
		Total:                    230,
		IncludesVat:              true,
		InitialPaymentPercentage: 50,
		GuaranteeDays:            90,
		CreatedAt:                now,
		ExpiresAt:                now.AddDate(0, 0, 30),
		UpdatedAt:                now,
	}

	res := FromQuotation(q)
	if res.ServiceRequestID != "sr-1" {
		t.Fatalf("unexpected id: %+v", res)
	}
	if res.Total != 230 || res.InitialPaymentAmount != 115 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.ExpiresAt == nil || !res.ExpiresAt.Equal(q.ExpiresAt) {
		t.Fatalf("unexpected expires_at: %+v", res.ExpiresAt)
	}
}
