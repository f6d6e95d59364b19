package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/config"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
	mock_interfaces "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces/mocks"
)

func testConfig() config.Config {
	return config.Config{
		VATRate:              0.15,
		DefaultWarrantyDays:  90,
		DefaultGuaranteeDays: 90,
		InitialPaymentPct:    50,
		LookupTimeout:        time.Second,
	}
}

func TestServiceRequestUseCase_Create(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, testConfig(), nil)
		_, err := uc.Create(context.Background(), CreateServiceRequestInput{ClientID: "   "})
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceRequestUseCase(nil, nil, clientRepo, testConfig(), nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), CreateServiceRequestInput{ClientID: "cli-1", Subtotal: 100})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("invalid subtotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceRequestUseCase(nil, nil, clientRepo, testConfig(), nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)

		_, err := uc.Create(context.Background(), CreateServiceRequestInput{ClientID: "cli-1", Subtotal: -10})
		if err == nil {
			t.Fatalf("expected error for negative subtotal")
		}
	})

	t.Run("create success derives figures and quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, quotationRepo, clientRepo, testConfig(), notifier)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.Status != entities.StatusQuote {
					t.Fatalf("expected Quote status, got %s", sr.Status)
				}
				if sr.QuoteSubtotal != 100 || sr.QuoteVat != 15 || sr.QuoteTotal != 115 || !sr.QuoteIncludesVat {
					t.Fatalf("unexpected figures: %+v", sr)
				}
				if sr.WarrantyPeriodDays != 90 || sr.Version != 1 {
					t.Fatalf("unexpected defaults: %+v", sr)
				}
				return sr, nil
			})
		quotationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Total != 115 || q.InitialPaymentPercentage != 50 || q.GuaranteeDays != 90 {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if q.ExpiresAt.Before(q.CreatedAt) {
					t.Fatalf("expiry must be after creation: %+v", q)
				}
				return q, nil
			})
		notifier.EXPECT().Publish(gomock.Any()).Do(func(e interfaces.Event) {
			if e.Type != "service_request.created" {
				t.Fatalf("unexpected event type: %s", e.Type)
			}
		})

		created, err := uc.Create(context.Background(), CreateServiceRequestInput{
			ClientID:    "cli-1",
			Description: "Cambio de grifería",
			Subtotal:    100,
			ApplyVat:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("quotation create failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, quotationRepo, clientRepo, testConfig(), nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) { return sr, nil })
		quotationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, errors.New("ddb"))

		_, err := uc.Create(context.Background(), CreateServiceRequestInput{ClientID: "cli-1", Subtotal: 10})
		if err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})
}

func TestServiceRequestUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, testConfig(), nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidServiceRequestID) {
			t.Fatalf("expected ErrInvalidServiceRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), nil)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "sr-1")
		if !errors.Is(err, ErrServiceRequestNotFound) {
			t.Fatalf("expected ErrServiceRequestNotFound, got %v", err)
		}
	})

	t.Run("matching copy returns as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, quotationRepo, nil, testConfig(), nil)

		sr := entities.ServiceRequest{ID: "sr-1", QuoteSubtotal: 100, QuoteVat: 15, QuoteTotal: 115, QuoteIncludesVat: true}
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(sr, nil)
		quotationRepo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{
			ServiceRequestID: "sr-1", Subtotal: 100, VatAmount: 15, Total: 115, IncludesVat: true,
		}, nil)

		got, err := uc.GetByID(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuoteTotal != 115 {
			t.Fatalf("unexpected total: %v", got.QuoteTotal)
		}
	})

	t.Run("drifted copy is repaired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, quotationRepo, nil, testConfig(), nil)

		stale := entities.ServiceRequest{ID: "sr-1", QuoteSubtotal: 100, QuoteVat: 15, QuoteTotal: 115, QuoteIncludesVat: true}
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(stale, nil)
		quotationRepo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{
			ServiceRequestID: "sr-1", Subtotal: 200, VatAmount: 30, Total: 230, IncludesVat: true,
		}, nil)
		repaired := stale
		repaired.QuoteSubtotal, repaired.QuoteVat, repaired.QuoteTotal = 200, 30, 230
		repo.EXPECT().UpdateQuoteFigures(gomock.Any(), "sr-1", 200.0, 30.0, 230.0, true).Return(repaired, nil)

		got, err := uc.GetByID(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuoteTotal != 230 {
			t.Fatalf("expected repaired total 230, got %v", got.QuoteTotal)
		}
	})

	t.Run("repair write failure still serves authoritative figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, quotationRepo, nil, testConfig(), nil)

		stale := entities.ServiceRequest{ID: "sr-1", QuoteTotal: 115}
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(stale, nil)
		quotationRepo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{
			ServiceRequestID: "sr-1", Subtotal: 200, VatAmount: 30, Total: 230, IncludesVat: true,
		}, nil)
		repo.EXPECT().UpdateQuoteFigures(gomock.Any(), "sr-1", 200.0, 30.0, 230.0, true).Return(entities.ServiceRequest{}, errors.New("ddb"))

		got, err := uc.GetByID(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuoteTotal != 230 || got.QuoteSubtotal != 200 {
			t.Fatalf("expected in-memory corrected figures, got %+v", got)
		}
	})

	t.Run("quotation lookup failure does not break the read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, quotationRepo, nil, testConfig(), nil)

		sr := entities.ServiceRequest{ID: "sr-1", QuoteTotal: 115}
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(sr, nil)
		quotationRepo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{}, errors.New("ddb"))

		got, err := uc.GetByID(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuoteTotal != 115 {
			t.Fatalf("unexpected total: %v", got.QuoteTotal)
		}
	})
}

func TestServiceRequestUseCase_Transition(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, testConfig(), nil)
		_, err := uc.Transition(context.Background(), "sr-1", entities.ServiceRequestStatus("Archived"), "", "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), nil)

		sr := entities.ServiceRequest{ID: "sr-1", Status: entities.StatusPending, Version: 4}
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(sr, nil)

		got, err := uc.Transition(context.Background(), "sr-1", entities.StatusPending, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 4 {
			t.Fatalf("record must be unchanged, got %+v", got)
		}
	})

	t.Run("illegal edge leaves record unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), nil)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusQuote}, nil)

		_, err := uc.Transition(context.Background(), "sr-1", entities.StatusCompleted, "", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancel after completion rejected by default policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), nil)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusCompleted}, nil)

		_, err := uc.Transition(context.Background(), "sr-1", entities.StatusCanceled, "cliente desistió", "admin")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("forward edge stamps timestamp and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), notifier)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusQuote, Version: 1}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.Status != entities.StatusPending {
					t.Fatalf("expected Pending, got %s", sr.Status)
				}
				if sr.QuoteSentAt.IsZero() {
					t.Fatalf("expected QuoteSentAt stamped")
				}
				sr.Version++
				return sr, nil
			})
		notifier.EXPECT().Publish(gomock.Any()).Do(func(e interfaces.Event) {
			if e.Type != "service_request.status_changed" || e.Status != "Pending" {
				t.Fatalf("unexpected event: %+v", e)
			}
		})

		got, err := uc.Transition(context.Background(), "sr-1", entities.StatusPending, "", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 2 {
			t.Fatalf("expected bumped version, got %d", got.Version)
		}
	})

	t.Run("cancel records the reason as a note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), notifier)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusPending}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if len(sr.Notes) != 1 || sr.Notes[0].Text != "Cancelación: cliente desistió" {
					t.Fatalf("unexpected notes: %+v", sr.Notes)
				}
				if sr.Notes[0].Author != "admin" {
					t.Fatalf("unexpected author: %s", sr.Notes[0].Author)
				}
				return sr, nil
			})
		notifier.EXPECT().Publish(gomock.Any())

		_, err := uc.Transition(context.Background(), "sr-1", entities.StatusCanceled, " cliente desistió ", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("version conflict retries with a fresh read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), notifier)

		first := repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusQuote, Version: 1}, nil)
		conflicted := repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, interfaces.ErrConcurrentModification).After(first)
		second := repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusQuote, Version: 2}, nil).After(conflicted)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.Version != 2 {
					t.Fatalf("retry must use the re-read version, got %d", sr.Version)
				}
				return sr, nil
			}).After(second)
		notifier.EXPECT().Publish(gomock.Any())

		_, err := uc.Transition(context.Background(), "sr-1", entities.StatusPending, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retry after a concurrent assignment keeps the assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), notifier)

		// The assignment lands between this caller's read and its save; the
		// bumped version rejects the stale write and the retry re-reads the
		// record with the technician set.
		first := repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusQuote, Version: 5}, nil)
		conflicted := repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, interfaces.ErrConcurrentModification).After(first)
		second := repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{
			ID: "sr-1", Status: entities.StatusQuote, AssignedTechnicianID: "tech-1", Version: 6,
		}, nil).After(conflicted)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.AssignedTechnicianID != "tech-1" {
					t.Fatalf("retry must carry the concurrently-set assignment, got %+v", sr)
				}
				if sr.Status != entities.StatusPending {
					t.Fatalf("expected Pending, got %s", sr.Status)
				}
				return sr, nil
			}).After(second)
		notifier.EXPECT().Publish(gomock.Any())

		saved, err := uc.Transition(context.Background(), "sr-1", entities.StatusPending, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.AssignedTechnicianID != "tech-1" {
			t.Fatalf("assignment lost across the retry: %+v", saved)
		}
	})

	t.Run("persistent conflict surfaces after bounded retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), nil)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", Status: entities.StatusQuote}, nil).Times(maxTransitionRetries)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, interfaces.ErrConcurrentModification).Times(maxTransitionRetries)

		_, err := uc.Transition(context.Background(), "sr-1", entities.StatusPending, "", "")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestServiceRequestUseCase_AddNote(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, testConfig(), nil)
		_, err := uc.AddNote(context.Background(), "sr-1", "  ", "admin")
		if err == nil {
			t.Fatalf("expected error for empty note")
		}
	})

	t.Run("appends and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil, testConfig(), nil)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if len(sr.Notes) != 1 || sr.Notes[0].Text != "repuesto en camino" {
					t.Fatalf("unexpected notes: %+v", sr.Notes)
				}
				return sr, nil
			})

		_, err := uc.AddNote(context.Background(), "sr-1", "repuesto en camino", "tech")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
