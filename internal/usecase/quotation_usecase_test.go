package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
	mock_interfaces "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces/mocks"
)

func TestQuotationUseCase_GetByServiceRequestID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, testConfig(), nil)
		_, err := uc.GetByServiceRequestID(context.Background(), "")
		if !errors.Is(err, ErrInvalidServiceRequestID) {
			t.Fatalf("expected ErrInvalidServiceRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, testConfig(), nil)

		repo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{}, nil)

		_, err := uc.GetByServiceRequestID(context.Background(), "sr-1")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, testConfig(), nil)

		repo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{ServiceRequestID: "sr-1", Total: 115}, nil)

		q, err := uc.GetByServiceRequestID(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Total != 115 {
			t.Fatalf("unexpected total: %v", q.Total)
		}
	})
}

func TestQuotationUseCase_Reprice(t *testing.T) {
	t.Run("invalid subtotal", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, testConfig(), nil)
		_, err := uc.Reprice(context.Background(), "sr-1", -5, true)
		if err == nil {
			t.Fatalf("expected error for negative subtotal")
		}
	})

	t.Run("quotation missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, testConfig(), nil)

		repo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{}, nil)

		_, err := uc.Reprice(context.Background(), "sr-1", 200, true)
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("recomputes and refreshes the denormalized copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewQuotationUseCase(repo, srRepo, testConfig(), notifier)

		existing := entities.Quotation{ServiceRequestID: "sr-1", Subtotal: 100, VatAmount: 15, Total: 115, IncludesVat: true, InitialPaymentPercentage: 50}
		repo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Subtotal != 200 || q.VatAmount != 30 || q.Total != 230 || !q.IncludesVat {
					t.Fatalf("unexpected repriced figures: %+v", q)
				}
				if q.InitialPaymentPercentage != 50 {
					t.Fatalf("terms must survive a reprice: %+v", q)
				}
				return q, nil
			})
		srRepo.EXPECT().UpdateQuoteFigures(gomock.Any(), "sr-1", 200.0, 30.0, 230.0, true).Return(entities.ServiceRequest{ID: "sr-1"}, nil)
		notifier.EXPECT().Publish(gomock.Any()).Do(func(e interfaces.Event) {
			if e.Type != "quotation.repriced" {
				t.Fatalf("unexpected event type: %s", e.Type)
			}
		})

		updated, err := uc.Reprice(context.Background(), "sr-1", 200, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Total != 230 {
			t.Fatalf("unexpected total: %v", updated.Total)
		}
	})

	t.Run("request deleted between read and refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewQuotationUseCase(repo, srRepo, testConfig(), nil)

		repo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{ServiceRequestID: "sr-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil })
		srRepo.EXPECT().UpdateQuoteFigures(gomock.Any(), "sr-1", 50.0, 0.0, 50.0, false).Return(entities.ServiceRequest{}, interfaces.ErrRecordNotFound)

		_, err := uc.Reprice(context.Background(), "sr-1", 50, false)
		if !errors.Is(err, ErrServiceRequestNotFound) {
			t.Fatalf("expected ErrServiceRequestNotFound, got %v", err)
		}
	})

	t.Run("denormalized refresh failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewQuotationUseCase(repo, srRepo, testConfig(), nil)

		repo.EXPECT().GetByServiceRequestID(gomock.Any(), "sr-1").Return(entities.Quotation{ServiceRequestID: "sr-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil })
		srRepo.EXPECT().UpdateQuoteFigures(gomock.Any(), "sr-1", 50.0, 0.0, 50.0, false).Return(entities.ServiceRequest{}, errors.New("ddb"))

		_, err := uc.Reprice(context.Background(), "sr-1", 50, false)
		if err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})
}
