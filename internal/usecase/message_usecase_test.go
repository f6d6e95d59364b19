package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
	mock_interfaces "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces/mocks"
)

func TestMessageUseCase_ComposeStatusMessage(t *testing.T) {
	t.Run("service request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewMessageUseCase(srRepo, nil, nil, testConfig())

		srRepo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.ComposeStatusMessage(context.Background(), "sr-1", MessageRequest{})
		if !errors.Is(err, ErrServiceRequestNotFound) {
			t.Fatalf("expected ErrServiceRequestNotFound, got %v", err)
		}
	})

	t.Run("missing client phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewMessageUseCase(srRepo, clientRepo, nil, testConfig())

		srRepo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", ClientID: "cli-1"}, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Phone: " - "}, nil)

		_, err := uc.ComposeStatusMessage(context.Background(), "sr-1", MessageRequest{})
		if !errors.Is(err, ErrMissingClientPhone) {
			t.Fatalf("expected ErrMissingClientPhone, got %v", err)
		}
	})

	t.Run("composes message and whatsapp link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		generator := mock_interfaces.NewMockIMessageGenerator(ctrl)
		uc := NewMessageUseCase(srRepo, clientRepo, generator, testConfig())

		srRepo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{
			ID: "sr-1", ClientID: "cli-1", Status: entities.StatusInProgress, QuoteTotal: 230,
		}, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{
			ID: "cli-1", FirstName: "Ana", LastName: "Pérez", Phone: "+593 (99) 123-4567",
		}, nil)
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.MessageInput) (string, error) {
				if in.ClientName != "Ana Pérez" {
					t.Fatalf("unexpected client name: %q", in.ClientName)
				}
				if in.RepairStatus != "En Progreso" {
					t.Fatalf("unexpected status label: %q", in.RepairStatus)
				}
				if in.PricingInformation != "Total: $230.00" {
					t.Fatalf("expected pricing derived from the quote, got %q", in.PricingInformation)
				}
				return "Hola Ana, su reparación está en progreso", nil
			})

		msg, err := uc.ComposeStatusMessage(context.Background(), "sr-1", MessageRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.Phone != "593991234567" {
			t.Fatalf("expected digits-only phone, got %q", msg.Phone)
		}
		if !strings.HasPrefix(msg.WhatsAppURL, "https://wa.me/593991234567?text=") {
			t.Fatalf("unexpected url: %q", msg.WhatsAppURL)
		}
		if strings.Contains(msg.WhatsAppURL, " ") {
			t.Fatalf("url must be escaped: %q", msg.WhatsAppURL)
		}
	})

	t.Run("explicit pricing wins over the quote figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		generator := mock_interfaces.NewMockIMessageGenerator(ctrl)
		uc := NewMessageUseCase(srRepo, clientRepo, generator, testConfig())

		srRepo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{
			ID: "sr-1", ClientID: "cli-1", Status: entities.StatusCompleted, QuoteTotal: 230,
		}, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Phone: "0991234567"}, nil)
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.MessageInput) (string, error) {
				if in.PricingInformation != "Saldo pendiente: $115" {
					t.Fatalf("unexpected pricing: %q", in.PricingInformation)
				}
				return "mensaje", nil
			})

		_, err := uc.ComposeStatusMessage(context.Background(), "sr-1", MessageRequest{PricingInformation: "Saldo pendiente: $115"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		srRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		generator := mock_interfaces.NewMockIMessageGenerator(ctrl)
		uc := NewMessageUseCase(srRepo, clientRepo, generator, testConfig())

		srRepo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(entities.ServiceRequest{ID: "sr-1", ClientID: "cli-1"}, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Phone: "0991234567"}, nil)
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("upstream 500"))

		_, err := uc.ComposeStatusMessage(context.Background(), "sr-1", MessageRequest{})
		if !errors.Is(err, ErrMessageGenerationFailed) {
			t.Fatalf("expected ErrMessageGenerationFailed, got %v", err)
		}
	})
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+593 (99) 123-4567": "593991234567",
		"0991234567":         "0991234567",
		"  ":                 "",
		"ext. 12":            "12",
		"٩٩123":              "123", // non-ASCII digits are not wa.me digits
	}
	for in, want := range cases {
		if got := normalizePhone(in); got != want {
			t.Fatalf("normalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}
