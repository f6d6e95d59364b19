package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	mock_interfaces "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces/mocks"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), CreateClientInput{Phone: "0991234567"})
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("requires a phone", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), CreateClientInput{FirstName: "Ana"})
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("creates with generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.FirstName != "Ana" || c.Phone != "0991234567" {
					t.Fatalf("unexpected client: %+v", c)
				}
				return c, nil
			})

		_, err := uc.Create(context.Background(), CreateClientInput{FirstName: " Ana ", Phone: " 0991234567 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), "cli-1", CreateClientInput{Phone: "0991234567"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("empty fields keep existing values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{
			ID: "cli-1", FirstName: "Ana", LastName: "Pérez", Phone: "0991234567", Address: "Av. Amazonas",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.FirstName != "Ana" || c.Phone != "0999999999" || c.Address != "Av. Amazonas" {
					t.Fatalf("unexpected merge: %+v", c)
				}
				return c, nil
			})

		_, err := uc.Update(context.Background(), "cli-1", CreateClientInput{Phone: "0999999999"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
