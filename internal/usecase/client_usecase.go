package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

var ErrInvalidClientInput = errors.New("invalid client input")

// CreateClientInput carries the fields for registering a client.
type CreateClientInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
}

type IClientUseCase interface {
	Create(ctx context.Context, input CreateClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, id string, input CreateClientInput) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, input CreateClientInput) (entities.Client, error) {
	input = trimClientInput(input)
	if input.FirstName == "" && input.LastName == "" {
		return entities.Client{}, ErrInvalidClientInput
	}
	if input.Phone == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	c := entities.Client{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, input CreateClientInput) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	input = trimClientInput(input)

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	if input.FirstName != "" {
		existing.FirstName = input.FirstName
	}
	if input.LastName != "" {
		existing.LastName = input.LastName
	}
	if input.Phone != "" {
		existing.Phone = input.Phone
	}
	if input.Email != "" {
		existing.Email = input.Email
	}
	if input.Address != "" {
		existing.Address = input.Address
	}
	return u.repo.Update(ctx, existing)
}

func trimClientInput(input CreateClientInput) CreateClientInput {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Address = strings.TrimSpace(input.Address)
	return input
}
