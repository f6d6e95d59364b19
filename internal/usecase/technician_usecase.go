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

var ErrInvalidTechnicianInput = errors.New("invalid technician input")

// CreateTechnicianInput carries the fields for registering a technician.
type CreateTechnicianInput struct {
	FirstName         string
	LastName          string
	Phone             string
	Email             string
	Category          string
	WorkZone          string
	CriminalRecordURL string
}

type ITechnicianUseCase interface {
	Create(ctx context.Context, input CreateTechnicianInput) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context) ([]entities.Technician, error)
	Update(ctx context.Context, id string, input CreateTechnicianInput) (entities.Technician, error)
}

type TechnicianUseCase struct {
	repo interfaces.ITechnicianRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo}
}

func (u *TechnicianUseCase) Create(ctx context.Context, input CreateTechnicianInput) (entities.Technician, error) {
	input = trimTechnicianInput(input)
	if input.FirstName == "" && input.LastName == "" {
		return entities.Technician{}, ErrInvalidTechnicianInput
	}

	t := entities.Technician{
		ID:                uuid.NewString(),
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Phone:             input.Phone,
		Email:             input.Email,
		Category:          input.Category,
		WorkZone:          input.WorkZone,
		CriminalRecordURL: input.CriminalRecordURL,
		CreatedAt:         time.Now().UTC(),
	}
	return u.repo.Create(ctx, t)
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if t.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

func (u *TechnicianUseCase) List(ctx context.Context) ([]entities.Technician, error) {
	return u.repo.List(ctx)
}

func (u *TechnicianUseCase) Update(ctx context.Context, id string, input CreateTechnicianInput) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	input = trimTechnicianInput(input)

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if existing.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
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
	if input.Category != "" {
		existing.Category = input.Category
	}
	if input.WorkZone != "" {
		existing.WorkZone = input.WorkZone
	}
	if input.CriminalRecordURL != "" {
		existing.CriminalRecordURL = input.CriminalRecordURL
	}
	return u.repo.Update(ctx, existing)
}

func trimTechnicianInput(input CreateTechnicianInput) CreateTechnicianInput {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Category = strings.TrimSpace(input.Category)
	input.WorkZone = strings.TrimSpace(input.WorkZone)
	input.CriminalRecordURL = strings.TrimSpace(input.CriminalRecordURL)
	return input
}
