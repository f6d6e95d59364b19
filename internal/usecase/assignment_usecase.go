package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/config"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

var (
	ErrInvalidTechnicianID = errors.New("invalid technician id")
	ErrTechnicianNotFound  = errors.New("technician not found")
)

// UnassignedLabel is the display marker for a request with no technician.
const UnassignedLabel = "No asignado"

// IAssignmentUseCase manages the optional technician assignment on a
// service request.
//
// The relation is stored as a reference (id), never as a copy of the
// technician record: display values are resolved at read time so a later
// profile edit is always reflected. Assignment is allowed in any status,
// including terminal ones, to support post-completion record-keeping.

type IAssignmentUseCase interface {
	Assign(ctx context.Context, serviceRequestID, technicianID string) (entities.ServiceRequest, error)
	Unassign(ctx context.Context, serviceRequestID string) (entities.ServiceRequest, error)
	ResolveDisplayName(ctx context.Context, serviceRequestID string) (string, error)
}

type AssignmentUseCase struct {
	srRepo        interfaces.IServiceRequestRepository
	techRepo      interfaces.ITechnicianRepository
	lookupTimeout time.Duration
	notifier      interfaces.INotifier
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(
	srRepo interfaces.IServiceRequestRepository,
	techRepo interfaces.ITechnicianRepository,
	cfg config.Config,
	notifier interfaces.INotifier,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		srRepo:        srRepo,
		techRepo:      techRepo,
		lookupTimeout: cfg.LookupTimeout,
		notifier:      notifier,
	}
}

// Assign points the request at the technician. The write is a field-level
// update: it cannot clobber a status or quote change racing with it.
func (u *AssignmentUseCase) Assign(ctx context.Context, serviceRequestID, technicianID string) (entities.ServiceRequest, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceRequestID
	}
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.ServiceRequest{}, ErrInvalidTechnicianID
	}

	sr, err := u.srRepo.GetByID(ctx, serviceRequestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}

	lookupCtx, cancel := context.WithTimeout(ctx, u.lookupTimeout)
	defer cancel()
	tech, err := u.techRepo.GetByID(lookupCtx, technicianID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if tech.ID == "" {
		return entities.ServiceRequest{}, ErrTechnicianNotFound
	}

	updated, err := u.srRepo.UpdateAssignedTechnician(ctx, serviceRequestID, technicianID)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	if u.notifier != nil {
		u.notifier.Publish(interfaces.Event{
			Type:             "service_request.assigned",
			ServiceRequestID: serviceRequestID,
			Status:           string(updated.Status),
			At:               time.Now().UTC(),
		})
	}
	return updated, nil
}

// Unassign clears the relation. Clearing an already-unassigned request is a
// no-op, not an error.
func (u *AssignmentUseCase) Unassign(ctx context.Context, serviceRequestID string) (entities.ServiceRequest, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceRequestID
	}

	sr, err := u.srRepo.GetByID(ctx, serviceRequestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	if sr.AssignedTechnicianID == "" {
		return sr, nil
	}

	updated, err := u.srRepo.UpdateAssignedTechnician(ctx, serviceRequestID, "")
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	if u.notifier != nil {
		u.notifier.Publish(interfaces.Event{
			Type:             "service_request.unassigned",
			ServiceRequestID: serviceRequestID,
			Status:           string(updated.Status),
			At:               time.Now().UTC(),
		})
	}
	return updated, nil
}

// ResolveDisplayName looks up the assigned technician's current name through
// the reference, never through a stored copy.
func (u *AssignmentUseCase) ResolveDisplayName(ctx context.Context, serviceRequestID string) (string, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return "", ErrInvalidServiceRequestID
	}

	sr, err := u.srRepo.GetByID(ctx, serviceRequestID)
	if err != nil {
		return "", err
	}
	if sr.ID == "" {
		return "", ErrServiceRequestNotFound
	}
	if sr.AssignedTechnicianID == "" {
		return UnassignedLabel, nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, u.lookupTimeout)
	defer cancel()
	tech, err := u.techRepo.GetByID(lookupCtx, sr.AssignedTechnicianID)
	if err != nil {
		return "", err
	}
	if tech.ID == "" {
		return "", ErrTechnicianNotFound
	}
	return tech.FullName(), nil
}
