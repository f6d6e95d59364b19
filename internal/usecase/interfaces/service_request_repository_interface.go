package interfaces

import (
	"context"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
)

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Two write modes are exposed on purpose:
//   - Save is a conditional full-record write guarded by the record version;
//     it fails with ErrConcurrentModification when the stored version no
//     longer matches. Status transitions and anything that depends on a
//     previously read copy go through it.
//   - UpdateAssignedTechnician / UpdateQuoteFigures are field-level updates
//     that do not depend on a previously read copy, so a lost update can
//     only affect the field being written. They bump the record version so
//     a racing Save fails its check, and return ErrRecordNotFound when the
//     record was deleted in between.
type IServiceRequestRepository interface {
	Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, status *entities.ServiceRequestStatus) ([]entities.ServiceRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.ServiceRequest, error)

	// Save writes the full record if the stored version equals sr.Version,
	// bumping the version by one. Returns ErrConcurrentModification on a
	// version mismatch.
	Save(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)

	// UpdateAssignedTechnician sets the assignment reference, or removes it
	// when technicianID is empty. Returns ErrRecordNotFound when the request
	// no longer exists.
	UpdateAssignedTechnician(ctx context.Context, id, technicianID string) (entities.ServiceRequest, error)

	// UpdateQuoteFigures refreshes the denormalized quote copy on the request.
	UpdateQuoteFigures(ctx context.Context, id string, subtotal, vat, total float64, includesVat bool) (entities.ServiceRequest, error)
}
