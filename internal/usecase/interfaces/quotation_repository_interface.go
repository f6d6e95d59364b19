package interfaces

import (
	"context"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// The quotation table uses the parent service request id as PK, so there is
// exactly one quotation per request and lookups by request are direct gets.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByServiceRequestID(ctx context.Context, serviceRequestID string) (entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
}
