package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/config"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/quote"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

var ErrQuotationNotFound = errors.New("quotation not found")

// IQuotationUseCase exposes quotation reads and repricing.
//
// Reprice recomputes the figures from scratch (never patches them) and
// refreshes the denormalized copy on the parent request in the same logical
// operation, so a reader never observes the two representations diverging.

type IQuotationUseCase interface {
	GetByServiceRequestID(ctx context.Context, serviceRequestID string) (entities.Quotation, error)
	Reprice(ctx context.Context, serviceRequestID string, subtotal float64, applyVat bool) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo     interfaces.IQuotationRepository
	srRepo   interfaces.IServiceRequestRepository
	calc     quote.Calculator
	notifier interfaces.INotifier
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	srRepo interfaces.IServiceRequestRepository,
	cfg config.Config,
	notifier interfaces.INotifier,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:     repo,
		srRepo:   srRepo,
		calc:     quote.NewCalculator(cfg.VATRate),
		notifier: notifier,
	}
}

func (u *QuotationUseCase) GetByServiceRequestID(ctx context.Context, serviceRequestID string) (entities.Quotation, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return entities.Quotation{}, ErrInvalidServiceRequestID
	}

	q, err := u.repo.GetByServiceRequestID(ctx, serviceRequestID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ServiceRequestID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

// Reprice recomputes the quotation from the new subtotal/VAT flag, writes
// the authoritative record, then updates the request's denormalized copy.
func (u *QuotationUseCase) Reprice(ctx context.Context, serviceRequestID string, subtotal float64, applyVat bool) (entities.Quotation, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return entities.Quotation{}, ErrInvalidServiceRequestID
	}

	figures, err := u.calc.Calculate(subtotal, applyVat)
	if err != nil {
		return entities.Quotation{}, err
	}

	q, err := u.repo.GetByServiceRequestID(ctx, serviceRequestID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ServiceRequestID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	q.Subtotal = figures.Subtotal
	q.VatAmount = figures.VatAmount
	q.Total = figures.Total
	q.IncludesVat = figures.IncludesVat
	q.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	if _, err := u.srRepo.UpdateQuoteFigures(ctx, serviceRequestID, figures.Subtotal, figures.VatAmount, figures.Total, figures.IncludesVat); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return entities.Quotation{}, ErrServiceRequestNotFound
		}
		// The quotation is already the source of truth; the stale copy gets
		// repaired on the next read, but this should not happen silently.
		log.Error().Err(err).Str("service_request_id", serviceRequestID).Msg("denormalized quote refresh failed after reprice")
		return entities.Quotation{}, err
	}

	if u.notifier != nil {
		u.notifier.Publish(interfaces.Event{
			Type:             "quotation.repriced",
			ServiceRequestID: serviceRequestID,
			At:               time.Now().UTC(),
		})
	}
	return updated, nil
}
