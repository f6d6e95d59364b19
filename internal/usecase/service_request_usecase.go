package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/config"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/quote"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

var (
	ErrServiceRequestNotFound  = errors.New("service request not found")
	ErrInvalidServiceRequestID = errors.New("invalid service request id")
	ErrInvalidClientID         = errors.New("invalid client id")
	ErrClientNotFound          = errors.New("client not found")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTransition       = errors.New("invalid status transition")

	// ErrConcurrentModification surfaces an optimistic-concurrency conflict
	// that persisted through the bounded retries.
	ErrConcurrentModification = interfaces.ErrConcurrentModification
)

// maxTransitionRetries bounds the re-read/re-apply loop on version conflicts
// before the conflict is surfaced to the caller.
const maxTransitionRetries = 3

// quotationValidityDays is how long a freshly issued quotation stays open.
const quotationValidityDays = 30

// CreateServiceRequestInput carries the fields needed to open a new request.
type CreateServiceRequestInput struct {
	ClientID    string
	Description string
	Category    string
	Subtotal    float64
	ApplyVat    bool
}

// IServiceRequestUseCase exposes the service request lifecycle.
//
// Status changes go through Transition, which enforces the edge table and
// applies exactly the side-effect timestamp documented for the edge taken.

type IServiceRequestUseCase interface {
	Create(ctx context.Context, input CreateServiceRequestInput) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, status *entities.ServiceRequestStatus) ([]entities.ServiceRequest, error)
	Transition(ctx context.Context, id string, target entities.ServiceRequestStatus, reason, author string) (entities.ServiceRequest, error)
	AddNote(ctx context.Context, id, text, author string) (entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	repo          interfaces.IServiceRequestRepository
	quotationRepo interfaces.IQuotationRepository
	clientRepo    interfaces.IClientRepository
	calc          quote.Calculator
	policy        entities.TransitionPolicy
	cfg           config.Config
	notifier      interfaces.INotifier
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(
	repo interfaces.IServiceRequestRepository,
	quotationRepo interfaces.IQuotationRepository,
	clientRepo interfaces.IClientRepository,
	cfg config.Config,
	notifier interfaces.INotifier,
) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		repo:          repo,
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		calc:          quote.NewCalculator(cfg.VATRate),
		policy:        entities.TransitionPolicy{AllowCancelCompleted: cfg.AllowCancelCompleted},
		cfg:           cfg,
		notifier:      notifier,
	}
}

// Create opens a service request in Quote status, with the quotation figures
// derived from the user-entered subtotal. The authoritative Quotation record
// and the denormalized copy on the request are written in the same logical
// operation.
func (u *ServiceRequestUseCase) Create(ctx context.Context, input CreateServiceRequestInput) (entities.ServiceRequest, error) {
	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" {
		return entities.ServiceRequest{}, ErrInvalidClientID
	}

	lookupCtx, cancel := context.WithTimeout(ctx, u.cfg.LookupTimeout)
	defer cancel()
	client, err := u.clientRepo.GetByID(lookupCtx, clientID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if client.ID == "" {
		return entities.ServiceRequest{}, ErrClientNotFound
	}

	figures, err := u.calc.Calculate(input.Subtotal, input.ApplyVat)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	now := time.Now().UTC()
	sr := entities.ServiceRequest{
		ID:                 uuid.NewString(),
		ClientID:           clientID,
		Description:        strings.TrimSpace(input.Description),
		Category:           strings.TrimSpace(input.Category),
		Status:             entities.StatusQuote,
		QuoteSubtotal:      figures.Subtotal,
		QuoteVat:           figures.VatAmount,
		QuoteTotal:         figures.Total,
		QuoteIncludesVat:   figures.IncludesVat,
		WarrantyPeriodDays: u.cfg.DefaultWarrantyDays,
		CreatedAt:          now,
		Version:            1,
	}

	created, err := u.repo.Create(ctx, sr)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	q := entities.Quotation{
		ServiceRequestID:         created.ID,
		Subtotal:                 figures.Subtotal,
		VatAmount:                figures.VatAmount,
		Total:                    figures.Total,
		IncludesVat:              figures.IncludesVat,
		InitialPaymentPercentage: u.cfg.InitialPaymentPct,
		GuaranteeDays:            u.cfg.DefaultGuaranteeDays,
		CreatedAt:                now,
		ExpiresAt:                now.AddDate(0, 0, quotationValidityDays),
		UpdatedAt:                now,
	}
	if _, err := u.quotationRepo.Create(ctx, q); err != nil {
		log.Error().Err(err).Str("service_request_id", created.ID).Msg("quotation create failed after request create")
		return entities.ServiceRequest{}, err
	}

	u.publish("service_request.created", created)
	return created, nil
}

// GetByID returns the request, repairing the denormalized quote copy when it
// has drifted from the authoritative quotation record.
func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceRequestID
	}

	sr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}

	q, err := u.quotationRepo.GetByServiceRequestID(ctx, id)
	if err != nil || q.ServiceRequestID == "" {
		// The quotation is an auxiliary read here; a failed lookup must not
		// break rendering the request.
		return sr, nil
	}
	if quoteDrifted(sr, q) {
		log.Warn().Str("service_request_id", id).Msg("quote figures drifted from quotation; repairing")
		repaired, err := u.repo.UpdateQuoteFigures(ctx, id, q.Subtotal, q.VatAmount, q.Total, q.IncludesVat)
		if err != nil {
			// Serve the authoritative figures even if the repair write lost.
			sr.QuoteSubtotal, sr.QuoteVat, sr.QuoteTotal, sr.QuoteIncludesVat = q.Subtotal, q.VatAmount, q.Total, q.IncludesVat
			return sr, nil
		}
		return repaired, nil
	}
	return sr, nil
}

func (u *ServiceRequestUseCase) List(ctx context.Context, status *entities.ServiceRequestStatus) ([]entities.ServiceRequest, error) {
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.List(ctx, status)
}

// Transition moves the request to the target status. Requesting the current
// status is a no-op; an edge outside the table fails with
// ErrInvalidTransition and leaves the record unchanged. Version conflicts
// are retried a bounded number of times by re-reading and re-validating.
func (u *ServiceRequestUseCase) Transition(ctx context.Context, id string, target entities.ServiceRequestStatus, reason, author string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceRequestID
	}
	if !target.IsValid() {
		return entities.ServiceRequest{}, ErrInvalidStatus
	}

	for attempt := 0; attempt < maxTransitionRetries; attempt++ {
		sr, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		if sr.ID == "" {
			return entities.ServiceRequest{}, ErrServiceRequestNotFound
		}

		if sr.Status == target {
			return sr, nil
		}
		if !sr.Status.CanTransition(target, u.policy) {
			return entities.ServiceRequest{}, ErrInvalidTransition
		}

		now := time.Now().UTC()
		sr.ApplyTransition(target, now)
		if target == entities.StatusCanceled && strings.TrimSpace(reason) != "" {
			sr.AppendNote("Cancelación: "+strings.TrimSpace(reason), author, now)
		}

		saved, err := u.repo.Save(ctx, sr)
		if errors.Is(err, interfaces.ErrConcurrentModification) {
			log.Warn().Str("service_request_id", id).Int("attempt", attempt+1).Msg("transition hit concurrent modification; retrying")
			continue
		}
		if err != nil {
			return entities.ServiceRequest{}, err
		}

		u.publish("service_request.status_changed", saved)
		return saved, nil
	}
	return entities.ServiceRequest{}, ErrConcurrentModification
}

// AddNote appends to the request's note trail.
func (u *ServiceRequestUseCase) AddNote(ctx context.Context, id, text, author string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceRequestID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ServiceRequest{}, errors.New("note text is empty")
	}

	for attempt := 0; attempt < maxTransitionRetries; attempt++ {
		sr, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		if sr.ID == "" {
			return entities.ServiceRequest{}, ErrServiceRequestNotFound
		}

		sr.AppendNote(text, author, time.Now().UTC())

		saved, err := u.repo.Save(ctx, sr)
		if errors.Is(err, interfaces.ErrConcurrentModification) {
			continue
		}
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		return saved, nil
	}
	return entities.ServiceRequest{}, ErrConcurrentModification
}

func (u *ServiceRequestUseCase) publish(eventType string, sr entities.ServiceRequest) {
	if u.notifier == nil {
		return
	}
	u.notifier.Publish(interfaces.Event{
		Type:             eventType,
		ServiceRequestID: sr.ID,
		Status:           string(sr.Status),
		At:               time.Now().UTC(),
	})
}

func quoteDrifted(sr entities.ServiceRequest, q entities.Quotation) bool {
	return sr.QuoteSubtotal != q.Subtotal ||
		sr.QuoteVat != q.VatAmount ||
		sr.QuoteTotal != q.Total ||
		sr.QuoteIncludesVat != q.IncludesVat
}
