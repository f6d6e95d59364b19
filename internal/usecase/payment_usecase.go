package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

var (
	ErrPaymentNotAllowed    = errors.New("payment not allowed in current status")
	ErrPaymentRejected      = errors.New("payment rejected by provider")
	ErrPaymentGatewayFailed = errors.New("payment gateway failed")
)

// IPaymentUseCase collects the two payments of the lifecycle and drives the
// transitions they confirm:
//   - initial payment: Approved -> InProgress
//   - final payment:   Completed -> Closed

type IPaymentUseCase interface {
	CollectInitialPayment(ctx context.Context, serviceRequestID string, payload json.RawMessage) (entities.Payment, error)
	CollectFinalPayment(ctx context.Context, serviceRequestID string, payload json.RawMessage) (entities.Payment, error)
	ListByServiceRequestID(ctx context.Context, serviceRequestID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo          interfaces.IPaymentRepository
	quotationRepo interfaces.IQuotationRepository
	gateway       interfaces.IPaymentGateway
	requests      IServiceRequestUseCase
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	quotationRepo interfaces.IQuotationRepository,
	gateway interfaces.IPaymentGateway,
	requests IServiceRequestUseCase,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quotationRepo: quotationRepo, gateway: gateway, requests: requests}
}

func (u *PaymentUseCase) CollectInitialPayment(ctx context.Context, serviceRequestID string, payload json.RawMessage) (entities.Payment, error) {
	return u.collect(ctx, serviceRequestID, payload, entities.PaymentKindInitial)
}

func (u *PaymentUseCase) CollectFinalPayment(ctx context.Context, serviceRequestID string, payload json.RawMessage) (entities.Payment, error) {
	return u.collect(ctx, serviceRequestID, payload, entities.PaymentKindFinal)
}

func (u *PaymentUseCase) collect(ctx context.Context, serviceRequestID string, payload json.RawMessage, kind entities.PaymentKind) (entities.Payment, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return entities.Payment{}, ErrInvalidServiceRequestID
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayFailed
	}

	sr, err := u.requests.GetByID(ctx, serviceRequestID)
	if err != nil {
		return entities.Payment{}, err
	}

	requiredStatus := entities.StatusApproved
	if kind == entities.PaymentKindFinal {
		requiredStatus = entities.StatusCompleted
	}
	if sr.Status != requiredStatus {
		return entities.Payment{}, ErrPaymentNotAllowed
	}

	q, err := u.quotationRepo.GetByServiceRequestID(ctx, serviceRequestID)
	if err != nil {
		return entities.Payment{}, err
	}
	if q.ServiceRequestID == "" {
		return entities.Payment{}, ErrQuotationNotFound
	}

	amount := round2(q.InitialPaymentAmount())
	if kind == entities.PaymentKindFinal {
		amount = round2(q.Total - q.InitialPaymentAmount())
	}

	enriched, err := enrichPaymentPayload(payload, serviceRequestID, kind, amount)
	if err != nil {
		return entities.Payment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Error().Err(err).Str("service_request_id", serviceRequestID).Str("kind", string(kind)).Msg("payment gateway call failed")
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	if providerStatus != "approved" {
		return entities.Payment{}, ErrPaymentRejected
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("service_request_id", serviceRequestID).Msg("provider response not parseable; keeping raw only")
	}

	p := entities.Payment{
		ID:                 providerID,
		ServiceRequestID:   serviceRequestID,
		Kind:               kind,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	target := entities.StatusInProgress
	if kind == entities.PaymentKindFinal {
		target = entities.StatusClosed
	}
	if _, err := u.requests.Transition(ctx, serviceRequestID, target, "", "sistema"); err != nil {
		// The payment is already recorded; the caller must see that the
		// confirmation step failed so it can retry the transition.
		log.Error().Err(err).Str("service_request_id", serviceRequestID).Str("payment_id", created.ID).Msg("status transition failed after payment")
		return created, err
	}
	return created, nil
}

func (u *PaymentUseCase) ListByServiceRequestID(ctx context.Context, serviceRequestID string) ([]entities.Payment, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return nil, ErrInvalidServiceRequestID
	}
	return u.repo.ListByServiceRequestID(ctx, serviceRequestID)
}

// enrichPaymentPayload links the provider request to the service request and
// forces the amount derived from the quotation, which is the source of truth.
func enrichPaymentPayload(payload json.RawMessage, serviceRequestID string, kind entities.PaymentKind, amount float64) (json.RawMessage, error) {
	m := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
		}
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = serviceRequestID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Service request %s (%s payment)", serviceRequestID, kind)
	}
	m["transaction_amount"] = amount
	return json.Marshal(m)
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
