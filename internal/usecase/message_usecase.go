package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/config"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

var (
	ErrMessageGenerationFailed = errors.New("message generation failed")
	ErrMissingClientPhone      = errors.New("client has no phone number")
)

// MessageRequest carries the optional free-text fields the technician adds
// to a generated status message.
type MessageRequest struct {
	PricingInformation       string
	AdditionalConsiderations string
}

// GeneratedMessage is the composed message plus the WhatsApp hand-off data.
// Delivery itself is external; this system only produces the deep link.
type GeneratedMessage struct {
	Message     string
	Phone       string
	WhatsAppURL string
}

// IMessageUseCase composes client-facing status messages. Generation is a
// side activity: it never mutates the service request, and a generator
// failure after a committed transition does not roll anything back.

type IMessageUseCase interface {
	ComposeStatusMessage(ctx context.Context, serviceRequestID string, input MessageRequest) (GeneratedMessage, error)
}

type MessageUseCase struct {
	srRepo        interfaces.IServiceRequestRepository
	clientRepo    interfaces.IClientRepository
	generator     interfaces.IMessageGenerator
	lookupTimeout time.Duration
}

var _ IMessageUseCase = (*MessageUseCase)(nil)

func NewMessageUseCase(
	srRepo interfaces.IServiceRequestRepository,
	clientRepo interfaces.IClientRepository,
	generator interfaces.IMessageGenerator,
	cfg config.Config,
) *MessageUseCase {
	return &MessageUseCase{
		srRepo:        srRepo,
		clientRepo:    clientRepo,
		generator:     generator,
		lookupTimeout: cfg.LookupTimeout,
	}
}

func (u *MessageUseCase) ComposeStatusMessage(ctx context.Context, serviceRequestID string, input MessageRequest) (GeneratedMessage, error) {
	serviceRequestID = strings.TrimSpace(serviceRequestID)
	if serviceRequestID == "" {
		return GeneratedMessage{}, ErrInvalidServiceRequestID
	}

	sr, err := u.srRepo.GetByID(ctx, serviceRequestID)
	if err != nil {
		return GeneratedMessage{}, err
	}
	if sr.ID == "" {
		return GeneratedMessage{}, ErrServiceRequestNotFound
	}

	lookupCtx, cancel := context.WithTimeout(ctx, u.lookupTimeout)
	defer cancel()
	client, err := u.clientRepo.GetByID(lookupCtx, sr.ClientID)
	if err != nil {
		return GeneratedMessage{}, err
	}
	if client.ID == "" {
		return GeneratedMessage{}, ErrClientNotFound
	}

	phone := normalizePhone(client.Phone)
	if phone == "" {
		return GeneratedMessage{}, ErrMissingClientPhone
	}

	pricing := strings.TrimSpace(input.PricingInformation)
	if pricing == "" && sr.QuoteTotal > 0 {
		pricing = fmt.Sprintf("Total: $%.2f", sr.QuoteTotal)
	}

	message, err := u.generator.Generate(ctx, interfaces.MessageInput{
		ClientName:               client.FullName(),
		RepairStatus:             sr.Status.DisplayLabel(),
		PricingInformation:       pricing,
		AdditionalConsiderations: strings.TrimSpace(input.AdditionalConsiderations),
	})
	if err != nil {
		return GeneratedMessage{}, fmt.Errorf("%w: %v", ErrMessageGenerationFailed, err)
	}

	return GeneratedMessage{
		Message:     message,
		Phone:       phone,
		WhatsAppURL: "https://wa.me/" + phone + "?text=" + url.QueryEscape(message),
	}, nil
}

// normalizePhone strips everything but ASCII digits from the stored phone
// number; wa.me accepts only 0-9.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
