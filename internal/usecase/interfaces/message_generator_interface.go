package interfaces

import "context"

// MessageInput is the payload handed to the external text generator when
// composing a client-facing status message.
type MessageInput struct {
	ClientName               string
	RepairStatus             string
	PricingInformation       string
	AdditionalConsiderations string
}

// IMessageGenerator abstracts the external message-phrasing collaborator
// (AI service or template engine). It returns the composed message body; a
// failure here must never alter service request state.
type IMessageGenerator interface {
	Generate(ctx context.Context, input MessageInput) (string, error)
}
