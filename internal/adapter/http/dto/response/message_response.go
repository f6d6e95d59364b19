package response

import "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase"

type MessageResponse struct {
	Message     string `json:"message"`
	Phone       string `json:"phone"`
	WhatsAppURL string `json:"whatsapp_url"`
}

func FromGeneratedMessage(m usecase.GeneratedMessage) MessageResponse {
	return MessageResponse{
		Message:     m.Message,
		Phone:       m.Phone,
		WhatsAppURL: m.WhatsAppURL,
	}
}
