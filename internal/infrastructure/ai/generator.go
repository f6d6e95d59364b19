package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

const defaultRequestTimeout = 10 * time.Second

// MessageGenerator phrases client-facing status messages. When AI_SERVICE_URL
// is set it delegates to the external phrasing service; otherwise it falls
// back to a local template so the message flow keeps working without the
// collaborator.
type MessageGenerator struct {
	serviceURL string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IMessageGenerator = (*MessageGenerator)(nil)

func NewMessageGenerator() *MessageGenerator {
	serviceURL := strings.TrimSpace(os.Getenv("AI_SERVICE_URL"))
	if serviceURL == "" {
		log.Info().Msg("message generator running in template mode")
	} else {
		log.Info().Str("service_url", serviceURL).Msg("message generator using external service")
	}

	return &MessageGenerator{
		serviceURL: serviceURL,
		apiKey:     strings.TrimSpace(os.Getenv("AI_SERVICE_API_KEY")),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

func (g *MessageGenerator) Generate(ctx context.Context, input interfaces.MessageInput) (string, error) {
	if g.serviceURL == "" {
		return templateMessage(input), nil
	}

	payload, err := json.Marshal(map[string]string{
		"clientName":               input.ClientName,
		"repairStatus":             input.RepairStatus,
		"pricingInformation":       input.PricingInformation,
		"additionalConsiderations": input.AdditionalConsiderations,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.serviceURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("message generation request failed")
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status_code", resp.StatusCode).Msg("message generation service error")
		return "", fmt.Errorf("message generation service returned status %d", resp.StatusCode)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Message) == "" {
		return "", fmt.Errorf("message generation service returned an empty message")
	}
	return out.Message, nil
}

func templateMessage(input interfaces.MessageInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s, le escribimos de Maestro Ya.", input.ClientName)
	fmt.Fprintf(&b, " Su solicitud de servicio se encuentra en estado: %s.", input.RepairStatus)
	if input.PricingInformation != "" {
		fmt.Fprintf(&b, " %s.", strings.TrimSuffix(input.PricingInformation, "."))
	}
	if input.AdditionalConsiderations != "" {
		fmt.Fprintf(&b, " %s.", strings.TrimSuffix(input.AdditionalConsiderations, "."))
	}
	b.WriteString(" Quedamos atentos a cualquier consulta.")
	return b.String()
}
