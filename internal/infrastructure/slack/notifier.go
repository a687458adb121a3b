// Package slack implementa el puerto Notifier contra un incoming webhook de
// Slack. La entrega es best-effort: se despacha en segundo plano, los fallos
// se registran en el log y jamás llegan al llamador.
package slack

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jcampos/albaranes-api/internal/application/ports"
)

var _ ports.Notifier = (*WebhookNotifier)(nil)

// WebhookNotifier publica mensajes de texto en un webhook de Slack.
type WebhookNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookNotifier construye el notificador. Con URL vacía los mensajes se
// descartan en silencio (útil en desarrollo y tests).
func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Text string `json:"text"`
}

// Notify envía el mensaje sin bloquear al llamador. La respuesta de la
// mutación principal no espera a Slack.
func (n *WebhookNotifier) Notify(text string) {
	if n.webhookURL == "" {
		return
	}
	go n.post(text)
}

func (n *WebhookNotifier) post(text string) {
	body, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		log.Error().Err(err).Msg("slack: serializar payload")
		return
	}
	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("slack: enviar mensaje")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Msg("slack: webhook respondió con error")
	}
}
