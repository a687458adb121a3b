// Package email implementa el puerto EmailSender sobre SMTP con gomail.
package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jcampos/albaranes-api/internal/application/ports"
	"github.com/jcampos/albaranes-api/pkg/config"
)

var _ ports.EmailSender = (*SMTPSender)(nil)

// SMTPSender envía correos de texto plano vía SMTP.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender construye el sender con la configuración SMTP de la app.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send entrega el mensaje. Devuelve error en fallos duros (conexión, auth,
// destinatario rechazado); el llamador decide si el fallo es fatal.
func (s *SMTPSender) Send(to, subject, body string) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("email: SMTP no configurado")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("email: enviar a %s: %w", to, err)
	}
	return nil
}
