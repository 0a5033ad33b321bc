// Package mail implementa el envío de correo saliente vía SMTP.
package mail

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/tienda-api/internal/application/facturacion"
	"github.com/jhoicas/tienda-api/pkg/config"
)

var _ facturacion.Mailer = (*GomailSender)(nil)

// GomailSender implementa facturacion.Mailer usando gomail sobre SMTP.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Enviar envía un correo con el adjunto dado. El dial y el envío son
// síncronos; el caller decide si tolera el fallo.
func (s *GomailSender) Enviar(_ context.Context, destinatario, asunto, cuerpo string, adjunto []byte, nombreAdjunto string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", destinatario)
	m.SetHeader("Subject", asunto)
	m.SetBody("text/html", cuerpo)
	if len(adjunto) > 0 {
		m.Attach(nombreAdjunto, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(adjunto)
			return err
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: enviar a %s: %w", destinatario, err)
	}
	return nil
}
