package service

import (
	"fmt"
	"time"

	"eventos/config"

	"gopkg.in/gomail.v2"
)

// EmailService servicio de correo
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService crea el servicio de correo
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// AlertaEdicionSospechosa datos de una edición de gastos hecha por un rol
// elevado, para notificar a los socios
type AlertaEdicionSospechosa struct {
	ActorNombre string
	Rol         string
	EventoID    uint
	Descripcion string
	Fecha       time.Time
}

// SendAlertaEdicionSospechosa envía la alerta al correo configurado
func (s *EmailService) SendAlertaEdicionSospechosa(alerta AlertaEdicionSospechosa) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("servicio de correo no habilitado, configurar email.enabled=true")
	}
	if s.cfg.AlertTo == "" {
		return fmt.Errorf("sin destinatario de alertas, configurar email.alert_to")
	}

	subject := "[Eventos] Edición de gastos por rol elevado"
	body := s.generarCuerpoAlerta(alerta)

	return s.sendEmail(s.cfg.AlertTo, subject, body)
}

// generarCuerpoAlerta genera el contenido de la alerta
func (s *EmailService) generarCuerpoAlerta(a AlertaEdicionSospechosa) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #b45309, #92400e); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .warning p { margin: 0; color: #856404; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>⚠️ Edición sospechosa de gastos</h1>
        </div>
        <div class="content">
            <p><strong>%s</strong> (rol: %s) editó gastos del evento #%d.</p>
            <p>%s</p>
            <div class="warning">
                <p>El registro de gastos es tarea del rol compras. La operación no fue bloqueada, solo quedó marcada en la auditoría para revisión.</p>
            </div>
            <p>Fecha: %s</p>
        </div>
        <div class="footer">
            <p>Correo automático del sistema de eventos, no responder</p>
        </div>
    </div>
</body>
</html>
`, a.ActorNombre, a.Rol, a.EventoID, a.Descripcion, a.Fecha.Format("2006-01-02 15:04:05"))
}

// sendEmail envía un correo
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar el correo: %w", err)
	}

	return nil
}

// SendTestEmail envía un correo de prueba de configuración
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("servicio de correo no habilitado")
	}

	subject := "[Eventos] Prueba de configuración de correo"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ Configuración de correo correcta</h2>
    <p>Si recibió este mensaje, el servicio de correo está bien configurado.</p>
    <p style="color: #666;">— Sistema de eventos</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
