package service

import (
	"testing"
	"time"

	"eventos/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerarCuerpoAlerta(t *testing.T) {
	s := newTestEmailService()
	body := s.generarCuerpoAlerta(AlertaEdicionSospechosa{
		ActorNombre: "María Quispe",
		Rol:         "socio",
		EventoID:    42,
		Descripcion: "Actualizó el gasto 'Carbón' de 80.00 a 120.00",
		Fecha:       time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local),
	})
	assert.Contains(t, body, "María Quispe")
	assert.Contains(t, body, "socio")
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, "Carbón")
	assert.Contains(t, body, "2025-06-15 18:30:00")
	assert.Contains(t, body, "no fue bloqueada")
}

func TestSendAlertaSinHabilitar(t *testing.T) {
	s := newTestEmailService()
	err := s.SendAlertaEdicionSospechosa(AlertaEdicionSospechosa{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no habilitado")
}

func TestSendAlertaSinDestinatario(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	err := s.SendAlertaEdicionSospechosa(AlertaEdicionSospechosa{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "alert_to")
}
