package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevolverGarantia(t *testing.T) {
	fecha := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	dev, err := DevolverGarantia(500, nil, 120, "vajilla rota", fecha)
	require.NoError(t, err)
	assert.Equal(t, 500.0, dev.MontoGarantia)
	assert.Equal(t, 120.0, dev.MontoDescontado)
	assert.Equal(t, 380.0, dev.MontoDevuelto)
	assert.Equal(t, "vajilla rota", dev.Motivo)
	assert.Equal(t, fecha, dev.Fecha)
}

func TestDevolverGarantia_SinDescuento(t *testing.T) {
	dev, err := DevolverGarantia(500, nil, 0, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 500.0, dev.MontoDevuelto)
}

func TestDevolverGarantia_DescuentoExcesivo(t *testing.T) {
	_, err := DevolverGarantia(500, nil, 600, "", time.Now())
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = DevolverGarantia(500, nil, -1, "", time.Now())
	assert.ErrorIs(t, err, ErrMontoInvalido)
}

func TestDevolverGarantia_YaDevuelta(t *testing.T) {
	existente := &DevolucionGarantia{MontoGarantia: 500, MontoDevuelto: 500}

	// el segundo intento falla y el registro existente no se altera
	_, err := DevolverGarantia(500, existente, 0, "", time.Now())
	assert.ErrorIs(t, err, ErrGarantiaYaDevuelta)
	assert.Equal(t, 500.0, existente.MontoDevuelto)
}
