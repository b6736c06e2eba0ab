package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadoDePago(t *testing.T) {
	assert.Equal(t, PagoPendiente, EstadoDePago(0, 100))
	assert.Equal(t, PagoParcial, EstadoDePago(40, 100))
	assert.Equal(t, PagoCompleto, EstadoDePago(100, 100))
	assert.Equal(t, PagoCompleto, EstadoDePago(120, 100))
}

func TestRegistrarPago_Secuencia(t *testing.T) {
	cuenta := &CuentaDecoracion{PrecioTotal: 200}
	ahora := time.Now()

	estado, err := RegistrarPago(cuenta, 80, "efectivo", ahora)
	require.NoError(t, err)
	assert.Equal(t, PagoParcial, estado)
	assert.Equal(t, 80.0, cuenta.TotalPagado())
	assert.Equal(t, 120.0, cuenta.SaldoRestante())

	estado, err = RegistrarPago(cuenta, 120, "transferencia", ahora)
	require.NoError(t, err)
	assert.Equal(t, PagoCompleto, estado)
	assert.Equal(t, 200.0, cuenta.TotalPagado())

	// invariante: sum(pagos) <= precio total en todo momento
	assert.LessOrEqual(t, cuenta.TotalPagado(), cuenta.PrecioTotal)
}

func TestRegistrarPago_ExcedeSaldo(t *testing.T) {
	cuenta := &CuentaDecoracion{PrecioTotal: 100}
	_, err := RegistrarPago(cuenta, 60, "efectivo", time.Now())
	require.NoError(t, err)

	// el pago N+1 que rompería el invariante se rechaza y nada cambia
	_, err = RegistrarPago(cuenta, 50, "efectivo", time.Now())
	assert.ErrorIs(t, err, ErrMontoInvalido)
	assert.Len(t, cuenta.Pagos, 1)
	assert.Equal(t, 60.0, cuenta.TotalPagado())
}

func TestValidarNuevoPrecio(t *testing.T) {
	cuenta := CuentaDecoracion{PrecioTotal: 450}
	_, err := RegistrarPago(&cuenta, 150, "efectivo", time.Now())
	require.NoError(t, err)

	// el precio puede subir o igualar lo cobrado, nunca caer por debajo
	assert.NoError(t, ValidarNuevoPrecio(cuenta, 600))
	assert.NoError(t, ValidarNuevoPrecio(cuenta, 150))
	assert.ErrorIs(t, ValidarNuevoPrecio(cuenta, 100), ErrMontoInvalido)
}

func TestRegistrarPago_MontoNoPositivo(t *testing.T) {
	cuenta := &CuentaDecoracion{PrecioTotal: 100}

	_, err := RegistrarPago(cuenta, 0, "efectivo", time.Now())
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = RegistrarPago(cuenta, -10, "efectivo", time.Now())
	assert.ErrorIs(t, err, ErrMontoInvalido)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "monto", ve.Campo)
	assert.Empty(t, cuenta.Pagos)
}
