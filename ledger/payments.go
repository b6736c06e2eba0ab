package ledger

import "time"

// EstadoPago estado de cobranza de un ítem de decoración. Es una función pura
// de la suma de pagos contra el precio total, nunca se fija a mano.
type EstadoPago string

const (
	PagoPendiente EstadoPago = "pendiente"
	PagoParcial   EstadoPago = "parcial"
	PagoCompleto  EstadoPago = "pagado"
)

// RegistroPago un abono contra un ítem de decoración. Append-only.
type RegistroPago struct {
	Monto  float64
	Metodo string
	Fecha  time.Time
}

// CuentaDecoracion la cuenta por cobrar de un ítem de decoración
type CuentaDecoracion struct {
	// PrecioTotal costo cliente del ítem; tope de la suma de pagos
	PrecioTotal float64
	Pagos       []RegistroPago
}

// TotalPagado suma de los abonos registrados
func (c CuentaDecoracion) TotalPagado() float64 {
	var total float64
	for _, p := range c.Pagos {
		total += p.Monto
	}
	return Redondear2(total)
}

// SaldoRestante lo que falta cobrar del ítem
func (c CuentaDecoracion) SaldoRestante() float64 {
	return Redondear2(c.PrecioTotal - c.TotalPagado())
}

// EstadoDePago deriva el estado de cobranza: 0 → pendiente,
// 0 < suma < total → parcial, suma >= total → pagado.
func EstadoDePago(totalPagado, precioTotal float64) EstadoPago {
	switch {
	case totalPagado <= 0:
		return PagoPendiente
	case totalPagado < precioTotal:
		return PagoParcial
	default:
		return PagoCompleto
	}
}

// ValidarNuevoPrecio verifica que un nuevo costo cliente siga cubriendo los
// abonos ya registrados. Los abonos son append-only: un precio por debajo de
// lo cobrado dejaría la cuenta imposible de saldar.
func ValidarNuevoPrecio(c CuentaDecoracion, nuevoPrecio float64) error {
	if nuevoPrecio < c.TotalPagado() {
		return montoInvalido("costo_cliente", "es menor que los abonos ya registrados")
	}
	return nil
}

// RegistrarPago agrega un abono a la cuenta. Falla con ErrMontoInvalido si el
// monto no es positivo o excede el saldo restante; en ese caso la cuenta queda
// intacta. Invariante: sum(pagos) <= precio total, siempre.
func RegistrarPago(c *CuentaDecoracion, monto float64, metodo string, fecha time.Time) (EstadoPago, error) {
	if !esMontoUtilizable(monto) || monto <= 0 {
		return EstadoDePago(c.TotalPagado(), c.PrecioTotal), montoInvalido("monto", "debe ser mayor que cero")
	}
	if monto > c.SaldoRestante() {
		return EstadoDePago(c.TotalPagado(), c.PrecioTotal), montoInvalido("monto", "excede el saldo restante del ítem")
	}
	c.Pagos = append(c.Pagos, RegistroPago{Monto: monto, Metodo: metodo, Fecha: fecha})
	return EstadoDePago(c.TotalPagado(), c.PrecioTotal), nil
}
