package ledger

import "time"

// DevolucionGarantia registro único de devolución de garantía de un evento.
// El evento solo tiene un slot: existir el registro basta para rechazar un
// segundo intento (chequeo de presencia, no contador).
type DevolucionGarantia struct {
	MontoGarantia   float64
	MontoDescontado float64
	MontoDevuelto   float64
	Motivo          string
	Fecha           time.Time
}

// DevolverGarantia calcula la devolución: garantía − descuento. Falla con
// ErrMontoInvalido si el descuento es negativo o excede la garantía, y con
// ErrGarantiaYaDevuelta si ya existe una devolución; el registro existente
// nunca se altera.
func DevolverGarantia(garantia float64, existente *DevolucionGarantia, descuento float64, motivo string, fecha time.Time) (DevolucionGarantia, error) {
	if existente != nil {
		return DevolucionGarantia{}, &ValidationError{
			Campo:  "garantia",
			Motivo: "ya existe una devolución registrada para este evento",
			Tipo:   ErrGarantiaYaDevuelta,
		}
	}
	if !esMontoUtilizable(descuento) {
		return DevolucionGarantia{}, montoInvalido("monto_descontado", "debe ser un monto no negativo")
	}
	if descuento > garantia {
		return DevolucionGarantia{}, montoInvalido("monto_descontado", "no puede exceder el monto de la garantía")
	}
	return DevolucionGarantia{
		MontoGarantia:   Redondear2(garantia),
		MontoDescontado: Redondear2(descuento),
		MontoDevuelto:   Redondear2(garantia - descuento),
		Motivo:          motivo,
		Fecha:           fecha,
	}, nil
}
