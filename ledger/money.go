package ledger

import "math"

// Redondear2 redondea un monto a 2 decimales (centavos)
func Redondear2(monto float64) float64 {
	return math.Round(monto*100) / 100
}

// Porcentaje calcula la proporción de parte sobre total en porcentaje.
// División segura: total <= 0 devuelve 0 en lugar de Inf/NaN.
func Porcentaje(parte, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return Redondear2(parte / total * 100)
}

// esMontoUtilizable indica si un operando numérico puede entrar a un cálculo.
// Los negativos y NaN provienen de formularios mal llenados y se tratan como 0.
func esMontoUtilizable(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
