package ledger

import (
	"errors"
	"fmt"
)

// Taxonomía de errores del núcleo. Todos son resultados de validación
// recuperables por el llamador; el núcleo nunca hace I/O ni aborta.
var (
	// ErrEntradaInvalida cantidad/costo no positivo donde se exige positividad al registrar
	ErrEntradaInvalida = errors.New("entrada inválida")
	// ErrNoEncontrado id de plato o rol ausente del catálogo
	ErrNoEncontrado = errors.New("no encontrado")
	// ErrMontoInvalido pago o devolución fuera del rango permitido
	ErrMontoInvalido = errors.New("monto inválido")
	// ErrGarantiaYaDevuelta segundo intento de devolución de garantía
	ErrGarantiaYaDevuelta = errors.New("la garantía ya fue devuelta")
)

// ValidationError lleva el campo ofensivo junto al tipo de error para que el
// llamador pueda mostrar un mensaje específico en lugar de un fallo genérico.
type ValidationError struct {
	Campo  string
	Motivo string
	Tipo   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Motivo)
}

func (e *ValidationError) Unwrap() error {
	return e.Tipo
}

func entradaInvalida(campo, motivo string) *ValidationError {
	return &ValidationError{Campo: campo, Motivo: motivo, Tipo: ErrEntradaInvalida}
}

func montoInvalido(campo, motivo string) *ValidationError {
	return &ValidationError{Campo: campo, Motivo: motivo, Tipo: ErrMontoInvalido}
}
