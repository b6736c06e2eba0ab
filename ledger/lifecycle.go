package ledger

// EstadoLinea ciclo de vida de una línea: el sistema sugiere, el usuario edita
// y finalmente registra con un clic explícito. Registrado es terminal.
type EstadoLinea string

const (
	// EstadoSugerido línea propuesta por el sistema, aún no confirmada
	EstadoSugerido EstadoLinea = "sugerido"
	// EstadoEditado el usuario modificó la sugerencia
	EstadoEditado EstadoLinea = "editado"
	// EstadoRegistrado confirmada; inmutable desde este punto
	EstadoRegistrado EstadoLinea = "registrado"
)

// EsTerminal indica si el estado ya no admite transiciones
func (e EstadoLinea) EsTerminal() bool {
	return e == EstadoRegistrado
}

// PuedeTransicionar valida una transición del ciclo de vida.
// sugerido → editado → registrado; también sugerido → registrado directo.
// Editar una línea editada sigue siendo editado.
func PuedeTransicionar(desde, hacia EstadoLinea) bool {
	if desde.EsTerminal() {
		return false
	}
	switch hacia {
	case EstadoEditado:
		return desde == EstadoSugerido || desde == EstadoEditado
	case EstadoRegistrado:
		return desde == EstadoSugerido || desde == EstadoEditado
	}
	return false
}
