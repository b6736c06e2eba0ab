package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuedeTransicionar(t *testing.T) {
	assert.True(t, PuedeTransicionar(EstadoSugerido, EstadoEditado))
	assert.True(t, PuedeTransicionar(EstadoSugerido, EstadoRegistrado))
	assert.True(t, PuedeTransicionar(EstadoEditado, EstadoRegistrado))
	assert.True(t, PuedeTransicionar(EstadoEditado, EstadoEditado))

	// registrado es terminal e inmutable
	assert.False(t, PuedeTransicionar(EstadoRegistrado, EstadoEditado))
	assert.False(t, PuedeTransicionar(EstadoRegistrado, EstadoRegistrado))

	// no se vuelve atrás
	assert.False(t, PuedeTransicionar(EstadoEditado, EstadoSugerido))
}

func TestEsTerminal(t *testing.T) {
	assert.True(t, EstadoRegistrado.EsTerminal())
	assert.False(t, EstadoSugerido.EsTerminal())
	assert.False(t, EstadoEditado.EsTerminal())
}
