package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catálogo falso para probar el generador sin depender del catálogo real
type catalogoFalso struct {
	platos map[string]PlatoTemplate
	aji    map[string]bool
}

func (c catalogoFalso) Plato(id string) (PlatoTemplate, bool) {
	p, ok := c.platos[id]
	return p, ok
}

func (c catalogoFalso) RequiereAji(id string) bool {
	return c.aji[id]
}

func catalogoDePrueba() catalogoFalso {
	return catalogoFalso{
		platos: map[string]PlatoTemplate{
			"parrilla": {
				ID:     "parrilla",
				Nombre: "Parrilla",
				Ingredientes: []IngredienteTemplate{
					{Nombre: "Cuarto de pollo", CantidadPorPorcion: 1, Unidad: "unidad", Categoria: "ingredientes", CostoEstimado: 8.5},
					{Nombre: "Lechuga", CantidadPorPorcion: 0.1, Unidad: "unidad", Categoria: "verduras", CostoEstimado: 0.5},
					{Nombre: "Tomate", CantidadPorPorcion: 0.1, Unidad: "kg", Categoria: "verduras", CostoEstimado: 0.4},
					{Nombre: "Ají amarillo", CantidadPorPorcion: 0.05, Unidad: "kg", Categoria: "aji", CostoEstimado: 0.6},
				},
			},
		},
		aji: map[string]bool{"parrilla": true},
	}
}

func TestGenerarLineasIngredientes(t *testing.T) {
	lineas, err := GenerarLineasIngredientes(catalogoDePrueba(), "parrilla", 50, "compras01")
	require.NoError(t, err)

	// lechuga y tomate van por el flujo de verduras; el ají amarillo queda
	require.Len(t, lineas, 2)

	pollo := lineas[0]
	assert.Equal(t, "Cuarto de pollo", pollo.Ingrediente)
	assert.Equal(t, 50.0, pollo.CantidadTotal)
	assert.Equal(t, 425.0, pollo.CostoTotal) // 50 × 8.5
	assert.True(t, pollo.EsPredeterminado)
	assert.Equal(t, EstadoSugerido, pollo.Estado)
	assert.Equal(t, "compras01", pollo.RegistradoPor)

	aji := lineas[1]
	assert.Equal(t, "Ají amarillo", aji.Ingrediente)
	assert.Equal(t, 2.5, aji.CantidadTotal)
	assert.Equal(t, 30.0, aji.CostoTotal)
}

func TestGenerarLineasIngredientes_PlatoDesconocido(t *testing.T) {
	lineas, err := GenerarLineasIngredientes(catalogoDePrueba(), "lasagna", 10, "compras01")
	assert.ErrorIs(t, err, ErrNoEncontrado)
	assert.Empty(t, lineas)
}

func TestGenerarLineasIngredientes_PorcionesInvalidas(t *testing.T) {
	_, err := GenerarLineasIngredientes(catalogoDePrueba(), "parrilla", 0, "compras01")
	assert.ErrorIs(t, err, ErrEntradaInvalida)
}

func TestEsVerduraExcluida(t *testing.T) {
	// subcadena sin distinguir mayúsculas
	assert.True(t, esVerduraExcluida("Tomate"))
	assert.True(t, esVerduraExcluida("LECHUGA fresca"))
	assert.True(t, esVerduraExcluida("Cebolla roja"))
	assert.True(t, esVerduraExcluida("Limón sutil"))

	// el ají no está en la lista de exclusión
	assert.False(t, esVerduraExcluida("Ají amarillo"))
	assert.False(t, esVerduraExcluida("Ají panca"))
	assert.False(t, esVerduraExcluida("Papas"))
}

func TestPlatoRequiereAji(t *testing.T) {
	c := catalogoDePrueba()
	assert.True(t, PlatoRequiereAji(c, "parrilla"))
	assert.False(t, PlatoRequiereAji(c, "lasagna"))
}
