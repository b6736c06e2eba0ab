package catalog

import "eventos/ledger"

// platos catálogo estático de plantillas de plato. Datos de referencia de
// solo lectura; los eventos persistidos pueden referenciar ids que ya no
// existen y el generador responde con lista vacía, no con un crash.
var platos = []ledger.PlatoTemplate{
	{
		ID:     "pollo-parrilla",
		Nombre: "Pollo a la parrilla",
		Ingredientes: []ledger.IngredienteTemplate{
			{Nombre: "Cuarto de pollo", CantidadPorPorcion: 1, Unidad: "unidad", Categoria: "ingredientes", CostoEstimado: 8.5},
			{Nombre: "Papas", CantidadPorPorcion: 0.25, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 1.2},
			{Nombre: "Arroz", CantidadPorPorcion: 0.15, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 0.9},
			{Nombre: "Ají amarillo", CantidadPorPorcion: 0.05, Unidad: "kg", Categoria: "aji", CostoEstimado: 0.6},
			{Nombre: "Lechuga", CantidadPorPorcion: 0.1, Unidad: "unidad", Categoria: "verduras", CostoEstimado: 0.5},
			{Nombre: "Tomate", CantidadPorPorcion: 0.1, Unidad: "kg", Categoria: "verduras", CostoEstimado: 0.4},
			{Nombre: "Carbón", CantidadPorPorcion: 0.08, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 0.7},
		},
	},
	{
		ID:     "chancho-al-palo",
		Nombre: "Chancho al palo",
		Ingredientes: []ledger.IngredienteTemplate{
			{Nombre: "Carne de chancho", CantidadPorPorcion: 0.35, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 9.8},
			{Nombre: "Camote", CantidadPorPorcion: 0.2, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 0.8},
			{Nombre: "Ají panca", CantidadPorPorcion: 0.04, Unidad: "kg", Categoria: "aji", CostoEstimado: 0.5},
			{Nombre: "Cebolla", CantidadPorPorcion: 0.08, Unidad: "kg", Categoria: "verduras", CostoEstimado: 0.3},
			{Nombre: "Leña", CantidadPorPorcion: 0.5, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 0.4},
		},
	},
	{
		ID:     "pachamanca",
		Nombre: "Pachamanca",
		Ingredientes: []ledger.IngredienteTemplate{
			{Nombre: "Carne de res", CantidadPorPorcion: 0.25, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 12.0},
			{Nombre: "Pollo", CantidadPorPorcion: 0.25, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 6.5},
			{Nombre: "Habas", CantidadPorPorcion: 0.1, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 1.5},
			{Nombre: "Papas", CantidadPorPorcion: 0.3, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 1.2},
			{Nombre: "Humitas", CantidadPorPorcion: 1, Unidad: "unidad", Categoria: "ingredientes", CostoEstimado: 2.0},
			{Nombre: "Ají colorado", CantidadPorPorcion: 0.03, Unidad: "kg", Categoria: "aji", CostoEstimado: 0.5},
		},
	},
	{
		ID:     "anticuchos",
		Nombre: "Anticuchos",
		Ingredientes: []ledger.IngredienteTemplate{
			{Nombre: "Corazón de res", CantidadPorPorcion: 0.2, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 7.0},
			{Nombre: "Choclo", CantidadPorPorcion: 0.5, Unidad: "unidad", Categoria: "ingredientes", CostoEstimado: 1.0},
			{Nombre: "Papas", CantidadPorPorcion: 0.2, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 1.2},
			{Nombre: "Ají panca", CantidadPorPorcion: 0.05, Unidad: "kg", Categoria: "aji", CostoEstimado: 0.5},
			{Nombre: "Carbón", CantidadPorPorcion: 0.1, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 0.7},
		},
	},
	{
		ID:     "arroz-con-pato",
		Nombre: "Arroz con pato",
		Ingredientes: []ledger.IngredienteTemplate{
			{Nombre: "Pato", CantidadPorPorcion: 0.3, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 10.5},
			{Nombre: "Arroz", CantidadPorPorcion: 0.2, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 0.9},
			{Nombre: "Culantro", CantidadPorPorcion: 0.02, Unidad: "kg", Categoria: "verduras", CostoEstimado: 0.3},
			{Nombre: "Arvejas", CantidadPorPorcion: 0.05, Unidad: "kg", Categoria: "ingredientes", CostoEstimado: 0.8},
			{Nombre: "Cerveza negra", CantidadPorPorcion: 0.05, Unidad: "litro", Categoria: "ingredientes", CostoEstimado: 0.9},
		},
	},
}

// platosConAji platos cuyo flujo de creación muestra la selección de ají
var platosConAji = map[string]bool{
	"pollo-parrilla":  true,
	"chancho-al-palo": true,
	"pachamanca":      true,
	"anticuchos":      true,
}

// Platos implementación estática de ledger.CatalogoPlatos
type Platos struct{}

// Plato busca una plantilla por id
func (Platos) Plato(id string) (ledger.PlatoTemplate, bool) {
	for _, p := range platos {
		if p.ID == id {
			return p, true
		}
	}
	return ledger.PlatoTemplate{}, false
}

// RequiereAji consulta el conjunto fijo de platos con subflujo de ají
func (Platos) RequiereAji(id string) bool {
	return platosConAji[id]
}

// ListaPlatos todas las plantillas, para el endpoint de catálogo
func ListaPlatos() []ledger.PlatoTemplate {
	return platos
}
