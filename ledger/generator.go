package ledger

import "strings"

// IngredienteTemplate un ingrediente dentro de la plantilla de un plato.
// Datos de referencia de solo lectura; nunca se mutan en tiempo de ejecución.
type IngredienteTemplate struct {
	Nombre             string
	CantidadPorPorcion float64
	Unidad             string
	Categoria          string
	// CostoEstimado costo unitario estimado; el total escala por porciones
	CostoEstimado float64
}

// PlatoTemplate plantilla de plato del catálogo
type PlatoTemplate struct {
	ID           string
	Nombre       string
	Ingredientes []IngredienteTemplate
}

// CatalogoPlatos colaborador de catálogo consultado por el generador.
// La implementación concreta vive en el paquete catalog.
type CatalogoPlatos interface {
	Plato(id string) (PlatoTemplate, bool)
	RequiereAji(id string) bool
}

// LineaSugerida gasto predeterminado derivado de una plantilla de plato.
// Nace en estado sugerido y NO está persistida: el llamador decide cuándo
// confirmarla como gasto real (dos fases: sugerir, luego registrar).
type LineaSugerida struct {
	Ingrediente      string      `json:"ingrediente"`
	CantidadTotal    float64     `json:"cantidad_total"`
	Unidad           string      `json:"unidad"`
	Categoria        string      `json:"categoria"`
	CostoTotal       float64     `json:"costo_total"`
	EsPredeterminado bool        `json:"es_predeterminado"`
	Estado           EstadoLinea `json:"estado"`
	RegistradoPor    string      `json:"registrado_por"`
}

// verdurasExcluidas verduras que se manejan por el flujo de selección de
// verduras aparte, no por las sugerencias del plato. Coincidencia por
// subcadena, sin distinguir mayúsculas.
var verdurasExcluidas = []string{
	"tomate",
	"lechuga",
	"limón",
	"zanahoria",
	"cebolla",
	"pimiento",
	"pepino",
	"cilantro",
}

// esVerduraExcluida indica si el nombre del ingrediente cae en la lista de
// exclusión. "Ají amarillo" no está en la lista y debe permanecer.
func esVerduraExcluida(nombre string) bool {
	n := strings.ToLower(nombre)
	for _, v := range verdurasExcluidas {
		if strings.Contains(n, v) {
			return true
		}
	}
	return false
}

// GenerarLineasIngredientes deriva la lista de gastos de ingredientes para un
// plato escalada por porciones. Si el plato no existe en el catálogo devuelve
// lista vacía y ErrNoEncontrado: el sistema no inventa ingredientes.
func GenerarLineasIngredientes(catalogo CatalogoPlatos, platoID string, porciones int, registradoPor string) ([]LineaSugerida, error) {
	plato, ok := catalogo.Plato(platoID)
	if !ok {
		return nil, &ValidationError{Campo: "plato_id", Motivo: "plato no existe en el catálogo", Tipo: ErrNoEncontrado}
	}
	if porciones <= 0 {
		return nil, entradaInvalida("porciones", "debe ser mayor que cero")
	}

	lineas := make([]LineaSugerida, 0, len(plato.Ingredientes))
	for _, ing := range plato.Ingredientes {
		if esVerduraExcluida(ing.Nombre) {
			continue
		}
		lineas = append(lineas, LineaSugerida{
			Ingrediente:      ing.Nombre,
			CantidadTotal:    Redondear2(ing.CantidadPorPorcion * float64(porciones)),
			Unidad:           ing.Unidad,
			Categoria:        ing.Categoria,
			CostoTotal:       Redondear2(ing.CostoEstimado * float64(porciones)),
			EsPredeterminado: true,
			Estado:           EstadoSugerido,
			RegistradoPor:    registradoPor,
		})
	}
	return lineas, nil
}

// PlatoRequiereAji decide si corresponde mostrar el subflujo de selección de ají
func PlatoRequiereAji(catalogo CatalogoPlatos, platoID string) bool {
	return catalogo.RequiereAji(platoID)
}
