package models

import (
	"time"

	"gorm.io/gorm"
)

// Gasto línea de gasto de un evento. El monto es derivado: se recalcula de
// cantidad × costo unitario en cada escritura, nunca se confía en el valor
// que llega del cliente.
type Gasto struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	EventoID      uint    `json:"evento_id" gorm:"index;not null"`
	Categoria     string  `json:"categoria" gorm:"size:50;not null"`
	Descripcion   string  `json:"descripcion" gorm:"size:255"`
	Cantidad      float64 `json:"cantidad" gorm:"type:decimal(10,2);not null"`
	Unidad        string  `json:"unidad" gorm:"size:20"`
	CostoUnitario float64 `json:"costo_unitario" gorm:"type:decimal(10,2);not null"`
	Monto         float64 `json:"monto" gorm:"type:decimal(10,2);not null"`
	// EsPredeterminado true cuando la línea nació de una plantilla de plato
	EsPredeterminado bool `json:"es_predeterminado" gorm:"default:false"`
	// Estado ciclo sugerido/editado/registrado; registrado es inmutable
	Estado        string         `json:"estado" gorm:"size:20;not null;default:sugerido"`
	RegistradoPor string         `json:"registrado_por" gorm:"size:100"`
	RolRegistro   string         `json:"rol_registro" gorm:"size:30"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName nombre de tabla
func (Gasto) TableName() string {
	return "gastos"
}

// Categorías de gasto (enumeración cerrada)
const (
	CategoriaIngredientes = "ingredientes"
	CategoriaVerduras     = "verduras"
	CategoriaAji          = "aji"
	CategoriaTransporte   = "transporte"
	CategoriaAlquiler     = "alquiler"
	CategoriaOtros        = "otros"
)

// CategoriasGasto todas las categorías de gasto válidas
func CategoriasGasto() []string {
	return []string{
		CategoriaIngredientes,
		CategoriaVerduras,
		CategoriaAji,
		CategoriaTransporte,
		CategoriaAlquiler,
		CategoriaOtros,
	}
}

// EsCategoriaGasto valida una categoría contra la enumeración
func EsCategoriaGasto(c string) bool {
	for _, v := range CategoriasGasto() {
		if v == c {
			return true
		}
	}
	return false
}
