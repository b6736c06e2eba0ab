package models

import (
	"time"

	"gorm.io/gorm"
)

// Evento evento del local con sus términos de contrato y el libro financiero.
// Los campos financieros se reescriben completos en cada recálculo; ver
// ledger.Recalcular.
type Evento struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nombre    string    `json:"nombre" gorm:"size:100;not null"`
	Tipo      string    `json:"tipo" gorm:"size:50"` // matrimonio, cumpleaños, corporativo...
	Fecha     time.Time `json:"fecha" gorm:"not null;index"`
	ClienteID *uint     `json:"cliente_id" gorm:"index"`

	// Detalle de comida (opcional hasta que se define el menú)
	PlatoID        string  `json:"plato_id" gorm:"size:50"`
	Platos         float64 `json:"platos" gorm:"type:decimal(10,2);default:0"`
	PrecioPorPlato float64 `json:"precio_por_plato" gorm:"type:decimal(10,2);default:0"`

	// Términos de contrato
	Adelanto  float64 `json:"adelanto" gorm:"type:decimal(10,2);default:0"`
	Garantia  float64 `json:"garantia" gorm:"type:decimal(10,2);default:0"`
	CajaChica float64 `json:"caja_chica" gorm:"type:decimal(10,2);default:0"`

	// Libro financiero (instantánea del último recálculo)
	CostoComida              float64 `json:"costo_comida" gorm:"type:decimal(10,2);default:0"`
	CostoBebidas             float64 `json:"costo_bebidas" gorm:"type:decimal(10,2);default:0"`
	CostoDecoracionCliente   float64 `json:"costo_decoracion_cliente" gorm:"type:decimal(10,2);default:0"`
	CostoDecoracionProveedor float64 `json:"costo_decoracion_proveedor" gorm:"type:decimal(10,2);default:0"`
	GananciaDecoracion       float64 `json:"ganancia_decoracion" gorm:"type:decimal(10,2);default:0"`
	CostoPersonal            float64 `json:"costo_personal" gorm:"type:decimal(10,2);default:0"`
	PrecioTotal              float64 `json:"precio_total" gorm:"type:decimal(10,2);default:0"`
	GastoTotal               float64 `json:"gasto_total" gorm:"type:decimal(10,2);default:0"`
	IngresoTotal             float64 `json:"ingreso_total" gorm:"type:decimal(10,2);default:0"`
	Balance                  float64 `json:"balance" gorm:"type:decimal(10,2);default:0"`
	PagoPendiente            float64 `json:"pago_pendiente" gorm:"type:decimal(10,2);default:0"`
	SaldoCajaChica           float64 `json:"saldo_caja_chica" gorm:"type:decimal(10,2);default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Cliente    *Cliente         `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
	Gastos     []Gasto          `json:"gastos,omitempty" gorm:"foreignKey:EventoID"`
	Decoracion []DecoracionItem `json:"decoracion,omitempty" gorm:"foreignKey:EventoID"`
	Personal   []Personal       `json:"personal,omitempty" gorm:"foreignKey:EventoID"`
	HorasExtra []HoraExtra      `json:"horas_extra,omitempty" gorm:"foreignKey:EventoID"`
	Bebidas    []Bebida         `json:"bebidas,omitempty" gorm:"foreignKey:EventoID"`
	Ingresos   []Ingreso        `json:"ingresos,omitempty" gorm:"foreignKey:EventoID"`
}

// TableName nombre de tabla
func (Evento) TableName() string {
	return "eventos"
}
