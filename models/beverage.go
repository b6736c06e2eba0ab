package models

import (
	"time"

	"gorm.io/gorm"
)

// Bebida línea de bebida de un evento. El monto de gasto usa siempre el costo
// proveedor/local; el costo cliente solo deriva la ganancia.
type Bebida struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	EventoID uint   `json:"evento_id" gorm:"index;not null"`
	Tipo     string `json:"tipo" gorm:"size:20;not null"`
	// Modalidad cover o compra_local; vacía para bebidas simples
	Modalidad string `json:"modalidad" gorm:"size:20"`
	// Cantidad unidades o cajas según el tipo
	Cantidad         float64        `json:"cantidad" gorm:"type:decimal(10,2);not null"`
	PrecioUnitario   float64        `json:"precio_unitario" gorm:"type:decimal(10,2);default:0"`
	CostoCaja        float64        `json:"costo_caja" gorm:"type:decimal(10,2);default:0"`
	CostoCajaLocal   float64        `json:"costo_caja_local" gorm:"type:decimal(10,2);default:0"`
	CostoCajaCliente float64        `json:"costo_caja_cliente" gorm:"type:decimal(10,2);default:0"`
	Monto            float64        `json:"monto" gorm:"type:decimal(10,2);not null"`
	Ganancia         float64        `json:"ganancia" gorm:"type:decimal(10,2);default:0"`
	Estado           string         `json:"estado" gorm:"size:20;not null;default:editado"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName nombre de tabla
func (Bebida) TableName() string {
	return "bebidas"
}
