package models

import (
	"time"

	"gorm.io/gorm"
)

// Ingreso ingreso adicional de un evento (kiosco, alquiler de equipos, etc.).
// No entra al precio del contrato; solo suma al ingreso total.
type Ingreso struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	EventoID  uint           `json:"evento_id" gorm:"index;not null"`
	Concepto  string         `json:"concepto" gorm:"size:100;not null"`
	Monto     float64        `json:"monto" gorm:"type:decimal(10,2);not null"`
	Fecha     time.Time      `json:"fecha" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName nombre de tabla
func (Ingreso) TableName() string {
	return "ingresos_adicionales"
}
