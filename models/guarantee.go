package models

import "time"

// GarantiaDevolucion registro único de devolución de garantía. El índice
// único sobre EventoID materializa el slot único: la existencia del registro
// rechaza un segundo intento.
type GarantiaDevolucion struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	EventoID        uint      `json:"evento_id" gorm:"uniqueIndex;not null"`
	MontoGarantia   float64   `json:"monto_garantia" gorm:"type:decimal(10,2);not null"`
	MontoDescontado float64   `json:"monto_descontado" gorm:"type:decimal(10,2);not null"`
	MontoDevuelto   float64   `json:"monto_devuelto" gorm:"type:decimal(10,2);not null"`
	Motivo          string    `json:"motivo" gorm:"size:255"`
	Fecha           time.Time `json:"fecha" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName nombre de tabla
func (GarantiaDevolucion) TableName() string {
	return "garantia_devoluciones"
}
