package models

import (
	"time"

	"gorm.io/gorm"
)

// Cliente ficha de cliente del local
type Cliente struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Nombre    string         `json:"nombre" gorm:"size:100;not null"`
	Telefono  string         `json:"telefono" gorm:"size:20"`
	Email     string         `json:"email" gorm:"size:100"`
	Direccion string         `json:"direccion" gorm:"size:255"`
	Notas     string         `json:"notas" gorm:"size:500"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName nombre de tabla
func (Cliente) TableName() string {
	return "clientes"
}
