package models

import (
	"time"

	"gorm.io/gorm"
)

// Personal miembro del personal asignado a un evento. El tipo de tarifa se
// deriva del rol del catálogo, nunca se fija por separado; el total se
// recalcula cuando cambian tarifa u horas/platos.
type Personal struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	EventoID uint   `json:"evento_id" gorm:"index;not null"`
	Nombre   string `json:"nombre" gorm:"size:100;not null"`
	RolID    string `json:"rol_id" gorm:"size:50;not null"`
	// TipoTarifa por_hora o por_plato, derivado de RolID
	TipoTarifa   string  `json:"tipo_tarifa" gorm:"size:20;not null"`
	HorasOPlatos float64 `json:"horas_o_platos" gorm:"type:decimal(10,2);not null"`
	Tarifa       float64 `json:"tarifa" gorm:"type:decimal(10,2);not null"`
	Total        float64 `json:"total" gorm:"type:decimal(10,2);not null"`
	// AccesoSistema solo permitido para roles de la lista blanca del catálogo
	AccesoSistema bool           `json:"acceso_sistema" gorm:"default:false"`
	Estado        string         `json:"estado" gorm:"size:20;not null;default:editado"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName nombre de tabla
func (Personal) TableName() string {
	return "personal_evento"
}

// HoraExtra horas extra de un trabajador, colección aparte identificada por
// nombre. Append-only: se agregan, no se editan.
type HoraExtra struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	EventoID       uint      `json:"evento_id" gorm:"index;not null"`
	NombrePersonal string    `json:"nombre_personal" gorm:"size:100;not null"`
	Horas          float64   `json:"horas" gorm:"type:decimal(10,2);not null"`
	Tarifa         float64   `json:"tarifa" gorm:"type:decimal(10,2);not null"`
	Total          float64   `json:"total" gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName nombre de tabla
func (HoraExtra) TableName() string {
	return "horas_extra"
}
