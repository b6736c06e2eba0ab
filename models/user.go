package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// UsuarioEstadoBloqueado bloqueado: no puede iniciar sesión
	UsuarioEstadoBloqueado = "locked"
	// UsuarioEstadoActivo normal: puede iniciar sesión
	UsuarioEstadoActivo = "active"
)

// Usuario cuenta del sistema. El rol determina qué rutas puede usar; un rol
// desconocido se trata como servicio (solo lectura de eventos).
type Usuario struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Nombre    string         `json:"nombre" gorm:"size:100"`
	Email     string         `json:"email" gorm:"size:100"`
	Rol       string         `json:"rol" gorm:"size:30;not null;default:servicio;index"`
	Status    string         `json:"status" gorm:"size:20;default:locked;index"` // locked/active
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName nombre de tabla
func (Usuario) TableName() string {
	return "usuarios"
}
