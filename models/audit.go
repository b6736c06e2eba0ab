package models

import "time"

// Auditoria entrada persistida de la bitácora. Append-only: no existen
// handlers de edición ni borrado y no lleva DeletedAt.
type Auditoria struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	EventoID    *uint     `json:"evento_id" gorm:"index"`
	Accion      string    `json:"accion" gorm:"size:20;not null"`
	Seccion     string    `json:"seccion" gorm:"size:30;not null;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	ActorNombre string    `json:"actor_nombre" gorm:"size:100"`
	RolActor    string    `json:"rol_actor" gorm:"size:30;not null"`
	Descripcion string    `json:"descripcion" gorm:"size:500"`
	Cambios     string    `json:"cambios" gorm:"type:text"` // JSON campo→valor
	Sospechoso  bool      `json:"sospechoso" gorm:"index"`
	Fecha       time.Time `json:"fecha" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName nombre de tabla
func (Auditoria) TableName() string {
	return "auditoria"
}
