package models

// UsuarioEvento asignación usuario-evento muchos a muchos. Los roles no
// elevados solo ven los eventos que tienen asignados.
type UsuarioEvento struct {
	UsuarioID uint `gorm:"primaryKey;autoIncrement:false"`
	EventoID  uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName nombre de tabla
func (UsuarioEvento) TableName() string {
	return "usuario_eventos"
}
