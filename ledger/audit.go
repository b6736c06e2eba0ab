package ledger

import (
	"time"

	"github.com/google/uuid"
)

// AccionAuditoria acción registrada en la bitácora
type AccionAuditoria string

const (
	AccionCreado      AccionAuditoria = "created"
	AccionActualizado AccionAuditoria = "updated"
	AccionEliminado   AccionAuditoria = "deleted"
)

// SeccionAuditoria área funcional afectada por la mutación
type SeccionAuditoria string

const (
	SeccionEventos    SeccionAuditoria = "eventos"
	SeccionClientes   SeccionAuditoria = "clientes"
	SeccionGastos     SeccionAuditoria = "gastos"
	SeccionDecoracion SeccionAuditoria = "decoracion"
	SeccionPersonal   SeccionAuditoria = "personal"
	SeccionBebidas    SeccionAuditoria = "bebidas"
	SeccionGarantia   SeccionAuditoria = "garantia"
	SeccionIngresos   SeccionAuditoria = "ingresos"
	SeccionUsuarios   SeccionAuditoria = "usuarios"
)

// EntradaAuditoria entrada inmutable de la bitácora. Una vez construida jamás
// se edita ni se elimina; la bitácora de un evento es estrictamente append-only.
type EntradaAuditoria struct {
	ID          string            `json:"id"`
	Accion      AccionAuditoria   `json:"accion"`
	Seccion     SeccionAuditoria  `json:"seccion"`
	ActorID     uint              `json:"actor_id"`
	ActorNombre string            `json:"actor_nombre"`
	RolActor    Rol               `json:"rol_actor"`
	Descripcion string            `json:"descripcion"`
	Cambios     map[string]string `json:"cambios,omitempty"`
	Fecha       time.Time         `json:"fecha"`
	// Sospechoso una edición de gastos hecha por un rol elevado se marca para
	// revisión, no se bloquea
	Sospechoso bool `json:"sospechoso"`
}

// AuditBuilder construye entradas de auditoría. El reloj y el generador de id
// son inyectables para que las pruebas sean deterministas.
type AuditBuilder struct {
	ahora   func() time.Time
	nuevoID func() string
}

// NewAuditBuilder builder con reloj y uuid reales
func NewAuditBuilder() *AuditBuilder {
	return &AuditBuilder{ahora: time.Now, nuevoID: uuid.NewString}
}

// NewAuditBuilderCon builder con dependencias inyectadas (pruebas)
func NewAuditBuilderCon(ahora func() time.Time, nuevoID func() string) *AuditBuilder {
	return &AuditBuilder{ahora: ahora, nuevoID: nuevoID}
}

// Construir arma la entrada y deriva la marca de sospecha:
// sección gastos + acción updated + rol admin/socio.
func (b *AuditBuilder) Construir(actor Actor, accion AccionAuditoria, seccion SeccionAuditoria, descripcion string, cambios map[string]string) EntradaAuditoria {
	return EntradaAuditoria{
		ID:          b.nuevoID(),
		Accion:      accion,
		Seccion:     seccion,
		ActorID:     actor.ID,
		ActorNombre: actor.Nombre,
		RolActor:    actor.Rol,
		Descripcion: descripcion,
		Cambios:     cambios,
		Fecha:       b.ahora(),
		Sospechoso:  EsEdicionSospechosa(actor.Rol, accion, seccion),
	}
}

// EsEdicionSospechosa regla de sospecha: los roles elevados no deberían tocar
// gastos; cuando lo hacen queda marcado.
func EsEdicionSospechosa(rol Rol, accion AccionAuditoria, seccion SeccionAuditoria) bool {
	return seccion == SeccionGastos && accion == AccionActualizado && esRolElevado(rol)
}
