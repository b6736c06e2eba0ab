package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func builderFijo() *AuditBuilder {
	fecha := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	return NewAuditBuilderCon(
		func() time.Time { return fecha },
		func() string { return "audit-0001" },
	)
}

func TestConstruirEntradaAuditoria(t *testing.T) {
	b := builderFijo()
	actor := Actor{ID: 4, Nombre: "Rosa", Rol: RolCompras}

	e := b.Construir(actor, AccionCreado, SeccionGastos, "registró gasto de carbón", map[string]string{"monto": "35.00"})
	assert.Equal(t, "audit-0001", e.ID)
	assert.Equal(t, AccionCreado, e.Accion)
	assert.Equal(t, SeccionGastos, e.Seccion)
	assert.Equal(t, uint(4), e.ActorID)
	assert.Equal(t, RolCompras, e.RolActor)
	assert.Equal(t, "35.00", e.Cambios["monto"])
	assert.Equal(t, time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC), e.Fecha)
	assert.False(t, e.Sospechoso)
}

func TestEntradaSospechosa(t *testing.T) {
	b := builderFijo()

	// admin actualizando gastos: sospechoso
	e := b.Construir(Actor{Rol: RolAdmin}, AccionActualizado, SeccionGastos, "", nil)
	assert.True(t, e.Sospechoso)

	// socio también es rol elevado
	e = b.Construir(Actor{Rol: RolSocio}, AccionActualizado, SeccionGastos, "", nil)
	assert.True(t, e.Sospechoso)

	// la misma acción sobre decoración no lo es
	e = b.Construir(Actor{Rol: RolAdmin}, AccionActualizado, SeccionDecoracion, "", nil)
	assert.False(t, e.Sospechoso)

	// crear gastos tampoco, solo actualizar
	e = b.Construir(Actor{Rol: RolAdmin}, AccionCreado, SeccionGastos, "", nil)
	assert.False(t, e.Sospechoso)

	// compras actualizando gastos es lo normativo
	e = b.Construir(Actor{Rol: RolCompras}, AccionActualizado, SeccionGastos, "", nil)
	assert.False(t, e.Sospechoso)
}

func TestNewAuditBuilder_Defaults(t *testing.T) {
	b := NewAuditBuilder()
	e := b.Construir(Actor{Rol: RolServicio}, AccionCreado, SeccionEventos, "evento creado", nil)
	assert.NotEmpty(t, e.ID)
	assert.WithinDuration(t, time.Now(), e.Fecha, time.Minute)
}
