package ledger

import "strings"

// Rol rol de sistema (no confundir con el catálogo de roles del personal,
// que define tarifas; ese vive en el paquete catalog)
type Rol string

const (
	RolAdmin       Rol = "admin"
	RolSocio       Rol = "socio"
	RolCompras     Rol = "compras"
	RolCoordinador Rol = "coordinador"
	RolServicio    Rol = "servicio"
)

// Permisos capacidades de un rol. Configuración estática, no se computa.
type Permisos struct {
	VerEventos               bool `json:"ver_eventos"`
	CrearEventos             bool `json:"crear_eventos"`
	EditarEventos            bool `json:"editar_eventos"`
	EliminarEventos          bool `json:"eliminar_eventos"`
	VerClientes              bool `json:"ver_clientes"`
	EditarClientes           bool `json:"editar_clientes"`
	VerGastos                bool `json:"ver_gastos"`
	RegistrarGastos          bool `json:"registrar_gastos"`
	EditarGastos             bool `json:"editar_gastos"`
	VerDecoracion            bool `json:"ver_decoracion"`
	EditarDecoracion         bool `json:"editar_decoracion"`
	RegistrarPagosDecoracion bool `json:"registrar_pagos_decoracion"`
	VerPersonal              bool `json:"ver_personal"`
	EditarPersonal           bool `json:"editar_personal"`
	VerBebidas               bool `json:"ver_bebidas"`
	EditarBebidas            bool `json:"editar_bebidas"`
	VerResumenFinanciero     bool `json:"ver_resumen_financiero"`
	ExportarDatos            bool `json:"exportar_datos"`
	VerAuditoria             bool `json:"ver_auditoria"`
	AdministrarUsuarios      bool `json:"administrar_usuarios"`
}

// matriz rol → permisos. servicio es el rol más restrictivo y además el
// fallback para roles desconocidos (datos de sesión viejos o corruptos
// degradan a solo lectura de sus eventos, no a un error).
var matrizPermisos = map[Rol]Permisos{
	RolAdmin: {
		VerEventos: true, CrearEventos: true, EditarEventos: true, EliminarEventos: true,
		VerClientes: true, EditarClientes: true,
		VerGastos: true, RegistrarGastos: true, EditarGastos: true,
		VerDecoracion: true, EditarDecoracion: true, RegistrarPagosDecoracion: true,
		VerPersonal: true, EditarPersonal: true,
		VerBebidas: true, EditarBebidas: true,
		VerResumenFinanciero: true, ExportarDatos: true, VerAuditoria: true,
		AdministrarUsuarios: true,
	},
	RolSocio: {
		VerEventos: true, CrearEventos: true, EditarEventos: true, EliminarEventos: true,
		VerClientes: true, EditarClientes: true,
		VerGastos: true, RegistrarGastos: true, EditarGastos: true,
		VerDecoracion: true, EditarDecoracion: true, RegistrarPagosDecoracion: true,
		VerPersonal: true, EditarPersonal: true,
		VerBebidas: true, EditarBebidas: true,
		VerResumenFinanciero: true, ExportarDatos: true, VerAuditoria: true,
	},
	RolCompras: {
		VerEventos: true,
		VerGastos:  true, RegistrarGastos: true, EditarGastos: true,
		VerBebidas: true, EditarBebidas: true,
		VerPersonal: true,
	},
	RolCoordinador: {
		VerEventos: true, CrearEventos: true, EditarEventos: true,
		VerClientes: true, EditarClientes: true,
		VerGastos:     true,
		VerDecoracion: true, EditarDecoracion: true, RegistrarPagosDecoracion: true,
		VerPersonal: true, EditarPersonal: true,
		VerBebidas:           true,
		VerResumenFinanciero: true,
	},
	RolServicio: {
		VerEventos: true,
	},
}

// PermisosDe permisos de un rol. Rol desconocido devuelve el conjunto de
// servicio (denegación por defecto, degradación controlada).
func PermisosDe(rol Rol) Permisos {
	if p, ok := matrizPermisos[rol]; ok {
		return p
	}
	return matrizPermisos[RolServicio]
}

// reglaRuta asocia método + patrón de ruta con la capacidad requerida.
// El patrón admite :param que casa un segmento, como en el router.
type reglaRuta struct {
	Metodo   string
	Patron   string
	Permitir func(Permisos) bool
}

var reglasRutas = []reglaRuta{
	{"GET", "/api/v1/eventos", func(p Permisos) bool { return p.VerEventos }},
	{"POST", "/api/v1/eventos", func(p Permisos) bool { return p.CrearEventos }},
	{"GET", "/api/v1/eventos/:id", func(p Permisos) bool { return p.VerEventos }},
	{"PUT", "/api/v1/eventos/:id", func(p Permisos) bool { return p.EditarEventos }},
	{"DELETE", "/api/v1/eventos/:id", func(p Permisos) bool { return p.EliminarEventos }},
	{"GET", "/api/v1/eventos/:id/resumen", func(p Permisos) bool { return p.VerResumenFinanciero }},
	{"POST", "/api/v1/eventos/:id/garantia/devolucion", func(p Permisos) bool { return p.EditarEventos }},
	{"GET", "/api/v1/eventos/:id/garantia/devolucion", func(p Permisos) bool { return p.VerResumenFinanciero }},
	{"GET", "/api/v1/clientes", func(p Permisos) bool { return p.VerClientes }},
	{"POST", "/api/v1/clientes", func(p Permisos) bool { return p.EditarClientes }},
	{"GET", "/api/v1/clientes/:id", func(p Permisos) bool { return p.VerClientes }},
	{"PUT", "/api/v1/clientes/:id", func(p Permisos) bool { return p.EditarClientes }},
	{"DELETE", "/api/v1/clientes/:id", func(p Permisos) bool { return p.EditarClientes }},
	{"GET", "/api/v1/eventos/:id/gastos", func(p Permisos) bool { return p.VerGastos }},
	{"POST", "/api/v1/eventos/:id/gastos", func(p Permisos) bool { return p.RegistrarGastos }},
	{"POST", "/api/v1/eventos/:id/gastos/sugerir", func(p Permisos) bool { return p.RegistrarGastos }},
	{"PUT", "/api/v1/eventos/:id/gastos/:gasto_id", func(p Permisos) bool { return p.EditarGastos }},
	{"POST", "/api/v1/eventos/:id/gastos/:gasto_id/registrar", func(p Permisos) bool { return p.RegistrarGastos }},
	{"DELETE", "/api/v1/eventos/:id/gastos/:gasto_id", func(p Permisos) bool { return p.EditarGastos }},
	{"GET", "/api/v1/eventos/:id/decoracion", func(p Permisos) bool { return p.VerDecoracion }},
	{"POST", "/api/v1/eventos/:id/decoracion", func(p Permisos) bool { return p.EditarDecoracion }},
	{"PUT", "/api/v1/eventos/:id/decoracion/:item_id", func(p Permisos) bool { return p.EditarDecoracion }},
	{"DELETE", "/api/v1/eventos/:id/decoracion/:item_id", func(p Permisos) bool { return p.EditarDecoracion }},
	{"POST", "/api/v1/eventos/:id/decoracion/:item_id/pagos", func(p Permisos) bool { return p.RegistrarPagosDecoracion }},
	{"GET", "/api/v1/eventos/:id/personal", func(p Permisos) bool { return p.VerPersonal }},
	{"POST", "/api/v1/eventos/:id/personal", func(p Permisos) bool { return p.EditarPersonal }},
	{"PUT", "/api/v1/eventos/:id/personal/:miembro_id", func(p Permisos) bool { return p.EditarPersonal }},
	{"DELETE", "/api/v1/eventos/:id/personal/:miembro_id", func(p Permisos) bool { return p.EditarPersonal }},
	{"POST", "/api/v1/eventos/:id/horas-extra", func(p Permisos) bool { return p.EditarPersonal }},
	{"GET", "/api/v1/eventos/:id/bebidas", func(p Permisos) bool { return p.VerBebidas }},
	{"POST", "/api/v1/eventos/:id/bebidas", func(p Permisos) bool { return p.EditarBebidas }},
	{"PUT", "/api/v1/eventos/:id/bebidas/:bebida_id", func(p Permisos) bool { return p.EditarBebidas }},
	{"DELETE", "/api/v1/eventos/:id/bebidas/:bebida_id", func(p Permisos) bool { return p.EditarBebidas }},
	{"POST", "/api/v1/eventos/:id/ingresos", func(p Permisos) bool { return p.EditarEventos }},
	{"GET", "/api/v1/eventos/:id/ingresos", func(p Permisos) bool { return p.VerResumenFinanciero }},
	{"GET", "/api/v1/eventos/:id/export/excel", func(p Permisos) bool { return p.ExportarDatos }},
	{"GET", "/api/v1/eventos/:id/export/csv", func(p Permisos) bool { return p.ExportarDatos }},
	{"GET", "/api/v1/eventos/:id/export/json", func(p Permisos) bool { return p.ExportarDatos }},
	{"GET", "/api/v1/eventos/:id/auditoria", func(p Permisos) bool { return p.VerAuditoria }},
	{"GET", "/api/v1/auditoria", func(p Permisos) bool { return p.VerAuditoria }},
	{"GET", "/api/v1/usuarios", func(p Permisos) bool { return p.AdministrarUsuarios }},
	{"PUT", "/api/v1/usuarios/:id", func(p Permisos) bool { return p.AdministrarUsuarios }},
}

// PuedeAccederRuta evalúa la visibilidad de una ruta para un rol.
// Rutas fuera de la tabla se niegan por defecto.
func PuedeAccederRuta(rol Rol, metodo, ruta string) bool {
	p := PermisosDe(rol)
	ruta = normalizarRuta(ruta)
	for _, regla := range reglasRutas {
		if regla.Metodo != metodo {
			continue
		}
		if coincideRuta(ruta, regla.Patron) {
			return regla.Permitir(p)
		}
	}
	return false
}

// Actor identidad ya resuelta por la capa de autenticación
type Actor struct {
	ID               uint
	Nombre           string
	Rol              Rol
	EventosAsignados []uint
}

// esRolElevado admin y socio ven todo sin asignación explícita
func esRolElevado(rol Rol) bool {
	return rol == RolAdmin || rol == RolSocio
}

// PuedeVerEvento visibilidad a nivel de evento: los roles elevados ven todo;
// el resto solo los eventos que tienen asignados.
func PuedeVerEvento(actor Actor, eventoID uint) bool {
	if esRolElevado(actor.Rol) {
		return true
	}
	for _, id := range actor.EventosAsignados {
		if id == eventoID {
			return true
		}
	}
	return false
}

// PuedeEditarGastos misma regla de asignación que PuedeVerEvento más la
// capacidad de edición. Que un rol elevado edite gastos se permite pero se
// marca como edición sospechosa en la auditoría (ver audit.go): registrar
// gastos es normativamente tarea del rol compras.
func PuedeEditarGastos(actor Actor, eventoID uint) bool {
	if !PermisosDe(actor.Rol).EditarGastos {
		return false
	}
	return PuedeVerEvento(actor, eventoID)
}

func normalizarRuta(r string) string {
	if r == "" {
		return "/"
	}
	if r[0] != '/' {
		r = "/" + r
	}
	return r
}

// coincideRuta compara una ruta real contra un patrón con :param.
// /api/v1/eventos/123 casa /api/v1/eventos/:id
func coincideRuta(real, patron string) bool {
	a := partirRuta(real)
	p := partirRuta(normalizarRuta(patron))
	if len(a) != len(p) {
		return false
	}
	for i := range a {
		if len(p[i]) > 0 && p[i][0] == ':' {
			if a[i] == "" {
				return false
			}
			continue
		}
		if a[i] != p[i] {
			return false
		}
	}
	return true
}

func partirRuta(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}
