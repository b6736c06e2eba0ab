package catalog

import "eventos/ledger"

// RolPersonal entrada del catálogo de roles del personal: tarifa por defecto,
// tipo de tarifa y si el rol puede recibir acceso al sistema. El tipo de
// tarifa se deriva siempre del rol, nunca se fija aparte.
type RolPersonal struct {
	ID               string            `json:"id"`
	Nombre           string            `json:"nombre"`
	TipoTarifa       ledger.TipoTarifa `json:"tipo_tarifa"`
	TarifaPorDefecto float64           `json:"tarifa_por_defecto"`
	// HorasPorDefecto valor inicial de horas al asignar un rol por hora
	HorasPorDefecto float64 `json:"horas_por_defecto"`
	// PermiteAccesoSistema solo los roles de esta lista blanca pueden llevar
	// el flag de acceso al sistema
	PermiteAccesoSistema bool `json:"permite_acceso_sistema"`
}

var rolesPersonal = []RolPersonal{
	{ID: "mesero", Nombre: "Mesero", TipoTarifa: ledger.TarifaPorHora, TarifaPorDefecto: 25, HorasPorDefecto: 8},
	{ID: "azafata", Nombre: "Azafata", TipoTarifa: ledger.TarifaPorHora, TarifaPorDefecto: 25, HorasPorDefecto: 8},
	{ID: "seguridad", Nombre: "Seguridad", TipoTarifa: ledger.TarifaPorHora, TarifaPorDefecto: 30, HorasPorDefecto: 8},
	{ID: "lavaplatos", Nombre: "Lavaplatos", TipoTarifa: ledger.TarifaPorHora, TarifaPorDefecto: 20, HorasPorDefecto: 8},
	{ID: "cocinero", Nombre: "Cocinero", TipoTarifa: ledger.TarifaPorPlato, TarifaPorDefecto: 3},
	{ID: "maestro_parrillero", Nombre: "Maestro parrillero", TipoTarifa: ledger.TarifaPorPlato, TarifaPorDefecto: 5},
	{ID: "coordinador", Nombre: "Coordinador", TipoTarifa: ledger.TarifaPorHora, TarifaPorDefecto: 40, HorasPorDefecto: 8, PermiteAccesoSistema: true},
	{ID: "administrador_evento", Nombre: "Administrador de evento", TipoTarifa: ledger.TarifaPorHora, TarifaPorDefecto: 50, HorasPorDefecto: 8, PermiteAccesoSistema: true},
}

// BuscarRolPersonal busca un rol por id. El segundo valor indica si existe;
// un id desconocido no es un error duro porque el catálogo evoluciona aparte
// de los eventos ya persistidos.
func BuscarRolPersonal(id string) (RolPersonal, bool) {
	for _, r := range rolesPersonal {
		if r.ID == id {
			return r, true
		}
	}
	return RolPersonal{}, false
}

// ListaRolesPersonal todos los roles, para el endpoint de catálogo
func ListaRolesPersonal() []RolPersonal {
	return rolesPersonal
}
