package catalog

import "eventos/ledger"

// TipoBebidaInfo descripción de un tipo de bebida para el endpoint de catálogo
type TipoBebidaInfo struct {
	Tipo        ledger.TipoBebida        `json:"tipo"`
	Nombre      string                   `json:"nombre"`
	Modalidades []ledger.ModalidadBebida `json:"modalidades,omitempty"`
}

var tiposBebida = []TipoBebidaInfo{
	{Tipo: ledger.BebidaGaseosa, Nombre: "Gaseosa"},
	{Tipo: ledger.BebidaAgua, Nombre: "Agua"},
	{Tipo: ledger.BebidaChampan, Nombre: "Champán"},
	{Tipo: ledger.BebidaVino, Nombre: "Vino"},
	{Tipo: ledger.BebidaCerveza, Nombre: "Cerveza", Modalidades: []ledger.ModalidadBebida{ledger.ModalidadCover, ledger.ModalidadCompraLocal}},
	{Tipo: ledger.BebidaCoctel, Nombre: "Cóctel", Modalidades: []ledger.ModalidadBebida{ledger.ModalidadCover, ledger.ModalidadCompraLocal}},
}

// ListaTiposBebida tipos de bebida soportados y sus modalidades
func ListaTiposBebida() []TipoBebidaInfo {
	return tiposBebida
}

// EsTipoBebida valida un tipo contra el catálogo
func EsTipoBebida(t string) bool {
	for _, info := range tiposBebida {
		if string(info.Tipo) == t {
			return true
		}
	}
	return false
}

// ModalidadValida valida la modalidad para un tipo: las bebidas simples no
// llevan modalidad; cerveza y cóctel exigen cover o compra_local.
func ModalidadValida(t ledger.TipoBebida, m ledger.ModalidadBebida) bool {
	for _, info := range tiposBebida {
		if info.Tipo != t {
			continue
		}
		if len(info.Modalidades) == 0 {
			return m == ledger.ModalidadNinguna
		}
		for _, mod := range info.Modalidades {
			if mod == m {
				return true
			}
		}
		return false
	}
	return false
}
