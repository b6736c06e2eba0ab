package ledger

// TipoTarifa forma de cobro de un miembro del personal
type TipoTarifa string

const (
	// TarifaPorHora cobra horas × tarifa (8 horas por defecto al asignar)
	TarifaPorHora TipoTarifa = "por_hora"
	// TarifaPorPlato cobra platos × tarifa
	TarifaPorPlato TipoTarifa = "por_plato"
)

// TipoBebida clases de bebida soportadas
type TipoBebida string

const (
	BebidaGaseosa TipoBebida = "gaseosa"
	BebidaAgua    TipoBebida = "agua"
	BebidaChampan TipoBebida = "champan"
	BebidaVino    TipoBebida = "vino"
	BebidaCerveza TipoBebida = "cerveza"
	BebidaCoctel  TipoBebida = "coctel"
)

// ModalidadBebida modalidad de precio para cerveza y cóctel
type ModalidadBebida string

const (
	// ModalidadNinguna bebidas simples (gaseosa/agua/champán/vino) no llevan modalidad
	ModalidadNinguna ModalidadBebida = ""
	// ModalidadCover costo fijo por caja/unidad que el local paga sí o sí, sin margen
	ModalidadCover ModalidadBebida = "cover"
	// ModalidadCompraLocal se registran costo local (proveedor) y costo cliente; hay margen
	ModalidadCompraLocal ModalidadBebida = "compra_local"
)

// CostResult resultado de un calculador de categoría. Los calculadores nunca
// fallan: una entrada negativa o no numérica produce Amount=0 con Valido=false
// para que la capa de formularios decida si bloquea el registro.
type CostResult struct {
	// Monto importe que entra al total de gastos de la categoría
	Monto float64
	// Ganancia margen derivado (puede ser negativo, no se recorta)
	Ganancia float64
	// Valido true cuando todos los operandos requeridos son > 0.
	// Cero solo es válido como estado inicial, no para registrar.
	Valido bool
}

// ComputeFoodCost costo de comida: platos × precio por plato
func ComputeFoodCost(platos, precioPorPlato float64) CostResult {
	if !esMontoUtilizable(platos) || !esMontoUtilizable(precioPorPlato) {
		return CostResult{}
	}
	return CostResult{
		Monto:  Redondear2(platos * precioPorPlato),
		Valido: platos > 0 && precioPorPlato > 0,
	}
}

// ComputeDecorationCost ganancia de un ítem de decoración: costo cliente − costo proveedor.
// Una ganancia negativa (pérdida) se devuelve tal cual, no se recorta a cero.
func ComputeDecorationCost(costoProveedor, costoCliente float64) CostResult {
	if !esMontoUtilizable(costoProveedor) || !esMontoUtilizable(costoCliente) {
		return CostResult{}
	}
	return CostResult{
		Monto:    Redondear2(costoProveedor),
		Ganancia: Redondear2(costoCliente - costoProveedor),
		Valido:   costoProveedor > 0 && costoCliente > 0,
	}
}

// ComputeStaffCost costo de un miembro del personal: horas o platos × tarifa.
// El calculador solo multiplica; al cambiar de rol el llamador debe rederivar
// el valor por defecto de horas/platos desde el catálogo de roles.
func ComputeStaffCost(tipo TipoTarifa, horasOPlatos, tarifa float64) CostResult {
	if tipo != TarifaPorHora && tipo != TarifaPorPlato {
		return CostResult{}
	}
	if !esMontoUtilizable(horasOPlatos) || !esMontoUtilizable(tarifa) {
		return CostResult{}
	}
	return CostResult{
		Monto:  Redondear2(horasOPlatos * tarifa),
		Valido: horasOPlatos > 0 && tarifa > 0,
	}
}

// CamposBebida operandos crudos de una línea de bebida. Qué campos aplican
// depende del tipo y la modalidad.
type CamposBebida struct {
	// Cantidad unidades (bebidas simples) o cajas (cerveza/cóctel)
	Cantidad float64
	// PrecioUnitario bebidas simples
	PrecioUnitario float64
	// CostoCaja modalidad cover
	CostoCaja float64
	// CostoCajaLocal costo proveedor en compra local; SIEMPRE es el lado de gasto
	CostoCajaLocal float64
	// CostoCajaCliente precio al cliente en compra local; solo deriva ganancia
	CostoCajaCliente float64
}

// ComputeBeverageCost costo de una línea de bebida. Invariante: el lado de
// gasto usa siempre el costo proveedor/local, nunca el costo cliente.
func ComputeBeverageCost(tipo TipoBebida, modalidad ModalidadBebida, f CamposBebida) CostResult {
	if !esMontoUtilizable(f.Cantidad) {
		return CostResult{}
	}

	switch tipo {
	case BebidaGaseosa, BebidaAgua, BebidaChampan, BebidaVino:
		if !esMontoUtilizable(f.PrecioUnitario) {
			return CostResult{}
		}
		return CostResult{
			Monto:  Redondear2(f.Cantidad * f.PrecioUnitario),
			Valido: f.Cantidad > 0 && f.PrecioUnitario > 0,
		}

	case BebidaCerveza, BebidaCoctel:
		switch modalidad {
		case ModalidadCover:
			if !esMontoUtilizable(f.CostoCaja) {
				return CostResult{}
			}
			// Cover es un pase directo: se paga igual, la ganancia queda en cero
			return CostResult{
				Monto:  Redondear2(f.Cantidad * f.CostoCaja),
				Valido: f.Cantidad > 0 && f.CostoCaja > 0,
			}
		case ModalidadCompraLocal:
			if !esMontoUtilizable(f.CostoCajaLocal) || !esMontoUtilizable(f.CostoCajaCliente) {
				return CostResult{}
			}
			return CostResult{
				Monto:    Redondear2(f.Cantidad * f.CostoCajaLocal),
				Ganancia: Redondear2(f.Cantidad * (f.CostoCajaCliente - f.CostoCajaLocal)),
				Valido:   f.Cantidad > 0 && f.CostoCajaLocal > 0,
			}
		}
	}

	return CostResult{}
}

// ComputeVegetableCost costo de verduras o ají: kg × precio por kg.
// La misma forma sirve para ambas categorías; el llamador elige cuál.
func ComputeVegetableCost(kg, precioPorKg float64) CostResult {
	if !esMontoUtilizable(kg) || !esMontoUtilizable(precioPorKg) {
		return CostResult{}
	}
	return CostResult{
		Monto:  Redondear2(kg * precioPorKg),
		Valido: kg > 0 && precioPorKg > 0,
	}
}

// ValidarRegistro valida los operandos de una línea antes de persistirla.
// Devuelve un ValidationError con el campo ofensivo cuando alguno es <= 0.
func ValidarRegistro(cantidad, costoUnitario float64) error {
	if !esMontoUtilizable(cantidad) || cantidad <= 0 {
		return entradaInvalida("cantidad", "debe ser mayor que cero para registrar")
	}
	if !esMontoUtilizable(costoUnitario) || costoUnitario <= 0 {
		return entradaInvalida("costo_unitario", "debe ser mayor que cero para registrar")
	}
	return nil
}
