package ledger

// Este archivo concentra el recálculo financiero del evento: una sola pasada
// pura sobre colecciones en memoria. El llamador carga el evento, recalcula y
// guarda; ningún subcomponente retiene referencias entre llamadas, así que
// eventos distintos pueden recalcularse en paralelo sin coordinación.

// TerminosContrato campos contractuales del evento
type TerminosContrato struct {
	// Adelanto pago inicial del cliente
	Adelanto float64
	// Garantia monto de garantía; cuenta como ingreso al recibirse y su
	// devolución es una operación aparte, no parte del recálculo
	Garantia float64
	// CajaChica presupuesto asignado contra el que se compara el gasto total
	CajaChica float64
}

// DetalleComida datos de comida del evento; nil cuando aún no se definen
type DetalleComida struct {
	Platos         float64
	PrecioPorPlato float64
}

// LineaGasto gasto individual. El monto derivado se recalcula siempre desde
// cantidad × costo unitario; nunca se confía en un monto persistido.
type LineaGasto struct {
	Cantidad         float64
	CostoUnitario    float64
	EsPredeterminado bool
}

// LineaDecoracion ítem de decoración con ambos lados del precio
type LineaDecoracion struct {
	CostoProveedor float64
	CostoCliente   float64
}

// LineaPersonal miembro del personal asignado al evento
type LineaPersonal struct {
	Tipo         TipoTarifa
	HorasOPlatos float64
	Tarifa       float64
}

// LineaHoraExtra horas extra, colección aparte por nombre de trabajador
type LineaHoraExtra struct {
	Horas  float64
	Tarifa float64
}

// LineaBebida línea de bebida con sus operandos crudos
type LineaBebida struct {
	Tipo      TipoBebida
	Modalidad ModalidadBebida
	Campos    CamposBebida
}

// LineaIngreso ingreso adicional (kiosco, alquileres, etc.)
type LineaIngreso struct {
	Monto float64
}

// EntradaRecalculo colecciones completas del evento al momento del recálculo
type EntradaRecalculo struct {
	Comida     *DetalleComida
	Gastos     []LineaGasto
	Decoracion []LineaDecoracion
	Personal   []LineaPersonal
	HorasExtra []LineaHoraExtra
	Bebidas    []LineaBebida
	Ingresos   []LineaIngreso
	Contrato   TerminosContrato
}

// EstadoFinanciero libro financiero del evento. Se crea en ceros al crear el
// evento y se reescribe completo en cada recálculo; nunca se muta por partes.
type EstadoFinanciero struct {
	CostoComida              float64 `json:"costo_comida"`
	CostoBebidas             float64 `json:"costo_bebidas"`
	CostoDecoracionCliente   float64 `json:"costo_decoracion_cliente"`
	CostoDecoracionProveedor float64 `json:"costo_decoracion_proveedor"`
	GananciaDecoracion       float64 `json:"ganancia_decoracion"`
	CostoPersonal            float64 `json:"costo_personal"`
	GastosPredeterminados    float64 `json:"gastos_predeterminados"`
	GastosAdicionales        float64 `json:"gastos_adicionales"`
	PrecioTotal              float64 `json:"precio_total"`
	GastoTotal               float64 `json:"gasto_total"`
	IngresoTotal             float64 `json:"ingreso_total"`
	// Balance ingreso total − gasto total; puede ser negativo
	Balance  float64 `json:"balance"`
	Adelanto float64 `json:"adelanto"`
	// PagoPendiente precio total − adelanto. Un valor negativo significa que
	// el cliente pagó de más y se muestra tal cual, sin recortar a cero.
	PagoPendiente float64 `json:"pago_pendiente"`
	CajaChica     float64 `json:"caja_chica"`
	// SaldoCajaChica caja chica − gasto total (superávit o déficit)
	SaldoCajaChica float64 `json:"saldo_caja_chica"`
}

// Recalcular recalcula el estado financiero completo del evento. Determinista:
// la misma entrada produce bit a bit el mismo estado.
//
// Nota heredada: el precio total excluye las bebidas en modalidad compra_local
// y los ingresos adicionales, aunque el gasto total sí incluye el costo local
// de esas bebidas. La asimetría viene del comportamiento original y se
// preserva a propósito; ver DESIGN.md.
func Recalcular(in EntradaRecalculo) EstadoFinanciero {
	var s EstadoFinanciero

	// 1. comida
	if in.Comida != nil {
		s.CostoComida = ComputeFoodCost(in.Comida.Platos, in.Comida.PrecioPorPlato).Monto
	}

	// 2. bebidas: gasto siempre al costo proveedor/local
	var bebidasEnPrecio float64
	for _, b := range in.Bebidas {
		r := ComputeBeverageCost(b.Tipo, b.Modalidad, b.Campos)
		s.CostoBebidas += r.Monto
		if b.Modalidad != ModalidadCompraLocal {
			bebidasEnPrecio += r.Monto
		}
	}

	// 3. decoración
	for _, d := range in.Decoracion {
		s.CostoDecoracionCliente += d.CostoCliente
		s.CostoDecoracionProveedor += d.CostoProveedor
	}
	s.GananciaDecoracion = s.CostoDecoracionCliente - s.CostoDecoracionProveedor

	// 4. personal + horas extra
	for _, p := range in.Personal {
		s.CostoPersonal += ComputeStaffCost(p.Tipo, p.HorasOPlatos, p.Tarifa).Monto
	}
	for _, h := range in.HorasExtra {
		s.CostoPersonal += ComputeStaffCost(TarifaPorHora, h.Horas, h.Tarifa).Monto
	}

	// 5. gastos predeterminados vs adicionales
	for _, g := range in.Gastos {
		monto := Redondear2(g.Cantidad * g.CostoUnitario)
		if g.EsPredeterminado {
			s.GastosPredeterminados += monto
		} else {
			s.GastosAdicionales += monto
		}
	}

	// 6. precio de cara al cliente
	s.PrecioTotal = s.CostoComida + bebidasEnPrecio + s.CostoDecoracionCliente + in.Contrato.Garantia

	// 7. gasto total
	s.GastoTotal = s.GastosPredeterminados + s.GastosAdicionales +
		s.CostoDecoracionProveedor + s.CostoPersonal + s.CostoBebidas

	// 8. ingreso total
	s.IngresoTotal = in.Contrato.Adelanto + in.Contrato.Garantia
	for _, i := range in.Ingresos {
		s.IngresoTotal += i.Monto
	}

	// 9-10. saldos
	s.Balance = s.IngresoTotal - s.GastoTotal
	s.Adelanto = in.Contrato.Adelanto
	s.PagoPendiente = s.PrecioTotal - in.Contrato.Adelanto
	s.CajaChica = in.Contrato.CajaChica
	s.SaldoCajaChica = in.Contrato.CajaChica - s.GastoTotal

	// Redondeo final de todos los campos monetarios
	s.CostoComida = Redondear2(s.CostoComida)
	s.CostoBebidas = Redondear2(s.CostoBebidas)
	s.CostoDecoracionCliente = Redondear2(s.CostoDecoracionCliente)
	s.CostoDecoracionProveedor = Redondear2(s.CostoDecoracionProveedor)
	s.GananciaDecoracion = Redondear2(s.GananciaDecoracion)
	s.CostoPersonal = Redondear2(s.CostoPersonal)
	s.GastosPredeterminados = Redondear2(s.GastosPredeterminados)
	s.GastosAdicionales = Redondear2(s.GastosAdicionales)
	s.PrecioTotal = Redondear2(s.PrecioTotal)
	s.GastoTotal = Redondear2(s.GastoTotal)
	s.IngresoTotal = Redondear2(s.IngresoTotal)
	s.Balance = Redondear2(s.Balance)
	s.Adelanto = Redondear2(s.Adelanto)
	s.PagoPendiente = Redondear2(s.PagoPendiente)
	s.CajaChica = Redondear2(s.CajaChica)
	s.SaldoCajaChica = Redondear2(s.SaldoCajaChica)

	return s
}
