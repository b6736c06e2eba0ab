package api

import (
	"eventos/database"
	"eventos/ledger"
	"eventos/models"
)

// cargarEntradaRecalculo arma la entrada del recálculo con las colecciones
// completas del evento tal como están en la base.
func cargarEntradaRecalculo(evento *models.Evento) (ledger.EntradaRecalculo, error) {
	var in ledger.EntradaRecalculo

	if evento.Platos > 0 || evento.PrecioPorPlato > 0 {
		in.Comida = &ledger.DetalleComida{
			Platos:         evento.Platos,
			PrecioPorPlato: evento.PrecioPorPlato,
		}
	}
	in.Contrato = ledger.TerminosContrato{
		Adelanto:  evento.Adelanto,
		Garantia:  evento.Garantia,
		CajaChica: evento.CajaChica,
	}

	var gastos []models.Gasto
	if err := database.DB.Where("evento_id = ?", evento.ID).Find(&gastos).Error; err != nil {
		return in, err
	}
	for _, g := range gastos {
		in.Gastos = append(in.Gastos, ledger.LineaGasto{
			Cantidad:         g.Cantidad,
			CostoUnitario:    g.CostoUnitario,
			EsPredeterminado: g.EsPredeterminado,
		})
	}

	var decoracion []models.DecoracionItem
	if err := database.DB.Where("evento_id = ?", evento.ID).Find(&decoracion).Error; err != nil {
		return in, err
	}
	for _, d := range decoracion {
		in.Decoracion = append(in.Decoracion, ledger.LineaDecoracion{
			CostoProveedor: d.CostoProveedor,
			CostoCliente:   d.CostoCliente,
		})
	}

	var personal []models.Personal
	if err := database.DB.Where("evento_id = ?", evento.ID).Find(&personal).Error; err != nil {
		return in, err
	}
	for _, p := range personal {
		in.Personal = append(in.Personal, ledger.LineaPersonal{
			Tipo:         ledger.TipoTarifa(p.TipoTarifa),
			HorasOPlatos: p.HorasOPlatos,
			Tarifa:       p.Tarifa,
		})
	}

	var horasExtra []models.HoraExtra
	if err := database.DB.Where("evento_id = ?", evento.ID).Find(&horasExtra).Error; err != nil {
		return in, err
	}
	for _, h := range horasExtra {
		in.HorasExtra = append(in.HorasExtra, ledger.LineaHoraExtra{
			Horas:  h.Horas,
			Tarifa: h.Tarifa,
		})
	}

	var bebidas []models.Bebida
	if err := database.DB.Where("evento_id = ?", evento.ID).Find(&bebidas).Error; err != nil {
		return in, err
	}
	for _, b := range bebidas {
		in.Bebidas = append(in.Bebidas, ledger.LineaBebida{
			Tipo:      ledger.TipoBebida(b.Tipo),
			Modalidad: ledger.ModalidadBebida(b.Modalidad),
			Campos: ledger.CamposBebida{
				Cantidad:         b.Cantidad,
				PrecioUnitario:   b.PrecioUnitario,
				CostoCaja:        b.CostoCaja,
				CostoCajaLocal:   b.CostoCajaLocal,
				CostoCajaCliente: b.CostoCajaCliente,
			},
		})
	}

	var ingresos []models.Ingreso
	if err := database.DB.Where("evento_id = ?", evento.ID).Find(&ingresos).Error; err != nil {
		return in, err
	}
	for _, i := range ingresos {
		in.Ingresos = append(in.Ingresos, ledger.LineaIngreso{Monto: i.Monto})
	}

	return in, nil
}

// recalcularYGuardar recalcula el libro financiero del evento y persiste la
// instantánea completa. Se llama tras cada mutación de una colección y al
// consultar el resumen: los montos derivados nunca se sirven de datos viejos.
func recalcularYGuardar(evento *models.Evento) (ledger.EstadoFinanciero, error) {
	in, err := cargarEntradaRecalculo(evento)
	if err != nil {
		return ledger.EstadoFinanciero{}, err
	}

	estado := ledger.Recalcular(in)

	updates := map[string]interface{}{
		"costo_comida":               estado.CostoComida,
		"costo_bebidas":              estado.CostoBebidas,
		"costo_decoracion_cliente":   estado.CostoDecoracionCliente,
		"costo_decoracion_proveedor": estado.CostoDecoracionProveedor,
		"ganancia_decoracion":        estado.GananciaDecoracion,
		"costo_personal":             estado.CostoPersonal,
		"precio_total":               estado.PrecioTotal,
		"gasto_total":                estado.GastoTotal,
		"ingreso_total":              estado.IngresoTotal,
		"balance":                    estado.Balance,
		"pago_pendiente":             estado.PagoPendiente,
		"saldo_caja_chica":           estado.SaldoCajaChica,
	}
	if err := database.DB.Model(evento).Updates(updates).Error; err != nil {
		return estado, err
	}

	return estado, nil
}

// recalcularPorID variante que carga el evento primero
func recalcularPorID(eventoID uint) (ledger.EstadoFinanciero, error) {
	var evento models.Evento
	if err := database.DB.First(&evento, eventoID).Error; err != nil {
		return ledger.EstadoFinanciero{}, err
	}
	return recalcularYGuardar(&evento)
}
