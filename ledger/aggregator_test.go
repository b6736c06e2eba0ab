package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entradaCompleta() EntradaRecalculo {
	return EntradaRecalculo{
		Comida: &DetalleComida{Platos: 100, PrecioPorPlato: 5},
		Gastos: []LineaGasto{
			{Cantidad: 50, CostoUnitario: 8.5, EsPredeterminado: true}, // 425
			{Cantidad: 2, CostoUnitario: 30},                          // 60 adicional
		},
		Decoracion: []LineaDecoracion{
			{CostoProveedor: 120, CostoCliente: 200},
		},
		Personal: []LineaPersonal{
			{Tipo: TarifaPorHora, HorasOPlatos: 8, Tarifa: 25},    // 200
			{Tipo: TarifaPorPlato, HorasOPlatos: 100, Tarifa: 3},  // 300
		},
		HorasExtra: []LineaHoraExtra{
			{Horas: 2, Tarifa: 25}, // 50
		},
		Bebidas: []LineaBebida{
			{Tipo: BebidaGaseosa, Campos: CamposBebida{Cantidad: 24, PrecioUnitario: 2.5}},                                            // 60, entra al precio
			{Tipo: BebidaCerveza, Modalidad: ModalidadCover, Campos: CamposBebida{Cantidad: 4, CostoCaja: 45}},                        // 180, entra al precio
			{Tipo: BebidaCerveza, Modalidad: ModalidadCompraLocal, Campos: CamposBebida{Cantidad: 10, CostoCajaLocal: 40, CostoCajaCliente: 55}}, // 400, NO entra al precio
		},
		Ingresos: []LineaIngreso{{Monto: 80}},
		Contrato: TerminosContrato{Adelanto: 300, Garantia: 100, CajaChica: 1500},
	}
}

func TestRecalcular_Completo(t *testing.T) {
	s := Recalcular(entradaCompleta())

	assert.Equal(t, 500.0, s.CostoComida)
	assert.Equal(t, 640.0, s.CostoBebidas) // 60 + 180 + 400
	assert.Equal(t, 200.0, s.CostoDecoracionCliente)
	assert.Equal(t, 120.0, s.CostoDecoracionProveedor)
	assert.Equal(t, 80.0, s.GananciaDecoracion)
	assert.Equal(t, 550.0, s.CostoPersonal) // 200 + 300 + 50
	assert.Equal(t, 425.0, s.GastosPredeterminados)
	assert.Equal(t, 60.0, s.GastosAdicionales)

	// precio: comida 500 + bebidas sin compra_local 240 + decoración cliente 200 + garantía 100
	assert.Equal(t, 1040.0, s.PrecioTotal)

	// gasto: 425 + 60 + 120 + 550 + 640
	assert.Equal(t, 1795.0, s.GastoTotal)

	// ingreso: adelanto 300 + garantía 100 + adicionales 80
	assert.Equal(t, 480.0, s.IngresoTotal)

	assert.Equal(t, -1315.0, s.Balance)
	assert.Equal(t, 740.0, s.PagoPendiente)
	assert.Equal(t, -295.0, s.SaldoCajaChica) // 1500 − 1795
}

func TestRecalcular_Idempotente(t *testing.T) {
	in := entradaCompleta()
	primero := Recalcular(in)
	segundo := Recalcular(in)
	// mismo conjunto de líneas → estado bit a bit idéntico
	assert.Equal(t, primero, segundo)
}

func TestRecalcular_EscenarioContrato(t *testing.T) {
	// comida 500, decoración cliente 200, garantía 100, adelanto 300
	s := Recalcular(EntradaRecalculo{
		Comida:     &DetalleComida{Platos: 100, PrecioPorPlato: 5},
		Decoracion: []LineaDecoracion{{CostoProveedor: 150, CostoCliente: 200}},
		Contrato:   TerminosContrato{Adelanto: 300, Garantia: 100},
	})
	assert.Equal(t, 800.0, s.PrecioTotal)
	assert.Equal(t, 500.0, s.PagoPendiente)
}

func TestRecalcular_SinComida(t *testing.T) {
	s := Recalcular(EntradaRecalculo{})
	assert.Equal(t, 0.0, s.CostoComida)
	assert.Equal(t, 0.0, s.PrecioTotal)
	assert.Equal(t, 0.0, s.Balance)
}

func TestRecalcular_SobrepagoNoSeRecorta(t *testing.T) {
	// adelanto mayor al precio: pendiente negativo visible, no cero
	s := Recalcular(EntradaRecalculo{
		Comida:   &DetalleComida{Platos: 10, PrecioPorPlato: 10},
		Contrato: TerminosContrato{Adelanto: 150},
	})
	assert.Equal(t, 100.0, s.PrecioTotal)
	assert.Equal(t, -50.0, s.PagoPendiente)
}

func TestRecalcular_AsimetriaCompraLocal(t *testing.T) {
	// el gasto incluye el costo local de la cerveza pero el precio no la suma;
	// comportamiento heredado que se preserva tal cual
	s := Recalcular(EntradaRecalculo{
		Bebidas: []LineaBebida{
			{Tipo: BebidaCerveza, Modalidad: ModalidadCompraLocal, Campos: CamposBebida{Cantidad: 10, CostoCajaLocal: 40, CostoCajaCliente: 55}},
		},
	})
	assert.Equal(t, 400.0, s.GastoTotal)
	assert.Equal(t, 0.0, s.PrecioTotal)
}

func TestRecalcular_MontoDerivadoSiempreRecalculado(t *testing.T) {
	// el monto sale de cantidad × costo unitario actuales, nunca de un valor guardado
	s := Recalcular(EntradaRecalculo{
		Gastos: []LineaGasto{{Cantidad: 3, CostoUnitario: 7}},
	})
	assert.Equal(t, 21.0, s.GastosAdicionales)
	assert.Equal(t, 21.0, s.GastoTotal)
	assert.Equal(t, -21.0, s.Balance)
}
