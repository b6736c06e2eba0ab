package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"eventos/database"
	"eventos/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exportación del libro financiero de un evento
type ExportHandler struct{}

// NewExportHandler crea el handler de exportación
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// cargarEventoCompleto carga el evento con todas sus colecciones y el libro
// recién recalculado, para que el archivo nunca salga con montos viejos
func cargarEventoCompleto(c *gin.Context) (*models.Evento, bool) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return nil, false
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return nil, false
	}

	var completo models.Evento
	if err := database.DB.
		Preload("Cliente").
		Preload("Gastos").
		Preload("Decoracion").
		Preload("Decoracion.Pagos").
		Preload("Personal").
		Preload("HorasExtra").
		Preload("Bebidas").
		Preload("Ingresos").
		First(&completo, evento.ID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar el evento"))
		return nil, false
	}
	return &completo, true
}

// ExportExcel exporta el evento como libro Excel
// @Summary Exportar evento a Excel
// @Description Genera un libro con una hoja de resumen y una hoja por colección (gastos, decoración, personal, bebidas, ingresos)
// @Tags Exportación
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {file} file "Archivo Excel"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	evento, ok := cargarEventoCompleto(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// Hoja de resumen
	resumen := "Resumen"
	f.SetSheetName("Sheet1", resumen)
	f.SetColWidth(resumen, "A", "A", 30)
	f.SetColWidth(resumen, "B", "B", 18)
	f.SetCellValue(resumen, "A1", "Concepto")
	f.SetCellValue(resumen, "B1", "Monto")
	f.SetCellStyle(resumen, "A1", "B1", headerStyle)

	filas := []struct {
		Concepto string
		Monto    float64
	}{
		{"Costo de comida", evento.CostoComida},
		{"Costo de bebidas", evento.CostoBebidas},
		{"Decoración (cliente)", evento.CostoDecoracionCliente},
		{"Decoración (proveedor)", evento.CostoDecoracionProveedor},
		{"Ganancia de decoración", evento.GananciaDecoracion},
		{"Costo de personal", evento.CostoPersonal},
		{"Precio total", evento.PrecioTotal},
		{"Gasto total", evento.GastoTotal},
		{"Ingreso total", evento.IngresoTotal},
		{"Balance", evento.Balance},
		{"Adelanto", evento.Adelanto},
		{"Pago pendiente", evento.PagoPendiente},
		{"Caja chica", evento.CajaChica},
		{"Saldo de caja chica", evento.SaldoCajaChica},
	}
	for i, fila := range filas {
		row := i + 2
		f.SetCellValue(resumen, fmt.Sprintf("A%d", row), fila.Concepto)
		f.SetCellValue(resumen, fmt.Sprintf("B%d", row), fila.Monto)
	}

	// Hoja de gastos
	hojaGastos := "Gastos"
	f.NewSheet(hojaGastos)
	encabezados := []string{"ID", "Categoría", "Descripción", "Cantidad", "Costo unitario", "Monto", "Estado", "Registrado por"}
	for i, hdr := range encabezados {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(hojaGastos, cell, hdr)
		f.SetCellStyle(hojaGastos, cell, cell, headerStyle)
	}
	for i, g := range evento.Gastos {
		row := i + 2
		f.SetCellValue(hojaGastos, fmt.Sprintf("A%d", row), g.ID)
		f.SetCellValue(hojaGastos, fmt.Sprintf("B%d", row), g.Categoria)
		f.SetCellValue(hojaGastos, fmt.Sprintf("C%d", row), g.Descripcion)
		f.SetCellValue(hojaGastos, fmt.Sprintf("D%d", row), g.Cantidad)
		f.SetCellValue(hojaGastos, fmt.Sprintf("E%d", row), g.CostoUnitario)
		f.SetCellValue(hojaGastos, fmt.Sprintf("F%d", row), g.Monto)
		f.SetCellValue(hojaGastos, fmt.Sprintf("G%d", row), g.Estado)
		f.SetCellValue(hojaGastos, fmt.Sprintf("H%d", row), g.RegistradoPor)
	}

	// Hoja de decoración
	hojaDeco := "Decoración"
	f.NewSheet(hojaDeco)
	encabezadosDeco := []string{"ID", "Descripción", "Costo proveedor", "Costo cliente", "Ganancia", "Estado de pago"}
	for i, hdr := range encabezadosDeco {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(hojaDeco, cell, hdr)
		f.SetCellStyle(hojaDeco, cell, cell, headerStyle)
	}
	for i, d := range evento.Decoracion {
		row := i + 2
		f.SetCellValue(hojaDeco, fmt.Sprintf("A%d", row), d.ID)
		f.SetCellValue(hojaDeco, fmt.Sprintf("B%d", row), d.Descripcion)
		f.SetCellValue(hojaDeco, fmt.Sprintf("C%d", row), d.CostoProveedor)
		f.SetCellValue(hojaDeco, fmt.Sprintf("D%d", row), d.CostoCliente)
		f.SetCellValue(hojaDeco, fmt.Sprintf("E%d", row), d.Ganancia)
		f.SetCellValue(hojaDeco, fmt.Sprintf("F%d", row), d.EstadoPago)
	}

	// Hoja de personal
	hojaPersonal := "Personal"
	f.NewSheet(hojaPersonal)
	encabezadosPers := []string{"ID", "Nombre", "Rol", "Tipo de tarifa", "Horas/Platos", "Tarifa", "Total"}
	for i, hdr := range encabezadosPers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(hojaPersonal, cell, hdr)
		f.SetCellStyle(hojaPersonal, cell, cell, headerStyle)
	}
	for i, p := range evento.Personal {
		row := i + 2
		f.SetCellValue(hojaPersonal, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(hojaPersonal, fmt.Sprintf("B%d", row), p.Nombre)
		f.SetCellValue(hojaPersonal, fmt.Sprintf("C%d", row), p.RolID)
		f.SetCellValue(hojaPersonal, fmt.Sprintf("D%d", row), p.TipoTarifa)
		f.SetCellValue(hojaPersonal, fmt.Sprintf("E%d", row), p.HorasOPlatos)
		f.SetCellValue(hojaPersonal, fmt.Sprintf("F%d", row), p.Tarifa)
		f.SetCellValue(hojaPersonal, fmt.Sprintf("G%d", row), p.Total)
	}

	// Hoja de bebidas
	hojaBebidas := "Bebidas"
	f.NewSheet(hojaBebidas)
	encabezadosBeb := []string{"ID", "Tipo", "Modalidad", "Cantidad", "Monto", "Ganancia"}
	for i, hdr := range encabezadosBeb {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(hojaBebidas, cell, hdr)
		f.SetCellStyle(hojaBebidas, cell, cell, headerStyle)
	}
	for i, b := range evento.Bebidas {
		row := i + 2
		f.SetCellValue(hojaBebidas, fmt.Sprintf("A%d", row), b.ID)
		f.SetCellValue(hojaBebidas, fmt.Sprintf("B%d", row), b.Tipo)
		f.SetCellValue(hojaBebidas, fmt.Sprintf("C%d", row), b.Modalidad)
		f.SetCellValue(hojaBebidas, fmt.Sprintf("D%d", row), b.Cantidad)
		f.SetCellValue(hojaBebidas, fmt.Sprintf("E%d", row), b.Monto)
		f.SetCellValue(hojaBebidas, fmt.Sprintf("F%d", row), b.Ganancia)
	}

	// Hoja de ingresos
	hojaIngresos := "Ingresos"
	f.NewSheet(hojaIngresos)
	encabezadosIng := []string{"ID", "Concepto", "Monto", "Fecha"}
	for i, hdr := range encabezadosIng {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(hojaIngresos, cell, hdr)
		f.SetCellStyle(hojaIngresos, cell, cell, headerStyle)
	}
	for i, ing := range evento.Ingresos {
		row := i + 2
		f.SetCellValue(hojaIngresos, fmt.Sprintf("A%d", row), ing.ID)
		f.SetCellValue(hojaIngresos, fmt.Sprintf("B%d", row), ing.Concepto)
		f.SetCellValue(hojaIngresos, fmt.Sprintf("C%d", row), ing.Monto)
		f.SetCellValue(hojaIngresos, fmt.Sprintf("D%d", row), ing.Fecha.Format("2006-01-02"))
	}

	filename := fmt.Sprintf("evento_%d_%s.xlsx", evento.ID, evento.Fecha.Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al generar el Excel"))
		return
	}
}

// ExportCSV exporta los gastos del evento como CSV
// @Summary Exportar gastos a CSV
// @Description Genera un CSV con las líneas de gasto del evento
// @Tags Exportación
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {file} file "Archivo CSV"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	evento, ok := cargarEventoCompleto(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM para que Excel muestre bien los acentos
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Categoría", "Descripción", "Cantidad", "Unidad", "Costo unitario", "Monto", "Estado", "Registrado por", "Fecha"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "Error al generar el CSV")
		return
	}

	for _, g := range evento.Gastos {
		row := []string{
			fmt.Sprintf("%d", g.ID),
			g.Categoria,
			g.Descripcion,
			fmt.Sprintf("%.2f", g.Cantidad),
			g.Unidad,
			fmt.Sprintf("%.2f", g.CostoUnitario),
			fmt.Sprintf("%.2f", g.Monto),
			g.Estado,
			g.RegistradoPor,
			g.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Error al generar el CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Error al generar el CSV")
		return
	}

	filename := fmt.Sprintf("gastos_evento_%d.csv", evento.ID)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON exporta el evento completo como JSON
// @Summary Exportar evento a JSON
// @Description Devuelve el evento con todas sus colecciones y el libro financiero recién recalculado
// @Tags Exportación
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response{data=models.Evento} "Evento completo"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	evento, ok := cargarEventoCompleto(c)
	if !ok {
		return
	}

	Success(c, evento)
}
