package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"eventos/database"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// DecoracionHandler ítems de decoración y su cobranza
type DecoracionHandler struct{}

// NewDecoracionHandler crea el handler de decoración
func NewDecoracionHandler() *DecoracionHandler {
	return &DecoracionHandler{}
}

// DecoracionRequest datos de un ítem de decoración
type DecoracionRequest struct {
	Descripcion    string  `json:"descripcion" binding:"required,max=255" example:"Arreglo floral mesa principal"`
	CostoProveedor float64 `json:"costo_proveedor" binding:"required,gt=0" example:"300"`
	CostoCliente   float64 `json:"costo_cliente" binding:"required,gt=0" example:"450"`
}

// PagoDecoracionRequest abono contra un ítem de decoración
type PagoDecoracionRequest struct {
	Monto  float64 `json:"monto" binding:"required,gt=0" example:"200"`
	Metodo string  `json:"metodo" binding:"max=30" example:"efectivo"`
	Fecha  string  `json:"fecha" example:"2025-08-20"`
}

// cargarItemDecoracion carga un ítem con sus pagos; escribe el error si no existe
func cargarItemDecoracion(c *gin.Context, eventoID uint) (*models.DecoracionItem, bool) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID de ítem inválido")
		return nil, false
	}
	var item models.DecoracionItem
	if err := database.DB.Preload("Pagos").
		Where("id = ? AND evento_id = ?", itemID, eventoID).First(&item).Error; err != nil {
		NotFound(c, "Ítem de decoración no existe")
		return nil, false
	}
	return &item, true
}

// List ítems de decoración de un evento
// @Summary Listar decoración
// @Description Lista los ítems de decoración con sus pagos
// @Tags Decoración
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response{data=[]models.DecoracionItem} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/decoracion [get]
func (h *DecoracionHandler) List(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
	}

	var items []models.DecoracionItem
	if err := database.DB.Preload("Pagos").
		Where("evento_id = ?", evento.ID).Order("created_at ASC").Find(&items).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar la decoración"))
		return
	}

	Success(c, items)
}

// Create crea un ítem de decoración
// @Summary Crear ítem de decoración
// @Description Registra un ítem con costo proveedor y costo cliente; la ganancia es derivada y puede ser negativa
// @Tags Decoración
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body DecoracionRequest true "Datos del ítem"
// @Success 200 {object} Response{data=models.DecoracionItem} "Ítem creado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/decoracion [post]
func (h *DecoracionHandler) Create(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req DecoracionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	r := ledger.ComputeDecorationCost(req.CostoProveedor, req.CostoCliente)
	if !r.Valido {
		BadRequest(c, "Costos de decoración inválidos")
		return
	}

	item := models.DecoracionItem{
		EventoID:       evento.ID,
		Descripcion:    req.Descripcion,
		CostoProveedor: req.CostoProveedor,
		CostoCliente:   req.CostoCliente,
		Ganancia:       r.Ganancia,
		EstadoPago:     string(ledger.PagoPendiente),
		Estado:         string(ledger.EstadoEditado),
	}
	if err := database.DB.Create(&item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el ítem"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionDecoracion, &evento.ID,
		fmt.Sprintf("Creó el ítem de decoración '%s'", item.Descripcion), nil)

	SuccessWithMessage(c, "Ítem creado", item)
}

// Update actualiza un ítem de decoración
// @Summary Actualizar ítem de decoración
// @Description Actualiza costos y descripción; rederiva la ganancia y el estado de pago. El costo cliente nunca puede caer por debajo de los abonos ya registrados.
// @Tags Decoración
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param item_id path int true "ID del ítem"
// @Param request body DecoracionRequest true "Datos del ítem"
// @Success 200 {object} Response{data=models.DecoracionItem} "Ítem actualizado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Ítem no existe"
// @Router /api/v1/eventos/{id}/decoracion/{item_id} [put]
func (h *DecoracionHandler) Update(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}
	item, ok := cargarItemDecoracion(c, evento.ID)
	if !ok {
		return
	}

	if ledger.EstadoLinea(item.Estado).EsTerminal() {
		Conflict(c, "El ítem ya está registrado y no admite cambios")
		return
	}

	var req DecoracionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	r := ledger.ComputeDecorationCost(req.CostoProveedor, req.CostoCliente)
	if !r.Valido {
		BadRequest(c, "Costos de decoración inválidos")
		return
	}

	// El estado de pago se rederiva contra los abonos ya registrados; el
	// nuevo costo cliente nunca cae por debajo de lo ya cobrado
	cuenta := cuentaDelItem(item)
	if err := ledger.ValidarNuevoPrecio(cuenta, req.CostoCliente); err != nil {
		var ve *ledger.ValidationError
		if errors.As(err, &ve) {
			BadRequest(c, ve.Error())
			return
		}
		BadRequest(c, SafeErrorMessage(err, "Costos de decoración inválidos"))
		return
	}

	updates := map[string]interface{}{
		"descripcion":     req.Descripcion,
		"costo_proveedor": req.CostoProveedor,
		"costo_cliente":   req.CostoCliente,
		"ganancia":        r.Ganancia,
		"estado_pago":     string(ledger.EstadoDePago(cuenta.TotalPagado(), req.CostoCliente)),
	}
	cambios := map[string]string{
		"costo_proveedor": fmt.Sprintf("%.2f", req.CostoProveedor),
		"costo_cliente":   fmt.Sprintf("%.2f", req.CostoCliente),
	}

	// La actualización va por el modelo pelado: el ítem cargado trae sus
	// pagos y gorm reescribiría la asociación
	if err := database.DB.Model(&models.DecoracionItem{}).
		Where("id = ?", item.ID).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar el ítem"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionDecoracion, &evento.ID,
		fmt.Sprintf("Actualizó el ítem de decoración '%s'", item.Descripcion), cambios)

	database.DB.Preload("Pagos").First(item, item.ID)
	SuccessWithMessage(c, "Ítem actualizado", item)
}

// Delete elimina un ítem de decoración
// @Summary Eliminar ítem de decoración
// @Description Elimina el ítem; sus pagos quedan en el histórico
// @Tags Decoración
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param item_id path int true "ID del ítem"
// @Success 200 {object} Response "Ítem eliminado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Ítem no existe"
// @Router /api/v1/eventos/{id}/decoracion/{item_id} [delete]
func (h *DecoracionHandler) Delete(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}
	item, ok := cargarItemDecoracion(c, evento.ID)
	if !ok {
		return
	}

	if err := database.DB.Delete(item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el ítem"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionEliminado, ledger.SeccionDecoracion, &evento.ID,
		fmt.Sprintf("Eliminó el ítem de decoración '%s'", item.Descripcion), nil)

	SuccessWithMessage(c, "Ítem eliminado", nil)
}

// RegistrarPago agrega un abono contra un ítem
// @Summary Registrar pago de decoración
// @Description Agrega un abono. La suma de abonos nunca excede el costo cliente del ítem; los abonos no se editan ni se eliminan.
// @Tags Decoración
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param item_id path int true "ID del ítem"
// @Param request body PagoDecoracionRequest true "Datos del abono"
// @Success 200 {object} Response{data=models.DecoracionItem} "Pago registrado"
// @Failure 400 {object} Response "Monto inválido o excede el saldo"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Ítem no existe"
// @Router /api/v1/eventos/{id}/decoracion/{item_id}/pagos [post]
func (h *DecoracionHandler) RegistrarPago(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}
	item, ok := cargarItemDecoracion(c, evento.ID)
	if !ok {
		return
	}

	var req PagoDecoracionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	fecha := time.Now()
	if req.Fecha != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Fecha, time.Local)
		if err != nil {
			BadRequest(c, "Formato de fecha inválido, debe ser: 2025-08-20")
			return
		}
		fecha = parsed
	}

	cuenta := cuentaDelItem(item)
	estadoPago, err := ledger.RegistrarPago(&cuenta, req.Monto, req.Metodo, fecha)
	if err != nil {
		var ve *ledger.ValidationError
		if errors.As(err, &ve) {
			BadRequest(c, ve.Error())
			return
		}
		BadRequest(c, SafeErrorMessage(err, "Pago inválido"))
		return
	}

	pago := models.DecoracionPago{
		DecoracionItemID: item.ID,
		Monto:            req.Monto,
		Metodo:           req.Metodo,
		Fecha:            fecha,
	}
	if err := database.DB.Create(&pago).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al guardar el pago"))
		return
	}
	if err := database.DB.Model(&models.DecoracionItem{}).
		Where("id = ?", item.ID).Update("estado_pago", string(estadoPago)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar el estado de pago"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionDecoracion, &evento.ID,
		fmt.Sprintf("Registró un pago de %.2f contra '%s'", req.Monto, item.Descripcion), nil)

	database.DB.Preload("Pagos").First(item, item.ID)
	SuccessWithMessage(c, "Pago registrado", item)
}

// cuentaDelItem arma la cuenta por cobrar del ítem desde sus pagos persistidos
func cuentaDelItem(item *models.DecoracionItem) ledger.CuentaDecoracion {
	cuenta := ledger.CuentaDecoracion{PrecioTotal: item.CostoCliente}
	for _, p := range item.Pagos {
		cuenta.Pagos = append(cuenta.Pagos, ledger.RegistroPago{
			Monto:  p.Monto,
			Metodo: p.Metodo,
			Fecha:  p.Fecha,
		})
	}
	return cuenta
}
