package api

import (
	"fmt"
	"strconv"

	"eventos/catalog"
	"eventos/database"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// BebidaHandler bebidas de un evento
type BebidaHandler struct{}

// NewBebidaHandler crea el handler de bebidas
func NewBebidaHandler() *BebidaHandler {
	return &BebidaHandler{}
}

// BebidaRequest datos de una línea de bebida. Qué campos de costo aplican
// depende del tipo y la modalidad; el monto y la ganancia son derivados.
type BebidaRequest struct {
	Tipo             string  `json:"tipo" binding:"required" example:"cerveza"`
	Modalidad        string  `json:"modalidad" binding:"omitempty,oneof=cover compra_local" example:"compra_local"`
	Cantidad         float64 `json:"cantidad" binding:"required,gt=0" example:"10"`
	PrecioUnitario   float64 `json:"precio_unitario" binding:"omitempty,gte=0" example:"0"`
	CostoCaja        float64 `json:"costo_caja" binding:"omitempty,gte=0" example:"0"`
	CostoCajaLocal   float64 `json:"costo_caja_local" binding:"omitempty,gte=0" example:"45"`
	CostoCajaCliente float64 `json:"costo_caja_cliente" binding:"omitempty,gte=0" example:"60"`
}

// resolverBebida valida tipo y modalidad y deriva monto y ganancia
func resolverBebida(req BebidaRequest) (models.Bebida, error) {
	if !catalog.EsTipoBebida(req.Tipo) {
		return models.Bebida{}, fmt.Errorf("tipo de bebida desconocido: %s", req.Tipo)
	}
	tipo := ledger.TipoBebida(req.Tipo)
	modalidad := ledger.ModalidadBebida(req.Modalidad)
	if !catalog.ModalidadValida(tipo, modalidad) {
		return models.Bebida{}, fmt.Errorf("modalidad inválida para %s", req.Tipo)
	}

	campos := ledger.CamposBebida{
		Cantidad:         req.Cantidad,
		PrecioUnitario:   req.PrecioUnitario,
		CostoCaja:        req.CostoCaja,
		CostoCajaLocal:   req.CostoCajaLocal,
		CostoCajaCliente: req.CostoCajaCliente,
	}
	r := ledger.ComputeBeverageCost(tipo, modalidad, campos)
	if !r.Valido {
		return models.Bebida{}, fmt.Errorf("operandos de costo incompletos para %s", req.Tipo)
	}

	return models.Bebida{
		Tipo:             req.Tipo,
		Modalidad:        req.Modalidad,
		Cantidad:         req.Cantidad,
		PrecioUnitario:   req.PrecioUnitario,
		CostoCaja:        req.CostoCaja,
		CostoCajaLocal:   req.CostoCajaLocal,
		CostoCajaCliente: req.CostoCajaCliente,
		Monto:            r.Monto,
		Ganancia:         r.Ganancia,
		Estado:           string(ledger.EstadoEditado),
	}, nil
}

// List bebidas de un evento
// @Summary Listar bebidas
// @Description Lista las líneas de bebida del evento
// @Tags Bebidas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response{data=[]models.Bebida} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/bebidas [get]
func (h *BebidaHandler) List(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
	}

	var bebidas []models.Bebida
	if err := database.DB.Where("evento_id = ?", evento.ID).Order("created_at ASC").Find(&bebidas).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar bebidas"))
		return
	}

	Success(c, bebidas)
}

// Create crea una línea de bebida
// @Summary Crear bebida
// @Description Registra una línea de bebida. El gasto usa siempre el costo proveedor/local; el costo cliente solo deriva la ganancia. En compra local la bebida queda fuera del precio al cliente.
// @Tags Bebidas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body BebidaRequest true "Datos de la bebida"
// @Success 200 {object} Response{data=models.Bebida} "Bebida creada"
// @Failure 400 {object} Response "Tipo o modalidad inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/bebidas [post]
func (h *BebidaHandler) Create(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req BebidaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	bebida, err := resolverBebida(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	bebida.EventoID = evento.ID

	if err := database.DB.Create(&bebida).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear la bebida"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionBebidas, &evento.ID,
		fmt.Sprintf("Creó la bebida '%s' por %.2f", bebida.Tipo, bebida.Monto), nil)

	SuccessWithMessage(c, "Bebida creada", bebida)
}

// Update actualiza una línea de bebida
// @Summary Actualizar bebida
// @Description Actualiza la línea y rederiva monto y ganancia
// @Tags Bebidas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param bebida_id path int true "ID de la bebida"
// @Param request body BebidaRequest true "Datos de la bebida"
// @Success 200 {object} Response{data=models.Bebida} "Bebida actualizada"
// @Failure 400 {object} Response "Tipo o modalidad inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Bebida no existe"
// @Failure 409 {object} Response "Registro inmutable"
// @Router /api/v1/eventos/{id}/bebidas/{bebida_id} [put]
func (h *BebidaHandler) Update(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	bebidaID, err := strconv.ParseUint(c.Param("bebida_id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID de bebida inválido")
		return
	}
	var existente models.Bebida
	if err := database.DB.Where("id = ? AND evento_id = ?", bebidaID, evento.ID).First(&existente).Error; err != nil {
		NotFound(c, "Bebida no existe")
		return
	}

	if ledger.EstadoLinea(existente.Estado).EsTerminal() {
		Conflict(c, "La bebida ya está registrada y no admite cambios")
		return
	}

	var req BebidaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	bebida, err := resolverBebida(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{
		"tipo":               bebida.Tipo,
		"modalidad":          bebida.Modalidad,
		"cantidad":           bebida.Cantidad,
		"precio_unitario":    bebida.PrecioUnitario,
		"costo_caja":         bebida.CostoCaja,
		"costo_caja_local":   bebida.CostoCajaLocal,
		"costo_caja_cliente": bebida.CostoCajaCliente,
		"monto":              bebida.Monto,
		"ganancia":           bebida.Ganancia,
		"estado":             string(ledger.EstadoEditado),
	}
	if err := database.DB.Model(&existente).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar la bebida"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionBebidas, &evento.ID,
		fmt.Sprintf("Actualizó la bebida '%s'", bebida.Tipo),
		map[string]string{"monto": fmt.Sprintf("%.2f", bebida.Monto)})

	database.DB.First(&existente, existente.ID)
	SuccessWithMessage(c, "Bebida actualizada", existente)
}

// Delete elimina una línea de bebida
// @Summary Eliminar bebida
// @Description Elimina la línea de bebida
// @Tags Bebidas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param bebida_id path int true "ID de la bebida"
// @Success 200 {object} Response "Bebida eliminada"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Bebida no existe"
// @Router /api/v1/eventos/{id}/bebidas/{bebida_id} [delete]
func (h *BebidaHandler) Delete(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	bebidaID, err := strconv.ParseUint(c.Param("bebida_id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID de bebida inválido")
		return
	}
	var bebida models.Bebida
	if err := database.DB.Where("id = ? AND evento_id = ?", bebidaID, evento.ID).First(&bebida).Error; err != nil {
		NotFound(c, "Bebida no existe")
		return
	}

	if err := database.DB.Delete(&bebida).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar la bebida"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionEliminado, ledger.SeccionBebidas, &evento.ID,
		fmt.Sprintf("Eliminó la bebida '%s'", bebida.Tipo), nil)

	SuccessWithMessage(c, "Bebida eliminada", nil)
}
