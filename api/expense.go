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

// GastoHandler gastos de un evento, incluido el flujo de sugerencias por plato
type GastoHandler struct{}

// NewGastoHandler crea el handler de gastos
func NewGastoHandler() *GastoHandler {
	return &GastoHandler{}
}

// SugerirGastosRequest solicitud de sugerencia de ingredientes
type SugerirGastosRequest struct {
	PlatoID   string `json:"plato_id" binding:"required" example:"pollo-parrilla"`
	Porciones int    `json:"porciones" binding:"required,gt=0" example:"50"`
}

// CreateGastoRequest solicitud de creación de gasto. Para confirmar una línea
// sugerida se envía es_predeterminado=true y estado=sugerido; los gastos
// manuales entran directamente como editado.
type CreateGastoRequest struct {
	Categoria        string  `json:"categoria" binding:"required" example:"ingredientes"`
	Descripcion      string  `json:"descripcion" binding:"max=255" example:"Cuarto de pollo"`
	Cantidad         float64 `json:"cantidad" binding:"required" example:"50"`
	Unidad           string  `json:"unidad" binding:"max=20" example:"unidad"`
	CostoUnitario    float64 `json:"costo_unitario" binding:"required" example:"8.5"`
	EsPredeterminado bool    `json:"es_predeterminado"`
	Estado           string  `json:"estado" binding:"omitempty,oneof=sugerido editado" example:"editado"`
}

// UpdateGastoRequest solicitud de actualización de gasto
type UpdateGastoRequest struct {
	Categoria     string   `json:"categoria"`
	Descripcion   string   `json:"descripcion" binding:"max=255"`
	Cantidad      *float64 `json:"cantidad"`
	Unidad        string   `json:"unidad" binding:"max=20"`
	CostoUnitario *float64 `json:"costo_unitario"`
}

// cargarGasto carga un gasto del evento de la ruta; escribe el error cuando no existe
func cargarGasto(c *gin.Context, eventoID uint) (*models.Gasto, bool) {
	gastoID, err := strconv.ParseUint(c.Param("gasto_id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID de gasto inválido")
		return nil, false
	}
	var gasto models.Gasto
	if err := database.DB.Where("id = ? AND evento_id = ?", gastoID, eventoID).First(&gasto).Error; err != nil {
		NotFound(c, "Gasto no existe")
		return nil, false
	}
	return &gasto, true
}

// List gastos de un evento
// @Summary Listar gastos
// @Description Lista los gastos del evento, con filtro por categoría y estado
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param categoria query string false "Filtro por categoría"
// @Param estado query string false "Filtro por estado (sugerido/editado/registrado)"
// @Success 200 {object} Response{data=[]models.Gasto} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/gastos [get]
func (h *GastoHandler) List(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
	}

	query := database.DB.Where("evento_id = ?", evento.ID)
	if categoria := c.Query("categoria"); categoria != "" {
		query = query.Where("categoria = ?", categoria)
	}
	if estado := c.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}

	var gastos []models.Gasto
	if err := query.Order("created_at ASC").Find(&gastos).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar gastos"))
		return
	}

	Success(c, gastos)
}

// Sugerir genera las líneas de ingredientes del plato del evento
// @Summary Sugerir gastos de ingredientes
// @Description Deriva las líneas de ingredientes de la plantilla del plato, escaladas por porciones. Las líneas NO se persisten: el cliente las revisa y confirma cada una con POST /gastos. Las verduras del flujo de selección aparte quedan excluidas.
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body SugerirGastosRequest true "Plato y porciones"
// @Success 200 {object} Response "Líneas sugeridas"
// @Failure 400 {object} Response "Plato no existe o porciones inválidas"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/gastos/sugerir [post]
func (h *GastoHandler) Sugerir(c *gin.Context) {
	_, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req SugerirGastosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	catalogo := catalog.Platos{}
	lineas, err := ledger.GenerarLineasIngredientes(catalogo, req.PlatoID, req.Porciones, actor.Nombre)
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "No se pudieron generar las sugerencias"))
		return
	}

	Success(c, gin.H{
		"lineas":       lineas,
		"requiere_aji": ledger.PlatoRequiereAji(catalogo, req.PlatoID),
	})
}

// Create crea un gasto
// @Summary Crear gasto
// @Description Registra una línea de gasto. El monto es derivado: siempre cantidad × costo unitario, nunca el valor que llega del cliente.
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body CreateGastoRequest true "Datos del gasto"
// @Success 200 {object} Response{data=models.Gasto} "Gasto creado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/gastos [post]
func (h *GastoHandler) Create(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req CreateGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	if !models.EsCategoriaGasto(req.Categoria) {
		BadRequest(c, "Categoría de gasto inválida")
		return
	}
	if err := ledger.ValidarRegistro(req.Cantidad, req.CostoUnitario); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Operandos inválidos"))
		return
	}

	estado := ledger.EstadoEditado
	if req.Estado != "" {
		estado = ledger.EstadoLinea(req.Estado)
	}

	gasto := models.Gasto{
		EventoID:         evento.ID,
		Categoria:        req.Categoria,
		Descripcion:      req.Descripcion,
		Cantidad:         req.Cantidad,
		Unidad:           req.Unidad,
		CostoUnitario:    req.CostoUnitario,
		Monto:            ledger.Redondear2(req.Cantidad * req.CostoUnitario),
		EsPredeterminado: req.EsPredeterminado,
		Estado:           string(estado),
		RegistradoPor:    actor.Nombre,
		RolRegistro:      string(actor.Rol),
	}
	if err := database.DB.Create(&gasto).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el gasto"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionGastos, &evento.ID,
		fmt.Sprintf("Creó el gasto '%s' por %.2f", gasto.Descripcion, gasto.Monto), nil)

	SuccessWithMessage(c, "Gasto creado", gasto)
}

// Update actualiza un gasto
// @Summary Actualizar gasto
// @Description Edita una línea de gasto no registrada. Un gasto registrado es inmutable. La edición hecha por admin o socio queda marcada como sospechosa en la auditoría.
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param gasto_id path int true "ID del gasto"
// @Param request body UpdateGastoRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.Gasto} "Gasto actualizado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Gasto no existe"
// @Failure 409 {object} Response "Gasto registrado, inmutable"
// @Router /api/v1/eventos/{id}/gastos/{gasto_id} [put]
func (h *GastoHandler) Update(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}
	gasto, ok := cargarGasto(c, evento.ID)
	if !ok {
		return
	}

	if !ledger.PuedeTransicionar(ledger.EstadoLinea(gasto.Estado), ledger.EstadoEditado) {
		Conflict(c, "El gasto ya está registrado y no admite cambios")
		return
	}

	var req UpdateGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	cantidad := gasto.Cantidad
	costoUnitario := gasto.CostoUnitario
	if req.Cantidad != nil {
		cantidad = *req.Cantidad
	}
	if req.CostoUnitario != nil {
		costoUnitario = *req.CostoUnitario
	}
	if err := ledger.ValidarRegistro(cantidad, costoUnitario); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Operandos inválidos"))
		return
	}

	updates := map[string]interface{}{
		"cantidad":       cantidad,
		"costo_unitario": costoUnitario,
		"monto":          ledger.Redondear2(cantidad * costoUnitario),
		"estado":         string(ledger.EstadoEditado),
	}
	cambios := map[string]string{
		"cantidad":       fmt.Sprintf("%.2f", cantidad),
		"costo_unitario": fmt.Sprintf("%.2f", costoUnitario),
	}
	if req.Categoria != "" {
		if !models.EsCategoriaGasto(req.Categoria) {
			BadRequest(c, "Categoría de gasto inválida")
			return
		}
		updates["categoria"] = req.Categoria
		cambios["categoria"] = req.Categoria
	}
	if req.Descripcion != "" {
		updates["descripcion"] = req.Descripcion
		cambios["descripcion"] = req.Descripcion
	}
	if req.Unidad != "" {
		updates["unidad"] = req.Unidad
	}

	if err := database.DB.Model(gasto).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar el gasto"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionGastos, &evento.ID,
		fmt.Sprintf("Actualizó el gasto '%s'", gasto.Descripcion), cambios)

	database.DB.First(gasto, gasto.ID)
	SuccessWithMessage(c, "Gasto actualizado", gasto)
}

// Registrar confirma un gasto como definitivo
// @Summary Registrar gasto
// @Description Transición explícita a registrado. Desde ahí la línea es inmutable: no se edita ni se elimina.
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param gasto_id path int true "ID del gasto"
// @Success 200 {object} Response{data=models.Gasto} "Gasto registrado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Gasto no existe"
// @Failure 409 {object} Response "Gasto ya registrado"
// @Router /api/v1/eventos/{id}/gastos/{gasto_id}/registrar [post]
func (h *GastoHandler) Registrar(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}
	gasto, ok := cargarGasto(c, evento.ID)
	if !ok {
		return
	}

	if !ledger.PuedeTransicionar(ledger.EstadoLinea(gasto.Estado), ledger.EstadoRegistrado) {
		Conflict(c, "El gasto ya está registrado")
		return
	}
	if err := ledger.ValidarRegistro(gasto.Cantidad, gasto.CostoUnitario); err != nil {
		BadRequest(c, SafeErrorMessage(err, "La línea no está completa para registrar"))
		return
	}

	updates := map[string]interface{}{
		"estado":         string(ledger.EstadoRegistrado),
		"registrado_por": actor.Nombre,
		"rol_registro":   string(actor.Rol),
	}
	if err := database.DB.Model(gasto).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al registrar el gasto"))
		return
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionGastos, &evento.ID,
		fmt.Sprintf("Registró el gasto '%s' por %.2f", gasto.Descripcion, gasto.Monto),
		map[string]string{"estado": string(ledger.EstadoRegistrado)})

	database.DB.First(gasto, gasto.ID)
	SuccessWithMessage(c, "Gasto registrado", gasto)
}

// Delete elimina un gasto
// @Summary Eliminar gasto
// @Description Elimina una línea de gasto no registrada
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param gasto_id path int true "ID del gasto"
// @Success 200 {object} Response "Gasto eliminado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Gasto no existe"
// @Failure 409 {object} Response "Gasto registrado, inmutable"
// @Router /api/v1/eventos/{id}/gastos/{gasto_id} [delete]
func (h *GastoHandler) Delete(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}
	gasto, ok := cargarGasto(c, evento.ID)
	if !ok {
		return
	}

	if ledger.EstadoLinea(gasto.Estado).EsTerminal() {
		Conflict(c, "El gasto ya está registrado y no se puede eliminar")
		return
	}

	if err := database.DB.Delete(gasto).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el gasto"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionEliminado, ledger.SeccionGastos, &evento.ID,
		fmt.Sprintf("Eliminó el gasto '%s'", gasto.Descripcion), nil)

	SuccessWithMessage(c, "Gasto eliminado", nil)
}
