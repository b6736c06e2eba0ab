package api

import (
	"fmt"
	"strconv"
	"time"

	"eventos/database"
	"eventos/ledger"
	"eventos/middleware"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// EventoHandler eventos del local
type EventoHandler struct{}

// NewEventoHandler crea el handler de eventos
func NewEventoHandler() *EventoHandler {
	return &EventoHandler{}
}

// actorActual resuelve el actor autenticado; escribe la respuesta de error
// cuando la sesión no es válida
func actorActual(c *gin.Context) (ledger.Actor, bool) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		Unauthorized(c, "Sesión inválida")
		return ledger.Actor{}, false
	}
	return actor, true
}

// eventoVisible carga el evento de la ruta y aplica la visibilidad por
// asignación: los roles no elevados solo ven sus eventos asignados. Escribe la
// respuesta de error y devuelve ok=false cuando no corresponde continuar.
func eventoVisible(c *gin.Context) (*models.Evento, ledger.Actor, bool) {
	actor, ok := actorActual(c)
	if !ok {
		return nil, ledger.Actor{}, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return nil, actor, false
	}

	var evento models.Evento
	if err := database.DB.First(&evento, id).Error; err != nil {
		NotFound(c, "Evento no existe")
		return nil, actor, false
	}

	if !ledger.PuedeVerEvento(actor, evento.ID) {
		Forbidden(c, "No tiene acceso a este evento")
		return nil, actor, false
	}

	return &evento, actor, true
}

// CreateEventoRequest solicitud de creación de evento
type CreateEventoRequest struct {
	Nombre         string  `json:"nombre" binding:"required,max=100" example:"Matrimonio Flores"`
	Tipo           string  `json:"tipo" binding:"max=50" example:"matrimonio"`
	Fecha          string  `json:"fecha" binding:"required" example:"2025-08-20"`
	ClienteID      *uint   `json:"cliente_id"`
	PlatoID        string  `json:"plato_id" example:"pollo-parrilla"`
	Platos         float64 `json:"platos" binding:"omitempty,gt=0" example:"150"`
	PrecioPorPlato float64 `json:"precio_por_plato" binding:"omitempty,gt=0" example:"35"`
	Adelanto       float64 `json:"adelanto" binding:"omitempty,gte=0" example:"1000"`
	Garantia       float64 `json:"garantia" binding:"omitempty,gte=0" example:"500"`
	CajaChica      float64 `json:"caja_chica" binding:"omitempty,gte=0" example:"2000"`
}

// UpdateEventoRequest solicitud de actualización de evento
type UpdateEventoRequest struct {
	Nombre         string   `json:"nombre" binding:"omitempty,max=100"`
	Tipo           string   `json:"tipo" binding:"omitempty,max=50"`
	Fecha          string   `json:"fecha"`
	ClienteID      *uint    `json:"cliente_id"`
	PlatoID        *string  `json:"plato_id"`
	Platos         *float64 `json:"platos" binding:"omitempty,gte=0"`
	PrecioPorPlato *float64 `json:"precio_por_plato" binding:"omitempty,gte=0"`
	Adelanto       *float64 `json:"adelanto" binding:"omitempty,gte=0"`
	Garantia       *float64 `json:"garantia" binding:"omitempty,gte=0"`
	CajaChica      *float64 `json:"caja_chica" binding:"omitempty,gte=0"`
}

// EventoListRequest filtros del listado de eventos
type EventoListRequest struct {
	Page      int    `form:"page" example:"1"`
	PageSize  int    `form:"page_size" example:"10"`
	Tipo      string `form:"tipo" example:"matrimonio"`
	Desde     string `form:"desde" example:"2025-01-01"`
	Hasta     string `form:"hasta" example:"2025-12-31"`
	ClienteID uint   `form:"cliente_id"`
}

// List listado de eventos
// @Summary Listar eventos
// @Description Lista eventos con paginación y filtros. Los roles no elevados solo ven los eventos que tienen asignados.
// @Tags Eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Param tipo query string false "Filtro por tipo"
// @Param desde query string false "Fecha desde (2025-01-01)"
// @Param hasta query string false "Fecha hasta (2025-12-31)"
// @Param cliente_id query int false "Filtro por cliente"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Evento}} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos [get]
func (h *EventoHandler) List(c *gin.Context) {
	actor, ok := actorActual(c)
	if !ok {
		return
	}

	var req EventoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Evento{})

	// Visibilidad: los roles no elevados solo ven eventos asignados
	if actor.Rol != ledger.RolAdmin && actor.Rol != ledger.RolSocio {
		if len(actor.EventosAsignados) == 0 {
			Success(c, PageResponse{Total: 0, Page: req.Page, PageSize: req.PageSize, List: []models.Evento{}})
			return
		}
		query = query.Where("id IN ?", actor.EventosAsignados)
	}

	if req.Tipo != "" {
		query = query.Where("tipo = ?", req.Tipo)
	}
	if req.ClienteID != 0 {
		query = query.Where("cliente_id = ?", req.ClienteID)
	}
	if req.Desde != "" {
		if desde, err := time.ParseInLocation("2006-01-02", req.Desde, time.Local); err == nil {
			query = query.Where("fecha >= ?", desde)
		}
	}
	if req.Hasta != "" {
		if hasta, err := time.ParseInLocation("2006-01-02", req.Hasta, time.Local); err == nil {
			// incluir el día final completo
			query = query.Where("fecha <= ?", hasta.Add(24*time.Hour-time.Second))
		}
	}

	var total int64
	query.Count(&total)

	var eventos []models.Evento
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("fecha DESC").Offset(offset).Limit(req.PageSize).Find(&eventos).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar eventos"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     eventos,
	})
}

// Create crea un evento
// @Summary Crear evento
// @Description Crea un evento con sus términos de contrato. El libro financiero nace en ceros y se recalcula con cada mutación.
// @Tags Eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventoRequest true "Datos del evento"
// @Success 200 {object} Response{data=models.Evento} "Evento creado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos [post]
func (h *EventoHandler) Create(c *gin.Context) {
	actor, ok := actorActual(c)
	if !ok {
		return
	}

	var req CreateEventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	fecha, err := time.ParseInLocation("2006-01-02", req.Fecha, time.Local)
	if err != nil {
		BadRequest(c, "Formato de fecha inválido, debe ser: 2025-08-20")
		return
	}

	if req.ClienteID != nil {
		var cliente models.Cliente
		if err := database.DB.First(&cliente, *req.ClienteID).Error; err != nil {
			BadRequest(c, "Cliente no existe")
			return
		}
	}

	evento := models.Evento{
		Nombre:         req.Nombre,
		Tipo:           req.Tipo,
		Fecha:          fecha,
		ClienteID:      req.ClienteID,
		PlatoID:        req.PlatoID,
		Platos:         req.Platos,
		PrecioPorPlato: req.PrecioPorPlato,
		Adelanto:       req.Adelanto,
		Garantia:       req.Garantia,
		CajaChica:      req.CajaChica,
	}

	if err := database.DB.Create(&evento).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el evento"))
		return
	}

	if _, err := recalcularYGuardar(&evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionEventos, &evento.ID,
		fmt.Sprintf("Creó el evento '%s'", evento.Nombre), nil)

	database.DB.First(&evento, evento.ID)
	SuccessWithMessage(c, "Evento creado", evento)
}

// Get detalle de un evento
// @Summary Obtener evento
// @Description Devuelve el evento con sus colecciones completas
// @Tags Eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response{data=models.Evento} "Evento"
// @Failure 401 {object} Response "No autorizado"
// @Failure 403 {object} Response "Sin acceso al evento"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id} [get]
func (h *EventoHandler) Get(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
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
		return
	}

	Success(c, completo)
}

// Update actualiza un evento
// @Summary Actualizar evento
// @Description Actualiza datos y términos de contrato; recalcula el libro financiero
// @Tags Eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body UpdateEventoRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.Evento} "Evento actualizado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id} [put]
func (h *EventoHandler) Update(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req UpdateEventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	updates := make(map[string]interface{})
	cambios := make(map[string]string)
	if req.Nombre != "" {
		updates["nombre"] = req.Nombre
		cambios["nombre"] = req.Nombre
	}
	if req.Tipo != "" {
		updates["tipo"] = req.Tipo
		cambios["tipo"] = req.Tipo
	}
	if req.Fecha != "" {
		fecha, err := time.ParseInLocation("2006-01-02", req.Fecha, time.Local)
		if err != nil {
			BadRequest(c, "Formato de fecha inválido, debe ser: 2025-08-20")
			return
		}
		updates["fecha"] = fecha
		cambios["fecha"] = req.Fecha
	}
	if req.ClienteID != nil {
		var cliente models.Cliente
		if err := database.DB.First(&cliente, *req.ClienteID).Error; err != nil {
			BadRequest(c, "Cliente no existe")
			return
		}
		updates["cliente_id"] = *req.ClienteID
		cambios["cliente_id"] = fmt.Sprintf("%d", *req.ClienteID)
	}
	if req.PlatoID != nil {
		updates["plato_id"] = *req.PlatoID
		cambios["plato_id"] = *req.PlatoID
	}
	if req.Platos != nil {
		updates["platos"] = *req.Platos
		cambios["platos"] = fmt.Sprintf("%.2f", *req.Platos)
	}
	if req.PrecioPorPlato != nil {
		updates["precio_por_plato"] = *req.PrecioPorPlato
		cambios["precio_por_plato"] = fmt.Sprintf("%.2f", *req.PrecioPorPlato)
	}
	if req.Adelanto != nil {
		updates["adelanto"] = *req.Adelanto
		cambios["adelanto"] = fmt.Sprintf("%.2f", *req.Adelanto)
	}
	if req.Garantia != nil {
		updates["garantia"] = *req.Garantia
		cambios["garantia"] = fmt.Sprintf("%.2f", *req.Garantia)
	}
	if req.CajaChica != nil {
		updates["caja_chica"] = *req.CajaChica
		cambios["caja_chica"] = fmt.Sprintf("%.2f", *req.CajaChica)
	}

	if len(updates) == 0 {
		BadRequest(c, "Nada que actualizar")
		return
	}

	if err := database.DB.Model(evento).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar el evento"))
		return
	}

	database.DB.First(evento, evento.ID)
	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionEventos, &evento.ID,
		fmt.Sprintf("Actualizó el evento '%s'", evento.Nombre), cambios)

	database.DB.First(evento, evento.ID)
	SuccessWithMessage(c, "Evento actualizado", evento)
}

// Delete elimina un evento
// @Summary Eliminar evento
// @Description Elimina el evento (borrado lógico)
// @Tags Eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response "Evento eliminado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id} [delete]
func (h *EventoHandler) Delete(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(evento).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionEliminado, ledger.SeccionEventos, &evento.ID,
		fmt.Sprintf("Eliminó el evento '%s'", evento.Nombre), nil)

	SuccessWithMessage(c, "Evento eliminado", nil)
}
