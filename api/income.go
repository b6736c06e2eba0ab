package api

import (
	"fmt"
	"time"

	"eventos/database"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// IngresoHandler ingresos adicionales de un evento
type IngresoHandler struct{}

// NewIngresoHandler crea el handler de ingresos
func NewIngresoHandler() *IngresoHandler {
	return &IngresoHandler{}
}

// IngresoRequest datos de un ingreso adicional
type IngresoRequest struct {
	Concepto string  `json:"concepto" binding:"required,max=100" example:"Kiosco de bebidas"`
	Monto    float64 `json:"monto" binding:"required,gt=0" example:"350"`
	Fecha    string  `json:"fecha" example:"2025-08-20"`
}

// List ingresos adicionales de un evento
// @Summary Listar ingresos adicionales
// @Description Lista los ingresos adicionales del evento. Suman al ingreso total pero no al precio del contrato.
// @Tags Ingresos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response{data=[]models.Ingreso} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/ingresos [get]
func (h *IngresoHandler) List(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
	}

	var ingresos []models.Ingreso
	if err := database.DB.Where("evento_id = ?", evento.ID).Order("fecha ASC").Find(&ingresos).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar ingresos"))
		return
	}

	Success(c, ingresos)
}

// Create registra un ingreso adicional
// @Summary Registrar ingreso adicional
// @Description Registra un ingreso adicional (kiosco, alquiler de equipos, etc.)
// @Tags Ingresos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body IngresoRequest true "Datos del ingreso"
// @Success 200 {object} Response{data=models.Ingreso} "Ingreso registrado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/ingresos [post]
func (h *IngresoHandler) Create(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req IngresoRequest
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

	ingreso := models.Ingreso{
		EventoID: evento.ID,
		Concepto: req.Concepto,
		Monto:    ledger.Redondear2(req.Monto),
		Fecha:    fecha,
	}
	if err := database.DB.Create(&ingreso).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al registrar el ingreso"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionIngresos, &evento.ID,
		fmt.Sprintf("Registró el ingreso '%s' por %.2f", ingreso.Concepto, ingreso.Monto), nil)

	SuccessWithMessage(c, "Ingreso registrado", ingreso)
}
