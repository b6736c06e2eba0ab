package api

import (
	"errors"
	"fmt"
	"time"

	"eventos/database"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// GarantiaHandler devolución de garantía
type GarantiaHandler struct{}

// NewGarantiaHandler crea el handler de garantía
func NewGarantiaHandler() *GarantiaHandler {
	return &GarantiaHandler{}
}

// DevolucionGarantiaRequest solicitud de devolución de garantía
type DevolucionGarantiaRequest struct {
	MontoDescontado float64 `json:"monto_descontado" binding:"gte=0" example:"150"`
	Motivo          string  `json:"motivo" binding:"max=255" example:"Rotura de 6 copas"`
	Fecha           string  `json:"fecha" example:"2025-08-22"`
}

// Devolver registra la devolución de la garantía
// @Summary Devolver garantía
// @Description Devuelve la garantía del evento descontando daños. El evento tiene un solo slot de devolución: un segundo intento falla con 409 y el registro existente no se altera.
// @Tags Garantía
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body DevolucionGarantiaRequest true "Descuento y motivo"
// @Success 200 {object} Response{data=models.GarantiaDevolucion} "Devolución registrada"
// @Failure 400 {object} Response "Descuento inválido"
// @Failure 401 {object} Response "No autorizado"
// @Failure 409 {object} Response "Garantía ya devuelta"
// @Router /api/v1/eventos/{id}/garantia/devolucion [post]
func (h *GarantiaHandler) Devolver(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req DevolucionGarantiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	fecha := time.Now()
	if req.Fecha != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Fecha, time.Local)
		if err != nil {
			BadRequest(c, "Formato de fecha inválido, debe ser: 2025-08-22")
			return
		}
		fecha = parsed
	}

	// Chequeo de presencia: existir el registro basta para rechazar
	var existente *ledger.DevolucionGarantia
	var registroExistente models.GarantiaDevolucion
	if err := database.DB.Where("evento_id = ?", evento.ID).First(&registroExistente).Error; err == nil {
		existente = &ledger.DevolucionGarantia{
			MontoGarantia:   registroExistente.MontoGarantia,
			MontoDescontado: registroExistente.MontoDescontado,
			MontoDevuelto:   registroExistente.MontoDevuelto,
			Motivo:          registroExistente.Motivo,
			Fecha:           registroExistente.Fecha,
		}
	}

	devolucion, err := ledger.DevolverGarantia(evento.Garantia, existente, req.MontoDescontado, req.Motivo, fecha)
	if err != nil {
		if errors.Is(err, ledger.ErrGarantiaYaDevuelta) {
			Conflict(c, "La garantía de este evento ya fue devuelta")
			return
		}
		BadRequest(c, SafeErrorMessage(err, "Descuento inválido"))
		return
	}

	registro := models.GarantiaDevolucion{
		EventoID:        evento.ID,
		MontoGarantia:   devolucion.MontoGarantia,
		MontoDescontado: devolucion.MontoDescontado,
		MontoDevuelto:   devolucion.MontoDevuelto,
		Motivo:          devolucion.Motivo,
		Fecha:           devolucion.Fecha,
	}
	if err := database.DB.Create(&registro).Error; err != nil {
		// El índice único sobre evento_id respalda el chequeo de presencia
		// ante dos solicitudes simultáneas
		Conflict(c, SafeErrorMessage(err, "La garantía de este evento ya fue devuelta"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionGarantia, &evento.ID,
		fmt.Sprintf("Devolvió la garantía: %.2f (descuento %.2f)", registro.MontoDevuelto, registro.MontoDescontado), nil)

	SuccessWithMessage(c, "Devolución registrada", registro)
}

// Get consulta la devolución registrada
// @Summary Consultar devolución de garantía
// @Description Devuelve el registro de devolución del evento, si existe
// @Tags Garantía
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response{data=models.GarantiaDevolucion} "Devolución"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Sin devolución registrada"
// @Router /api/v1/eventos/{id}/garantia/devolucion [get]
func (h *GarantiaHandler) Get(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
	}

	var registro models.GarantiaDevolucion
	if err := database.DB.Where("evento_id = ?", evento.ID).First(&registro).Error; err != nil {
		NotFound(c, "Este evento no tiene devolución de garantía registrada")
		return
	}

	Success(c, registro)
}
