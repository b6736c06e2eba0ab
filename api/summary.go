package api

import (
	"github.com/gin-gonic/gin"
)

// ResumenHandler resumen financiero de un evento
type ResumenHandler struct{}

// NewResumenHandler crea el handler de resumen
func NewResumenHandler() *ResumenHandler {
	return &ResumenHandler{}
}

// Get resumen financiero del evento
// @Summary Resumen financiero
// @Description Recalcula el libro financiero completo desde las colecciones actuales y lo devuelve. Los montos derivados nunca se sirven de una instantánea vieja: recalcular es parte de la consulta.
// @Tags Resumen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response "Resumen financiero"
// @Failure 401 {object} Response "No autorizado"
// @Failure 403 {object} Response "Sin acceso al evento"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/resumen [get]
func (h *ResumenHandler) Get(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
	}

	estado, err := recalcularYGuardar(evento)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	Success(c, gin.H{
		"evento_id": evento.ID,
		"nombre":    evento.Nombre,
		"fecha":     evento.Fecha,
		"resumen":   estado,
	})
}
