package api

import (
	"encoding/json"
	"log"
	"strconv"

	"eventos/config"
	"eventos/database"
	"eventos/ledger"
	"eventos/models"
	"eventos/service"

	"github.com/gin-gonic/gin"
)

// AuditoriaHandler consulta de la bitácora
type AuditoriaHandler struct{}

// NewAuditoriaHandler crea el handler de auditoría
func NewAuditoriaHandler() *AuditoriaHandler {
	return &AuditoriaHandler{}
}

// guardarAuditoria construye y persiste una entrada de bitácora. Si la edición
// queda marcada como sospechosa dispara la alerta por correo en segundo plano;
// un fallo del correo no afecta la operación que la originó.
func guardarAuditoria(actor ledger.Actor, accion ledger.AccionAuditoria, seccion ledger.SeccionAuditoria, eventoID *uint, descripcion string, cambios map[string]string) {
	entrada := ledger.NewAuditBuilder().Construir(actor, accion, seccion, descripcion, cambios)

	var cambiosJSON string
	if len(entrada.Cambios) > 0 {
		if b, err := json.Marshal(entrada.Cambios); err == nil {
			cambiosJSON = string(b)
		}
	}

	registro := models.Auditoria{
		ID:          entrada.ID,
		EventoID:    eventoID,
		Accion:      string(entrada.Accion),
		Seccion:     string(entrada.Seccion),
		ActorID:     entrada.ActorID,
		ActorNombre: entrada.ActorNombre,
		RolActor:    string(entrada.RolActor),
		Descripcion: entrada.Descripcion,
		Cambios:     cambiosJSON,
		Sospechoso:  entrada.Sospechoso,
		Fecha:       entrada.Fecha,
	}
	if err := database.DB.Create(&registro).Error; err != nil {
		log.Printf("error al guardar la entrada de auditoría: %v", err)
		return
	}

	if entrada.Sospechoso && config.GlobalConfig != nil && config.GlobalConfig.Email.Enabled {
		alerta := service.AlertaEdicionSospechosa{
			ActorNombre: entrada.ActorNombre,
			Rol:         string(entrada.RolActor),
			Descripcion: entrada.Descripcion,
			Fecha:       entrada.Fecha,
		}
		if eventoID != nil {
			alerta.EventoID = *eventoID
		}
		go func() {
			if err := service.NewEmailService(&config.GlobalConfig.Email).SendAlertaEdicionSospechosa(alerta); err != nil {
				log.Printf("error al enviar la alerta de edición sospechosa: %v", err)
			}
		}()
	}
}

// AuditoriaListRequest filtros de consulta de la bitácora
type AuditoriaListRequest struct {
	Page       int    `form:"page" example:"1"`
	PageSize   int    `form:"page_size" example:"20"`
	Seccion    string `form:"seccion" example:"gastos"`
	Sospechoso *bool  `form:"sospechoso"`
}

// List consulta global de la bitácora
// @Summary Listar entradas de auditoría
// @Description Lista la bitácora completa con filtros por sección y marca de sospecha
// @Tags Auditoría
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(20)
// @Param seccion query string false "Filtro por sección"
// @Param sospechoso query bool false "Solo entradas sospechosas"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Auditoria}} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/auditoria [get]
func (h *AuditoriaHandler) List(c *gin.Context) {
	var req AuditoriaListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Auditoria{})
	if req.Seccion != "" {
		query = query.Where("seccion = ?", req.Seccion)
	}
	if req.Sospechoso != nil {
		query = query.Where("sospechoso = ?", *req.Sospechoso)
	}

	var total int64
	query.Count(&total)

	var entradas []models.Auditoria
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("fecha DESC").Offset(offset).Limit(req.PageSize).Find(&entradas).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar la auditoría"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     entradas,
	})
}

// ListByEvento bitácora de un evento
// @Summary Listar auditoría de un evento
// @Description Lista las entradas de bitácora de un evento en orden cronológico inverso
// @Tags Auditoría
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response{data=[]models.Auditoria} "Listado"
// @Failure 400 {object} Response "ID inválido"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/auditoria [get]
func (h *AuditoriaHandler) ListByEvento(c *gin.Context) {
	eventoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var entradas []models.Auditoria
	if err := database.DB.Where("evento_id = ?", eventoID).
		Order("fecha DESC").Find(&entradas).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar la auditoría"))
		return
	}

	Success(c, entradas)
}
