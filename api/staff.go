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

// PersonalHandler personal asignado a eventos y horas extra
type PersonalHandler struct{}

// NewPersonalHandler crea el handler de personal
func NewPersonalHandler() *PersonalHandler {
	return &PersonalHandler{}
}

// PersonalRequest asignación de un miembro del personal. La tarifa y las
// horas/platos se toman del catálogo del rol cuando no se envían.
type PersonalRequest struct {
	Nombre        string   `json:"nombre" binding:"required,max=100" example:"Carlos Huamán"`
	RolID         string   `json:"rol_id" binding:"required" example:"mesero"`
	HorasOPlatos  *float64 `json:"horas_o_platos" binding:"omitempty,gt=0" example:"8"`
	Tarifa        *float64 `json:"tarifa" binding:"omitempty,gt=0" example:"25"`
	AccesoSistema bool     `json:"acceso_sistema"`
}

// HoraExtraRequest horas extra de un trabajador, identificado por nombre
type HoraExtraRequest struct {
	NombrePersonal string  `json:"nombre_personal" binding:"required,max=100" example:"Carlos Huamán"`
	Horas          float64 `json:"horas" binding:"required,gt=0" example:"2"`
	Tarifa         float64 `json:"tarifa" binding:"required,gt=0" example:"25"`
}

// resolverPersonal aplica los valores por defecto del catálogo del rol y
// deriva el total. Falla cuando el rol no existe o el acceso al sistema se
// pide para un rol fuera de la lista blanca.
func resolverPersonal(req PersonalRequest) (models.Personal, error) {
	rol, ok := catalog.BuscarRolPersonal(req.RolID)
	if !ok {
		return models.Personal{}, fmt.Errorf("rol de personal desconocido: %s", req.RolID)
	}
	if req.AccesoSistema && !rol.PermiteAccesoSistema {
		return models.Personal{}, fmt.Errorf("el rol %s no admite acceso al sistema", rol.Nombre)
	}

	tarifa := rol.TarifaPorDefecto
	if req.Tarifa != nil {
		tarifa = *req.Tarifa
	}
	horasOPlatos := rol.HorasPorDefecto
	if req.HorasOPlatos != nil {
		horasOPlatos = *req.HorasOPlatos
	}

	r := ledger.ComputeStaffCost(rol.TipoTarifa, horasOPlatos, tarifa)
	if !r.Valido {
		return models.Personal{}, fmt.Errorf("horas/platos y tarifa deben ser mayores que cero")
	}

	return models.Personal{
		Nombre:        req.Nombre,
		RolID:         rol.ID,
		TipoTarifa:    string(rol.TipoTarifa),
		HorasOPlatos:  horasOPlatos,
		Tarifa:        tarifa,
		Total:         r.Monto,
		AccesoSistema: req.AccesoSistema,
		Estado:        string(ledger.EstadoEditado),
	}, nil
}

// List personal de un evento
// @Summary Listar personal
// @Description Lista el personal asignado al evento y sus horas extra
// @Tags Personal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Success 200 {object} Response "Personal y horas extra"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Evento no existe"
// @Router /api/v1/eventos/{id}/personal [get]
func (h *PersonalHandler) List(c *gin.Context) {
	evento, _, ok := eventoVisible(c)
	if !ok {
		return
	}

	var personal []models.Personal
	if err := database.DB.Where("evento_id = ?", evento.ID).Order("created_at ASC").Find(&personal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar el personal"))
		return
	}

	var horasExtra []models.HoraExtra
	if err := database.DB.Where("evento_id = ?", evento.ID).Order("created_at ASC").Find(&horasExtra).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar horas extra"))
		return
	}

	Success(c, gin.H{
		"personal":    personal,
		"horas_extra": horasExtra,
	})
}

// Create asigna un miembro del personal
// @Summary Asignar personal
// @Description Asigna un miembro al evento. El tipo de tarifa se deriva del rol del catálogo; tarifa y horas por defecto salen del catálogo cuando no se envían. El acceso al sistema solo se admite para roles de la lista blanca.
// @Tags Personal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body PersonalRequest true "Datos del miembro"
// @Success 200 {object} Response{data=models.Personal} "Personal asignado"
// @Failure 400 {object} Response "Rol desconocido o datos inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/personal [post]
func (h *PersonalHandler) Create(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req PersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	miembro, err := resolverPersonal(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	miembro.EventoID = evento.ID

	if err := database.DB.Create(&miembro).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al asignar el personal"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionPersonal, &evento.ID,
		fmt.Sprintf("Asignó a '%s' como %s", miembro.Nombre, miembro.RolID), nil)

	SuccessWithMessage(c, "Personal asignado", miembro)
}

// Update actualiza un miembro del personal
// @Summary Actualizar personal
// @Description Actualiza la asignación. Al cambiar de rol, tipo de tarifa, tarifa y horas/platos se rederivan del catálogo; el total se recalcula siempre.
// @Tags Personal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param miembro_id path int true "ID del miembro"
// @Param request body PersonalRequest true "Datos del miembro"
// @Success 200 {object} Response{data=models.Personal} "Personal actualizado"
// @Failure 400 {object} Response "Rol desconocido o datos inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Miembro no existe"
// @Failure 409 {object} Response "Registro inmutable"
// @Router /api/v1/eventos/{id}/personal/{miembro_id} [put]
func (h *PersonalHandler) Update(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	miembroID, err := strconv.ParseUint(c.Param("miembro_id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID de miembro inválido")
		return
	}
	var existente models.Personal
	if err := database.DB.Where("id = ? AND evento_id = ?", miembroID, evento.ID).First(&existente).Error; err != nil {
		NotFound(c, "Miembro no existe")
		return
	}

	if ledger.EstadoLinea(existente.Estado).EsTerminal() {
		Conflict(c, "El registro de personal ya está registrado y no admite cambios")
		return
	}

	var req PersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	// Al cambiar de rol se rederivan los valores por defecto del catálogo
	if req.RolID != existente.RolID {
		req.HorasOPlatos = nil
		req.Tarifa = nil
	}

	miembro, err := resolverPersonal(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{
		"nombre":         miembro.Nombre,
		"rol_id":         miembro.RolID,
		"tipo_tarifa":    miembro.TipoTarifa,
		"horas_o_platos": miembro.HorasOPlatos,
		"tarifa":         miembro.Tarifa,
		"total":          miembro.Total,
		"acceso_sistema": miembro.AccesoSistema,
		"estado":         string(ledger.EstadoEditado),
	}
	if err := database.DB.Model(&existente).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar el personal"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionPersonal, &evento.ID,
		fmt.Sprintf("Actualizó la asignación de '%s'", miembro.Nombre),
		map[string]string{"rol_id": miembro.RolID, "total": fmt.Sprintf("%.2f", miembro.Total)})

	database.DB.First(&existente, existente.ID)
	SuccessWithMessage(c, "Personal actualizado", existente)
}

// Delete quita un miembro del personal
// @Summary Quitar personal
// @Description Quita la asignación del miembro al evento
// @Tags Personal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param miembro_id path int true "ID del miembro"
// @Success 200 {object} Response "Personal quitado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Miembro no existe"
// @Router /api/v1/eventos/{id}/personal/{miembro_id} [delete]
func (h *PersonalHandler) Delete(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	miembroID, err := strconv.ParseUint(c.Param("miembro_id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID de miembro inválido")
		return
	}
	var miembro models.Personal
	if err := database.DB.Where("id = ? AND evento_id = ?", miembroID, evento.ID).First(&miembro).Error; err != nil {
		NotFound(c, "Miembro no existe")
		return
	}

	if err := database.DB.Delete(&miembro).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al quitar el personal"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionEliminado, ledger.SeccionPersonal, &evento.ID,
		fmt.Sprintf("Quitó a '%s' del personal", miembro.Nombre), nil)

	SuccessWithMessage(c, "Personal quitado", nil)
}

// CreateHoraExtra agrega horas extra
// @Summary Agregar horas extra
// @Description Registra horas extra de un trabajador, identificado por nombre. Las horas extra solo se agregan, no se editan.
// @Tags Personal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del evento"
// @Param request body HoraExtraRequest true "Horas extra"
// @Success 200 {object} Response{data=models.HoraExtra} "Horas extra agregadas"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/eventos/{id}/horas-extra [post]
func (h *PersonalHandler) CreateHoraExtra(c *gin.Context) {
	evento, actor, ok := eventoVisible(c)
	if !ok {
		return
	}

	var req HoraExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	r := ledger.ComputeStaffCost(ledger.TarifaPorHora, req.Horas, req.Tarifa)
	if !r.Valido {
		BadRequest(c, "Horas y tarifa deben ser mayores que cero")
		return
	}

	horaExtra := models.HoraExtra{
		EventoID:       evento.ID,
		NombrePersonal: req.NombrePersonal,
		Horas:          req.Horas,
		Tarifa:         req.Tarifa,
		Total:          r.Monto,
	}
	if err := database.DB.Create(&horaExtra).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al guardar las horas extra"))
		return
	}

	if _, err := recalcularYGuardar(evento); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al recalcular el evento"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionPersonal, &evento.ID,
		fmt.Sprintf("Agregó %.2f horas extra de '%s'", req.Horas, req.NombrePersonal), nil)

	SuccessWithMessage(c, "Horas extra agregadas", horaExtra)
}
