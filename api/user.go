package api

import (
	"fmt"
	"strconv"
	"strings"

	"eventos/database"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UsuarioHandler administración de cuentas
type UsuarioHandler struct{}

// NewUsuarioHandler crea el handler de usuarios
func NewUsuarioHandler() *UsuarioHandler {
	return &UsuarioHandler{}
}

// List listado de usuarios
// @Summary Listar usuarios
// @Description Lista las cuentas del sistema con paginación opcional por rol y estado
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página, por defecto 1"
// @Param page_size query int false "Tamaño de página, por defecto 20"
// @Param rol query string false "Filtrar por rol"
// @Param status query string false "Filtrar por estado (locked/active)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Usuario}} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 403 {object} Response "Permisos insuficientes"
// @Router /api/v1/usuarios [get]
func (h *UsuarioHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := database.DB.Model(&models.Usuario{})
	if rol := c.Query("rol"); rol != "" {
		query = query.Where("rol = ?", rol)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar usuarios"))
		return
	}

	var usuarios []models.Usuario
	if err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&usuarios).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar usuarios"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     usuarios,
	})
}

// UpdateUsuarioRequest cambios de cuenta que puede aplicar un administrador
type UpdateUsuarioRequest struct {
	Nombre string `json:"nombre" binding:"omitempty,max=100" example:"María Quispe"`
	Email  string `json:"email" binding:"omitempty,email" example:"maria@ejemplo.com"`
	Rol    string `json:"rol" binding:"omitempty,oneof=admin socio compras coordinador servicio" example:"compras"`
	Status string `json:"status" binding:"omitempty,oneof=locked active" example:"active"`
	// Eventos reemplaza el conjunto de eventos asignados; nil lo deja intacto
	Eventos *[]uint `json:"eventos"`
}

// Update actualiza rol, estado y eventos asignados de una cuenta
// @Summary Actualizar usuario
// @Description Cambia rol, estado y asignación de eventos. La asignación reemplaza el conjunto completo; los roles admin y socio ven todos los eventos sin asignación.
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del usuario"
// @Param request body UpdateUsuarioRequest true "Cambios"
// @Success 200 {object} Response{data=models.Usuario} "Usuario actualizado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Failure 403 {object} Response "Permisos insuficientes"
// @Failure 404 {object} Response "Usuario no existe"
// @Router /api/v1/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *gin.Context) {
	actor, ok := actorActual(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var req UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	var usuario models.Usuario
	if err := database.DB.First(&usuario, id).Error; err != nil {
		NotFound(c, "Usuario no existe")
		return
	}

	cambios := make(map[string]string)
	updates := make(map[string]interface{})
	if req.Nombre != "" && req.Nombre != usuario.Nombre {
		cambios["nombre"] = fmt.Sprintf("%s → %s", usuario.Nombre, req.Nombre)
		updates["nombre"] = req.Nombre
	}
	if req.Email != "" && req.Email != usuario.Email {
		cambios["email"] = fmt.Sprintf("%s → %s", usuario.Email, req.Email)
		updates["email"] = req.Email
	}
	if req.Rol != "" && req.Rol != usuario.Rol {
		cambios["rol"] = fmt.Sprintf("%s → %s", usuario.Rol, req.Rol)
		updates["rol"] = req.Rol
	}
	if req.Status != "" && req.Status != usuario.Status {
		cambios["status"] = fmt.Sprintf("%s → %s", usuario.Status, req.Status)
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&usuario).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Error al actualizar el usuario"))
			return
		}
	}

	if req.Eventos != nil {
		if err := reemplazarEventosAsignados(usuario.ID, *req.Eventos); err != nil {
			InternalError(c, SafeErrorMessage(err, "Error al asignar eventos"))
			return
		}
		ids := make([]string, len(*req.Eventos))
		for i, eid := range *req.Eventos {
			ids[i] = strconv.FormatUint(uint64(eid), 10)
		}
		cambios["eventos"] = strings.Join(ids, ", ")
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionUsuarios, nil,
		fmt.Sprintf("Actualizó la cuenta '%s'", usuario.Username), cambios)

	if err := database.DB.First(&usuario, id).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar el usuario"))
		return
	}
	Success(c, usuario)
}

// reemplazarEventosAsignados reemplaza el conjunto completo de asignaciones de
// un usuario en una transacción
func reemplazarEventosAsignados(usuarioID uint, eventos []uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", usuarioID).Delete(&models.UsuarioEvento{}).Error; err != nil {
			return err
		}
		for _, eventoID := range eventos {
			var existe int64
			if err := tx.Model(&models.Evento{}).Where("id = ?", eventoID).Count(&existe).Error; err != nil {
				return err
			}
			if existe == 0 {
				return fmt.Errorf("el evento %d no existe", eventoID)
			}
			if err := tx.Create(&models.UsuarioEvento{UsuarioID: usuarioID, EventoID: eventoID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
