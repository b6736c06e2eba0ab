package api

import (
	"fmt"
	"strconv"

	"eventos/database"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// ClienteHandler fichas de clientes
type ClienteHandler struct{}

// NewClienteHandler crea el handler de clientes
func NewClienteHandler() *ClienteHandler {
	return &ClienteHandler{}
}

// ClienteRequest datos de cliente para crear o actualizar
type ClienteRequest struct {
	Nombre    string `json:"nombre" binding:"required,max=100" example:"Rosa Flores"`
	Telefono  string `json:"telefono" binding:"max=20" example:"987654321"`
	Email     string `json:"email" binding:"omitempty,email" example:"rosa@example.com"`
	Direccion string `json:"direccion" binding:"max=255"`
	Notas     string `json:"notas" binding:"max=500"`
}

// List listado de clientes
// @Summary Listar clientes
// @Description Lista los clientes con paginación y búsqueda por nombre
// @Tags Clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Param nombre query string false "Búsqueda por nombre"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Cliente}} "Listado"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/clientes [get]
func (h *ClienteHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query := database.DB.Model(&models.Cliente{})
	if nombre := c.Query("nombre"); nombre != "" {
		query = query.Where("nombre LIKE ?", "%"+nombre+"%")
	}

	var total int64
	query.Count(&total)

	var clientes []models.Cliente
	if err := query.Order("nombre ASC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&clientes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar clientes"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     clientes,
	})
}

// Create crea un cliente
// @Summary Crear cliente
// @Description Registra una ficha de cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClienteRequest true "Datos del cliente"
// @Success 200 {object} Response{data=models.Cliente} "Cliente creado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/clientes [post]
func (h *ClienteHandler) Create(c *gin.Context) {
	actor, ok := actorActual(c)
	if !ok {
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	cliente := models.Cliente{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Notas:     req.Notas,
	}
	if err := database.DB.Create(&cliente).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el cliente"))
		return
	}

	guardarAuditoria(actor, ledger.AccionCreado, ledger.SeccionClientes, nil,
		fmt.Sprintf("Creó el cliente '%s'", cliente.Nombre), nil)

	SuccessWithMessage(c, "Cliente creado", cliente)
}

// Get detalle de un cliente
// @Summary Obtener cliente
// @Description Devuelve la ficha del cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del cliente"
// @Success 200 {object} Response{data=models.Cliente} "Cliente"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Cliente no existe"
// @Router /api/v1/clientes/{id} [get]
func (h *ClienteHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var cliente models.Cliente
	if err := database.DB.First(&cliente, id).Error; err != nil {
		NotFound(c, "Cliente no existe")
		return
	}

	Success(c, cliente)
}

// Update actualiza un cliente
// @Summary Actualizar cliente
// @Description Actualiza la ficha del cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del cliente"
// @Param request body ClienteRequest true "Datos del cliente"
// @Success 200 {object} Response{data=models.Cliente} "Cliente actualizado"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Cliente no existe"
// @Router /api/v1/clientes/{id} [put]
func (h *ClienteHandler) Update(c *gin.Context) {
	actor, ok := actorActual(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var cliente models.Cliente
	if err := database.DB.First(&cliente, id).Error; err != nil {
		NotFound(c, "Cliente no existe")
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	updates := map[string]interface{}{
		"nombre":    req.Nombre,
		"telefono":  req.Telefono,
		"email":     req.Email,
		"direccion": req.Direccion,
		"notas":     req.Notas,
	}
	if err := database.DB.Model(&cliente).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar el cliente"))
		return
	}

	guardarAuditoria(actor, ledger.AccionActualizado, ledger.SeccionClientes, nil,
		fmt.Sprintf("Actualizó el cliente '%s'", cliente.Nombre), nil)

	database.DB.First(&cliente, cliente.ID)
	SuccessWithMessage(c, "Cliente actualizado", cliente)
}

// Delete elimina un cliente
// @Summary Eliminar cliente
// @Description Elimina la ficha del cliente (borrado lógico). Los eventos asociados conservan la referencia.
// @Tags Clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del cliente"
// @Success 200 {object} Response "Cliente eliminado"
// @Failure 401 {object} Response "No autorizado"
// @Failure 404 {object} Response "Cliente no existe"
// @Router /api/v1/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *gin.Context) {
	actor, ok := actorActual(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var cliente models.Cliente
	if err := database.DB.First(&cliente, id).Error; err != nil {
		NotFound(c, "Cliente no existe")
		return
	}

	if err := database.DB.Delete(&cliente).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el cliente"))
		return
	}

	guardarAuditoria(actor, ledger.AccionEliminado, ledger.SeccionClientes, nil,
		fmt.Sprintf("Eliminó el cliente '%s'", cliente.Nombre), nil)

	SuccessWithMessage(c, "Cliente eliminado", nil)
}
