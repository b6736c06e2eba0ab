package api

import (
	"eventos/catalog"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler datos de referencia de solo lectura
type CatalogoHandler struct{}

// NewCatalogoHandler crea el handler de catálogo
func NewCatalogoHandler() *CatalogoHandler {
	return &CatalogoHandler{}
}

// Platos catálogo de platos
// @Summary Listar platos
// @Description Lista las plantillas de platos con sus ingredientes de referencia
// @Tags Catálogo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Platos"
// @Router /api/v1/catalogo/platos [get]
func (h *CatalogoHandler) Platos(c *gin.Context) {
	Success(c, catalog.ListaPlatos())
}

// RolesPersonal catálogo de roles del personal
// @Summary Listar roles del personal
// @Description Lista los roles con tarifa y tipo de tarifa por defecto
// @Tags Catálogo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]catalog.RolPersonal} "Roles"
// @Router /api/v1/catalogo/roles-personal [get]
func (h *CatalogoHandler) RolesPersonal(c *gin.Context) {
	Success(c, catalog.ListaRolesPersonal())
}

// Bebidas catálogo de tipos de bebida
// @Summary Listar tipos de bebida
// @Description Lista los tipos de bebida soportados y sus modalidades
// @Tags Catálogo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]catalog.TipoBebidaInfo} "Tipos de bebida"
// @Router /api/v1/catalogo/bebidas [get]
func (h *CatalogoHandler) Bebidas(c *gin.Context) {
	Success(c, gin.H{
		"tipos":      catalog.ListaTiposBebida(),
		"categorias": models.CategoriasGasto(),
	})
}

// Permisos matriz de permisos por rol de sistema
// @Summary Listar matriz de permisos
// @Description Devuelve las capacidades de cada rol de sistema
// @Tags Catálogo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Matriz de permisos"
// @Router /api/v1/catalogo/permisos [get]
func (h *CatalogoHandler) Permisos(c *gin.Context) {
	roles := []ledger.Rol{
		ledger.RolAdmin,
		ledger.RolSocio,
		ledger.RolCompras,
		ledger.RolCoordinador,
		ledger.RolServicio,
	}
	matriz := make(map[string]ledger.Permisos, len(roles))
	for _, rol := range roles {
		matriz[string(rol)] = ledger.PermisosDe(rol)
	}
	Success(c, matriz)
}
