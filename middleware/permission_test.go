package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventos/ledger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// setupPermissionRouter router con un actor fijado antes del middleware,
// evita tocar la base de datos
func setupPermissionRouter(rol ledger.Rol) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("actor", ledger.Actor{ID: 1, Nombre: "Tester", Rol: rol})
	})
	router.Use(Permission())
	handler := func(c *gin.Context) { c.String(200, "ok") }
	router.GET("/api/v1/eventos", handler)
	router.POST("/api/v1/eventos/:id/gastos", handler)
	router.GET("/api/v1/usuarios", handler)
	router.GET("/api/v1/perfil", handler)
	router.GET("/api/v1/sin-regla", handler)
	return router
}

func doPermReq(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPermissionPorRol(t *testing.T) {
	// servicio solo puede ver eventos
	servicio := setupPermissionRouter(ledger.RolServicio)
	assert.Equal(t, 200, doPermReq(servicio, "GET", "/api/v1/eventos").Code)
	assert.Equal(t, http.StatusForbidden, doPermReq(servicio, "POST", "/api/v1/eventos/5/gastos").Code)
	assert.Equal(t, http.StatusForbidden, doPermReq(servicio, "GET", "/api/v1/usuarios").Code)

	// compras registra gastos pero no administra usuarios
	compras := setupPermissionRouter(ledger.RolCompras)
	assert.Equal(t, 200, doPermReq(compras, "POST", "/api/v1/eventos/5/gastos").Code)
	assert.Equal(t, http.StatusForbidden, doPermReq(compras, "GET", "/api/v1/usuarios").Code)

	// admin accede a todo
	admin := setupPermissionRouter(ledger.RolAdmin)
	assert.Equal(t, 200, doPermReq(admin, "GET", "/api/v1/usuarios").Code)
}

func TestPermissionRolDesconocido(t *testing.T) {
	// rol desconocido degrada a servicio: lectura de eventos sí, nada más
	router := setupPermissionRouter(ledger.Rol("rol-fantasma"))
	assert.Equal(t, 200, doPermReq(router, "GET", "/api/v1/eventos").Code)
	assert.Equal(t, http.StatusForbidden, doPermReq(router, "POST", "/api/v1/eventos/5/gastos").Code)
}

func TestPermissionRutaFueraDeTabla(t *testing.T) {
	// rutas sin regla se niegan incluso para admin
	router := setupPermissionRouter(ledger.RolAdmin)
	assert.Equal(t, http.StatusForbidden, doPermReq(router, "GET", "/api/v1/sin-regla").Code)
}

func TestPermissionRutasSinPermiso(t *testing.T) {
	// el perfil solo requiere sesión
	router := setupPermissionRouter(ledger.RolServicio)
	assert.Equal(t, 200, doPermReq(router, "GET", "/api/v1/perfil").Code)
}
