package middleware

import (
	"net/http"

	"eventos/database"
	"eventos/ledger"
	"eventos/models"

	"github.com/gin-gonic/gin"
)

// rutasSinPermiso rutas que solo requieren sesión (perfil, catálogos de
// consulta), no pasan por la matriz de roles
var rutasSinPermiso = []string{
	"/api/v1/perfil",
	"/api/v1/perfil/password",
	"/api/v1/catalogo/platos",
	"/api/v1/catalogo/roles-personal",
	"/api/v1/catalogo/bebidas",
	"/api/v1/catalogo/permisos",
}

// Permission middleware de autorización por rol. Debe ir después de JWTAuth.
// Resuelve el actor desde la base de datos y evalúa la ruta contra la matriz
// de permisos; las rutas fuera de la tabla se niegan por defecto.
func Permission() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range rutasSinPermiso {
			if path == p {
				c.Next()
				return
			}
		}

		actor, err := CurrentActor(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "Sesión inválida"})
			c.Abort()
			return
		}

		if !ledger.PuedeAccederRuta(actor.Rol, c.Request.Method, path) {
			c.JSON(http.StatusForbidden, gin.H{"code": 403, "message": "Permisos insuficientes"})
			c.Abort()
			return
		}

		c.Set("actor", actor)
		c.Next()
	}
}

// CurrentActor carga el actor autenticado con su rol y eventos asignados.
// Un rol desconocido en la base degrada a servicio dentro de la matriz.
func CurrentActor(c *gin.Context) (ledger.Actor, error) {
	if v, ok := c.Get("actor"); ok {
		if a, ok := v.(ledger.Actor); ok {
			return a, nil
		}
	}

	userID := GetCurrentUserID(c)
	var user models.Usuario
	if err := database.DB.First(&user, userID).Error; err != nil {
		return ledger.Actor{}, err
	}

	var asignados []uint
	database.DB.Model(&models.UsuarioEvento{}).
		Where("usuario_id = ?", user.ID).
		Pluck("evento_id", &asignados)

	actor := ledger.Actor{
		ID:               user.ID,
		Nombre:           user.Nombre,
		Rol:              ledger.Rol(user.Rol),
		EventosAsignados: asignados,
	}
	return actor, nil
}
