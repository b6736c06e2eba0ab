package router

import (
	"time"

	"eventos/api"
	"eventos/config"
	_ "eventos/docs"
	"eventos/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configura el router
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// Documentación Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Chequeo de salud
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/api/v1")
	{
		// Autenticación (sin sesión)
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		// Rutas con sesión; el middleware de permisos niega por defecto toda
		// ruta fuera de la tabla de reglas
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		authorized.Use(middleware.Permission())
		{
			// Perfil del usuario autenticado
			authorized.GET("/perfil", authHandler.GetProfile)
			authorized.PUT("/perfil/password", authHandler.ChangePassword)

			// Catálogos de solo lectura
			catalogoHandler := api.NewCatalogoHandler()
			catalogo := authorized.Group("/catalogo")
			{
				catalogo.GET("/platos", catalogoHandler.Platos)
				catalogo.GET("/roles-personal", catalogoHandler.RolesPersonal)
				catalogo.GET("/bebidas", catalogoHandler.Bebidas)
				catalogo.GET("/permisos", catalogoHandler.Permisos)
			}

			// Clientes
			clienteHandler := api.NewClienteHandler()
			clientes := authorized.Group("/clientes")
			{
				clientes.GET("", clienteHandler.List)
				clientes.POST("", clienteHandler.Create)
				clientes.GET("/:id", clienteHandler.Get)
				clientes.PUT("/:id", clienteHandler.Update)
				clientes.DELETE("/:id", clienteHandler.Delete)
			}

			// Eventos y sus colecciones
			eventoHandler := api.NewEventoHandler()
			eventos := authorized.Group("/eventos")
			{
				eventos.GET("", eventoHandler.List)
				eventos.POST("", eventoHandler.Create)
				eventos.GET("/:id", eventoHandler.Get)
				eventos.PUT("/:id", eventoHandler.Update)
				eventos.DELETE("/:id", eventoHandler.Delete)

				resumenHandler := api.NewResumenHandler()
				eventos.GET("/:id/resumen", resumenHandler.Get)

				garantiaHandler := api.NewGarantiaHandler()
				eventos.GET("/:id/garantia/devolucion", garantiaHandler.Get)
				eventos.POST("/:id/garantia/devolucion", garantiaHandler.Devolver)

				gastoHandler := api.NewGastoHandler()
				eventos.GET("/:id/gastos", gastoHandler.List)
				eventos.POST("/:id/gastos", gastoHandler.Create)
				eventos.POST("/:id/gastos/sugerir", gastoHandler.Sugerir)
				eventos.PUT("/:id/gastos/:gasto_id", gastoHandler.Update)
				eventos.POST("/:id/gastos/:gasto_id/registrar", gastoHandler.Registrar)
				eventos.DELETE("/:id/gastos/:gasto_id", gastoHandler.Delete)

				decoracionHandler := api.NewDecoracionHandler()
				eventos.GET("/:id/decoracion", decoracionHandler.List)
				eventos.POST("/:id/decoracion", decoracionHandler.Create)
				eventos.PUT("/:id/decoracion/:item_id", decoracionHandler.Update)
				eventos.DELETE("/:id/decoracion/:item_id", decoracionHandler.Delete)
				eventos.POST("/:id/decoracion/:item_id/pagos", decoracionHandler.RegistrarPago)

				personalHandler := api.NewPersonalHandler()
				eventos.GET("/:id/personal", personalHandler.List)
				eventos.POST("/:id/personal", personalHandler.Create)
				eventos.PUT("/:id/personal/:miembro_id", personalHandler.Update)
				eventos.DELETE("/:id/personal/:miembro_id", personalHandler.Delete)
				eventos.POST("/:id/horas-extra", personalHandler.CreateHoraExtra)

				bebidaHandler := api.NewBebidaHandler()
				eventos.GET("/:id/bebidas", bebidaHandler.List)
				eventos.POST("/:id/bebidas", bebidaHandler.Create)
				eventos.PUT("/:id/bebidas/:bebida_id", bebidaHandler.Update)
				eventos.DELETE("/:id/bebidas/:bebida_id", bebidaHandler.Delete)

				ingresoHandler := api.NewIngresoHandler()
				eventos.GET("/:id/ingresos", ingresoHandler.List)
				eventos.POST("/:id/ingresos", ingresoHandler.Create)

				exportHandler := api.NewExportHandler()
				eventos.GET("/:id/export/excel", exportHandler.ExportExcel)
				eventos.GET("/:id/export/csv", exportHandler.ExportCSV)
				eventos.GET("/:id/export/json", exportHandler.ExportJSON)
			}

			// Auditoría
			auditoriaHandler := api.NewAuditoriaHandler()
			authorized.GET("/auditoria", auditoriaHandler.List)
			eventos.GET("/:id/auditoria", auditoriaHandler.ListByEvento)

			// Administración de usuarios
			usuarioHandler := api.NewUsuarioHandler()
			authorized.GET("/usuarios", usuarioHandler.List)
			authorized.PUT("/usuarios/:id", usuarioHandler.Update)
		}
	}

	return r
}

// CORSMiddleware middleware CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
