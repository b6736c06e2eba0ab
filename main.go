package main

import (
	"flag"
	"log"
	"strings"

	"eventos/config"
	"eventos/database"
	"eventos/middleware"
	"eventos/router"
)

// @title API de Gestión de Eventos
// @version 1.0
// @description Back office para la gestión financiera de eventos: contratos, gastos, decoración, personal, bebidas y auditoría
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "Ruta del archivo de configuración externo (opcional)")
	flag.StringVar(&configFile, "c", "", "Ruta del archivo de configuración (abreviado)")
	flag.StringVar(&port, "port", "", "Puerto de escucha, ej: 8080 o :8080")
	flag.StringVar(&port, "p", "", "Puerto de escucha (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "Mostrar versión")
	flag.BoolVar(&showVersion, "v", false, "Mostrar versión (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Sistema de gestión de eventos v1.0.0")
		return
	}

	// Configuración embebida + archivo externo opcional
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Error al cargar la configuración: %v", err)
	}

	// El puerto de línea de comandos manda sobre el archivo
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("Puerto indicado por línea de comandos: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  🎉 Sistema de gestión de eventos iniciado")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
