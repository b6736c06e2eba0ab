package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuración de la aplicación
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig configuración del servidor
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig configuración de la base de datos
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig configuración de JWT
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig configuración de correo
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	// AlertTo destinatario de las alertas de ediciones sospechosas
	AlertTo string `mapstructure:"alert_to"`
}

var (
	// GlobalConfig instancia global de configuración
	GlobalConfig *Config
)

// LoadConfig carga la configuración.
// Prioridad: archivo externo > configuración embebida por defecto.
// configPath: ruta opcional a un archivo de configuración externo
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Primero cargar la configuración embebida por defecto
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("error al leer la configuración embebida: %w", err)
	}
	log.Println("Configuración por defecto cargada")

	// 2. Intentar cargar un archivo externo (opcional, sobreescribe los valores por defecto)
	if configPath != "" {
		// Ruta de configuración indicada
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("Advertencia: no se pudo leer el archivo de configuración %s: %v", configPath, err)
		} else {
			log.Printf("Configuración externa combinada: %s", configPath)
		}
	} else {
		// Buscar un archivo de configuración externo
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/eventos")
		externalViper.AddConfigPath("$HOME/.eventos")

		if err := externalViper.ReadInConfig(); err == nil {
			// Archivo externo encontrado, combinar configuración
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("Advertencia: no se pudo combinar la configuración externa: %v", err)
			} else {
				log.Printf("Configuración externa combinada: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Variables de entorno (opcional)
	v.SetEnvPrefix("EVENTOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Parsear la configuración
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error al parsear la configuración: %w", err)
	}

	// Tiempo de expiración del JWT
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	// Guardar en la variable global
	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig carga la configuración, panic si falla
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("error al cargar la configuración: %v", err))
	}
	return cfg
}

// GetConfig devuelve la configuración global
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuración no inicializada, llamar primero a LoadConfig")
	}
	return GlobalConfig
}

// PrintConfig imprime la configuración actual (oculta datos sensibles)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("Configuración actual:")
	log.Printf("  Servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  Base de datos: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  Correo: %v", GlobalConfig.Email.Enabled)
}

// SafeErrorMessage devuelve el detalle del error solo en modo debug; en
// release devuelve el mensaje de respaldo para no exponer detalles internos.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig == nil || GlobalConfig.Server.Mode != "release" {
		return err.Error()
	}
	return fallback
}
