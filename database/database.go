package database

import (
	"fmt"
	"log"

	"eventos/config"
	"eventos/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init inicializa la conexión a la base de datos
func Init(cfg *config.Config) error {
	// Construir el DSN de MySQL
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("error al conectar con la base de datos: %w", err)
	}

	// Configurar el pool de conexiones del *sql.DB subyacente
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Migración automática de tablas
	if err := DB.AutoMigrate(
		&models.Usuario{},
		&models.UsuarioEvento{},
		&models.Cliente{},
		&models.Evento{},
		&models.Gasto{},
		&models.DecoracionItem{},
		&models.DecoracionPago{},
		&models.Personal{},
		&models.HoraExtra{},
		&models.Bebida{},
		&models.Ingreso{},
		&models.GarantiaDevolucion{},
		&models.Auditoria{},
	); err != nil {
		return err
	}

	// Compatibilidad con datos antiguos: cuentas sin status quedan activas
	// para no bloquear el login tras una actualización
	_ = DB.Model(&models.Usuario{}).
		Where("status IS NULL OR status = ''").
		Update("status", models.UsuarioEstadoActivo).Error

	// Crear el usuario administrador inicial (solo si la tabla está vacía)
	var userCount int64
	DB.Model(&models.Usuario{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err == nil {
			admin := models.Usuario{
				Username: "admin",
				Password: string(hashed),
				Nombre:   "Administrador",
				Rol:      "admin",
				Status:   models.UsuarioEstadoActivo,
			}
			if err := DB.Create(&admin).Error; err == nil {
				log.Println("Usuario administrador inicial creado (admin/admin123, cambiar la contraseña)")
			}
		}
	}

	log.Println("Base de datos inicializada")
	return nil
}
