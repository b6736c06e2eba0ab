package api

import (
	"net/http"

	"eventos/config"
	"eventos/database"
	"eventos/ledger"
	"eventos/middleware"
	"eventos/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler autenticación y perfil
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler crea el handler de autenticación
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest solicitud de registro
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"mquispe"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Nombre   string `json:"nombre" binding:"required,max=100" example:"María Quispe"`
	Email    string `json:"email" binding:"omitempty,email" example:"maria@example.com"`
}

// LoginRequest solicitud de login (usuario o correo)
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"mquispe"` // usuario o correo
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse respuesta de login
type LoginResponse struct {
	Token    string         `json:"token"`
	UserInfo models.Usuario `json:"user_info"`
}

// Register registro de usuario
// @Summary Registrar usuario
// @Description Crea una cuenta nueva. Las cuentas nuevas nacen bloqueadas (locked) con rol servicio; un administrador debe activarlas y asignarles rol.
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Datos de registro"
// @Success 200 {object} Response{data=models.Usuario} "Registro exitoso"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 500 {object} Response "Error del servidor"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	// Verificar que el usuario no exista
	var existente models.Usuario
	if err := database.DB.Where("username = ?", req.Username).First(&existente).Error; err == nil {
		BadRequest(c, "El nombre de usuario ya existe")
		return
	}

	// Cifrar la contraseña
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Error al cifrar la contraseña")
		return
	}

	// Las cuentas nuevas entran con el rol más restrictivo
	user := models.Usuario{
		Username: req.Username,
		Password: string(hashed),
		Nombre:   req.Nombre,
		Email:    req.Email,
		Rol:      string(ledger.RolServicio),
		Status:   models.UsuarioEstadoBloqueado,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el usuario"))
		return
	}

	SuccessWithMessage(c, "Registro exitoso", user)
}

// Login inicio de sesión
// @Summary Iniciar sesión
// @Description Inicia sesión y devuelve un token JWT
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciales"
// @Success 200 {object} Response{data=LoginResponse} "Sesión iniciada"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "Usuario o contraseña incorrectos"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	// Buscar por usuario o correo
	var user models.Usuario
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "Usuario o contraseña incorrectos")
		return
	}

	// Solo cuentas activas pueden entrar
	if user.Status != models.UsuarioEstadoActivo {
		Error(c, http.StatusForbidden, "Cuenta bloqueada, contacte al administrador")
		return
	}

	// Verificar la contraseña
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Usuario o contraseña incorrectos")
		return
	}

	// Generar el token
	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Error al generar el token")
		return
	}

	Success(c, LoginResponse{
		Token:    token,
		UserInfo: user,
	})
}

// GetProfile perfil del usuario autenticado
// @Summary Obtener perfil
// @Description Devuelve los datos del usuario autenticado con sus permisos efectivos
// @Tags Autenticación
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Perfil"
// @Failure 401 {object} Response "No autorizado"
// @Router /api/v1/perfil [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.Usuario
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Usuario no existe")
		return
	}

	Success(c, gin.H{
		"usuario":  user,
		"permisos": ledger.PermisosDe(ledger.Rol(user.Rol)),
	})
}

// ChangePasswordRequest solicitud de cambio de contraseña
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"vieja123"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50" example:"nueva123"`
}

// ChangePassword cambio de contraseña
// @Summary Cambiar contraseña
// @Description Cambia la contraseña del usuario autenticado
// @Tags Autenticación
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Contraseñas"
// @Success 200 {object} Response "Contraseña actualizada"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Failure 401 {object} Response "Contraseña anterior incorrecta"
// @Router /api/v1/perfil/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parámetros inválidos"))
		return
	}

	var user models.Usuario
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Usuario no existe")
		return
	}

	// Verificar la contraseña anterior
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		Unauthorized(c, "Contraseña anterior incorrecta")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Error al cifrar la contraseña")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al actualizar la contraseña"))
		return
	}

	SuccessWithMessage(c, "Contraseña actualizada", nil)
}
