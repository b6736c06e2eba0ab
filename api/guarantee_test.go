package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"eventos/config"
	"eventos/ledger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func garantiaColumns() []string {
	return []string{"id", "evento_id", "monto_garantia", "monto_descontado", "monto_devuelto", "motivo", "fecha", "created_at"}
}

func setupGarantiaRouter() (*gin.Engine, *GarantiaHandler) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setActor(ledger.Actor{ID: 1, Nombre: "Admin", Rol: ledger.RolAdmin}))
	return router, NewGarantiaHandler()
}

func TestGarantiaDevolver(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())

	// Sin devolución previa
	mock.ExpectQuery("SELECT .* FROM `garantia_devoluciones`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `garantia_devoluciones`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `auditoria`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router, h := setupGarantiaRouter()
	router.POST("/eventos/:id/garantia/devolucion", h.Devolver)

	body := `{"monto_descontado":150,"motivo":"Rotura de 6 copas"}`
	req := httptest.NewRequest("POST", "/eventos/1/garantia/devolucion", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// garantía 500 − descuento 150
	assert.Equal(t, 500.0, data["monto_garantia"])
	assert.Equal(t, 150.0, data["monto_descontado"])
	assert.Equal(t, 350.0, data["monto_devuelto"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGarantiaDevolverSegundoIntento(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())

	// Ya existe una devolución: la sola presencia del registro rechaza
	mock.ExpectQuery("SELECT .* FROM `garantia_devoluciones`").
		WillReturnRows(sqlmock.NewRows(garantiaColumns()).
			AddRow(1, 1, 500.0, 150.0, 350.0, "Rotura de 6 copas", time.Now(), time.Now()))

	router, h := setupGarantiaRouter()
	router.POST("/eventos/:id/garantia/devolucion", h.Devolver)

	body := `{"monto_descontado":0}`
	req := httptest.NewRequest("POST", "/eventos/1/garantia/devolucion", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "ya fue devuelta")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGarantiaDevolverDescuentoExcesivo(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())
	mock.ExpectQuery("SELECT .* FROM `garantia_devoluciones`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router, h := setupGarantiaRouter()
	router.POST("/eventos/:id/garantia/devolucion", h.Devolver)

	// descuento 900 > garantía 500
	body := `{"monto_descontado":900,"motivo":"Daños"}`
	req := httptest.NewRequest("POST", "/eventos/1/garantia/devolucion", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGarantiaGetSinDevolucion(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())
	mock.ExpectQuery("SELECT .* FROM `garantia_devoluciones`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router, h := setupGarantiaRouter()
	router.GET("/eventos/:id/garantia/devolucion", h.Get)

	req := httptest.NewRequest("GET", "/eventos/1/garantia/devolucion", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
