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

func eventoColumns() []string {
	return []string{"id", "nombre", "tipo", "fecha", "platos", "precio_por_plato", "adelanto", "garantia", "caja_chica"}
}

func eventoRow() *sqlmock.Rows {
	return sqlmock.NewRows(eventoColumns()).
		AddRow(1, "Matrimonio Flores", "matrimonio", time.Now(), 150.0, 35.0, 1000.0, 500.0, 2000.0)
}

func gastoColumns() []string {
	return []string{"id", "evento_id", "categoria", "descripcion", "cantidad", "unidad", "costo_unitario", "monto", "es_predeterminado", "estado", "registrado_por", "rol_registro"}
}

func setupGastoRouter(rol ledger.Rol) (*gin.Engine, *GastoHandler) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setActor(ledger.Actor{ID: 7, Nombre: "María", Rol: rol, EventosAsignados: []uint{1}}))
	return router, NewGastoHandler()
}

func TestGastoSugerirNoPersiste(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	// Solo se consulta el evento; ningún INSERT: las líneas sugeridas no se
	// persisten hasta que el cliente confirma cada una
	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())

	router, h := setupGastoRouter(ledger.RolCompras)
	router.POST("/eventos/:id/gastos/sugerir", h.Sugerir)

	body := `{"plato_id":"pollo-parrilla","porciones":50}`
	req := httptest.NewRequest("POST", "/eventos/1/gastos/sugerir", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// Tomate y lechuga van por el flujo de verduras aparte; el ají permanece
	lineas := data["lineas"].([]interface{})
	assert.Len(t, lineas, 5)
	assert.Equal(t, true, data["requiere_aji"])

	// las claves salen en snake_case como el resto de la API
	primera := lineas[0].(map[string]interface{})
	assert.Contains(t, primera, "ingrediente")
	assert.Contains(t, primera, "cantidad_total")
	assert.Contains(t, primera, "costo_total")
	assert.Equal(t, "sugerido", primera["estado"])

	for _, l := range lineas {
		linea := l.(map[string]interface{})
		assert.NotContains(t, linea["ingrediente"], "Tomate")
		assert.NotContains(t, linea["ingrediente"], "Lechuga")
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoSugerirPlatoInexistente(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())

	router, h := setupGastoRouter(ledger.RolCompras)
	router.POST("/eventos/:id/gastos/sugerir", h.Sugerir)

	body := `{"plato_id":"plato-fantasma","porciones":50}`
	req := httptest.NewRequest("POST", "/eventos/1/gastos/sugerir", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoCreate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `gastos`").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	// Recálculo del libro financiero: todas las colecciones, luego la
	// instantánea sobre el evento
	mock.ExpectQuery("SELECT .* FROM `gastos`").
		WillReturnRows(sqlmock.NewRows(gastoColumns()).
			AddRow(10, 1, "ingredientes", "Cuarto de pollo", 50.0, "unidad", 8.5, 425.0, true, "editado", "María", "compras"))
	mock.ExpectQuery("SELECT .* FROM `decoracion_items`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `personal_evento`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `horas_extra`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `bebidas`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `ingresos_adicionales`").WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `eventos`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Entrada de auditoría
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `auditoria`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router, h := setupGastoRouter(ledger.RolCompras)
	router.POST("/eventos/:id/gastos", h.Create)

	body := `{"categoria":"ingredientes","descripcion":"Cuarto de pollo","cantidad":50,"unidad":"unidad","costo_unitario":8.5,"es_predeterminado":true}`
	req := httptest.NewRequest("POST", "/eventos/1/gastos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// El monto es derivado, nunca el que llega del cliente
	assert.Equal(t, 425.0, data["monto"])
	assert.Equal(t, "editado", data["estado"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoCreateCategoriaInvalida(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())

	router, h := setupGastoRouter(ledger.RolCompras)
	router.POST("/eventos/:id/gastos", h.Create)

	body := `{"categoria":"joyeria","cantidad":1,"costo_unitario":10}`
	req := httptest.NewRequest("POST", "/eventos/1/gastos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Categoría de gasto inválida", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoUpdateRegistradoEsInmutable(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())
	mock.ExpectQuery("SELECT .* FROM `gastos`").
		WillReturnRows(sqlmock.NewRows(gastoColumns()).
			AddRow(10, 1, "ingredientes", "Carbón", 4.0, "kg", 0.7, 2.8, false, "registrado", "María", "compras"))

	router, h := setupGastoRouter(ledger.RolCompras)
	router.PUT("/eventos/:id/gastos/:gasto_id", h.Update)

	body := `{"cantidad":8}`
	req := httptest.NewRequest("PUT", "/eventos/1/gastos/10", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoDeleteRegistradoEsInmutable(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())
	mock.ExpectQuery("SELECT .* FROM `gastos`").
		WillReturnRows(sqlmock.NewRows(gastoColumns()).
			AddRow(10, 1, "ingredientes", "Carbón", 4.0, "kg", 0.7, 2.8, false, "registrado", "María", "compras"))

	router, h := setupGastoRouter(ledger.RolAdmin)
	router.DELETE("/eventos/:id/gastos/:gasto_id", h.Delete)

	req := httptest.NewRequest("DELETE", "/eventos/1/gastos/10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoEventoNoAsignado(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `eventos`").
		WillReturnRows(sqlmock.NewRows(eventoColumns()).
			AddRow(9, "Otro evento", "corporativo", time.Now(), 0.0, 0.0, 0.0, 0.0, 0.0))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	// compras con el evento 1 asignado, pide el evento 9
	router.Use(setActor(ledger.Actor{ID: 7, Nombre: "María", Rol: ledger.RolCompras, EventosAsignados: []uint{1}}))
	h := NewGastoHandler()
	router.GET("/eventos/:id/gastos", h.List)

	req := httptest.NewRequest("GET", "/eventos/9/gastos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
