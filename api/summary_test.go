package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"eventos/config"
	"eventos/ledger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumenRecalculaAlConsultar(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	// evento: 150 platos a 35, adelanto 1000, garantía 500, caja chica 2000
	mock.ExpectQuery("SELECT .* FROM `eventos`").WillReturnRows(eventoRow())

	// un gasto predeterminado de 50 × 8.5
	mock.ExpectQuery("SELECT .* FROM `gastos`").
		WillReturnRows(sqlmock.NewRows(gastoColumns()).
			AddRow(10, 1, "ingredientes", "Cuarto de pollo", 50.0, "unidad", 8.5, 425.0, true, "registrado", "María", "compras"))
	mock.ExpectQuery("SELECT .* FROM `decoracion_items`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `personal_evento`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `horas_extra`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `bebidas`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `ingresos_adicionales`").WillReturnRows(sqlmock.NewRows([]string{}))

	// la instantánea se reescribe completa en cada consulta
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `eventos`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setActor(ledger.Actor{ID: 1, Nombre: "Admin", Rol: ledger.RolAdmin}))
	h := NewResumenHandler()
	router.GET("/eventos/:id/resumen", h.Get)

	req := httptest.NewRequest("GET", "/eventos/1/resumen", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	resumen := data["resumen"].(map[string]interface{})

	assert.Equal(t, 5250.0, resumen["costo_comida"])
	assert.Equal(t, 5750.0, resumen["precio_total"]) // comida + garantía
	assert.Equal(t, 425.0, resumen["gasto_total"])
	assert.Equal(t, 1500.0, resumen["ingreso_total"]) // adelanto + garantía
	assert.Equal(t, 1075.0, resumen["balance"])
	assert.Equal(t, 4750.0, resumen["pago_pendiente"])
	assert.Equal(t, 1575.0, resumen["saldo_caja_chica"])
	require.NoError(t, mock.ExpectationsWereMet())
}
