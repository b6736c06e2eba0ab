package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "Operación fallida"
	testErr := errors.New("internal database error")

	// err nil devuelve el fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// en modo release devuelve el fallback, sin exponer el detalle del error
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// en modo debug devuelve err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// con GlobalConfig nil devuelve err.Error() (se asume entorno de desarrollo)
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}
