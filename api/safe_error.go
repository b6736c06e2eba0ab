package api

import (
	"eventos/config"
)

// SafeErrorMessage en producción no expone detalles internos del error al cliente
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
