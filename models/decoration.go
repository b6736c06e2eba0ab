package models

import (
	"time"

	"gorm.io/gorm"
)

// DecoracionItem ítem de decoración con ambos lados del precio. La ganancia y
// el estado de pago son derivados; los pagos son append-only.
type DecoracionItem struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	EventoID       uint    `json:"evento_id" gorm:"index;not null"`
	Descripcion    string  `json:"descripcion" gorm:"size:255;not null"`
	CostoProveedor float64 `json:"costo_proveedor" gorm:"type:decimal(10,2);not null"`
	CostoCliente   float64 `json:"costo_cliente" gorm:"type:decimal(10,2);not null"`
	// Ganancia costo cliente − costo proveedor; puede ser negativa
	Ganancia float64 `json:"ganancia" gorm:"type:decimal(10,2);not null"`
	// EstadoPago pendiente/parcial/pagado, función pura de la suma de pagos
	EstadoPago string         `json:"estado_pago" gorm:"size:20;not null;default:pendiente"`
	Estado     string         `json:"estado" gorm:"size:20;not null;default:editado"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	Pagos []DecoracionPago `json:"pagos,omitempty" gorm:"foreignKey:DecoracionItemID"`
}

// TableName nombre de tabla
func (DecoracionItem) TableName() string {
	return "decoracion_items"
}

// DecoracionPago abono contra un ítem de decoración. Nunca se edita ni se
// elimina una vez creado.
type DecoracionPago struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	DecoracionItemID uint      `json:"decoracion_item_id" gorm:"index;not null"`
	Monto            float64   `json:"monto" gorm:"type:decimal(10,2);not null"`
	Metodo           string    `json:"metodo" gorm:"size:30"`
	Fecha            time.Time `json:"fecha" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName nombre de tabla
func (DecoracionPago) TableName() string {
	return "decoracion_pagos"
}
