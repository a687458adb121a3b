package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoRequest línea de albarán en peticiones.
type ProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CreateAlbaranRequest alta de albarán. El total se calcula siempre en el
// servidor a partir de las líneas.
type CreateAlbaranRequest struct {
	Cliente   string            `json:"cliente" validate:"required"`
	Productos []ProductoRequest `json:"productos" validate:"required,min=1,dive"`
}

// UpdateAlbaranRequest parche parcial de albarán: los campos nil no se tocan.
// Si viene Total se almacena tal cual, sin recalcular contra Productos.
type UpdateAlbaranRequest struct {
	Productos []ProductoRequest `json:"productos" validate:"omitempty,min=1,dive"`
	Total     *decimal.Decimal  `json:"total"`
}

// ProductoResponse línea de albarán en respuestas.
type ProductoResponse struct {
	Nombre         string          `json:"nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// AlbaranResponse albarán en respuestas.
type AlbaranResponse struct {
	ID        string             `json:"id"`
	Cliente   string             `json:"cliente"`
	Productos []ProductoResponse `json:"productos"`
	Total     decimal.Decimal    `json:"total"`
	Fecha     time.Time          `json:"fecha"`
	Usuario   string             `json:"usuario"`
}
