package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto línea de un albarán.
type Producto struct {
	Nombre         string          `json:"nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// Albaran representa una nota de entrega. Alcance estrictamente por
// propietario (Usuario); no hay archivado, el borrado es siempre físico.
type Albaran struct {
	ID        string
	ClienteID string
	Productos []Producto
	Total     decimal.Decimal
	Fecha     time.Time
	Usuario   string // usuario propietario
}
