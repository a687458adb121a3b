package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jcampos/albaranes-api/internal/domain/entity"
)

// AlbaranRepository define el puerto de persistencia para Albaran.
// Alcance estricto por propietario (usuario = userID) en todas las operaciones.
type AlbaranRepository interface {
	Create(albaran *entity.Albaran) error
	ListOwned(userID string) ([]*entity.Albaran, error)
	GetOwned(id, userID string) (*entity.Albaran, error)
	// UpdateOwned aplica un parche parcial: productos y/o total solo se tocan
	// cuando vienen no-nil; el resto conserva el valor almacenado. Todo en una
	// única operación condicional dentro del alcance del propietario.
	UpdateOwned(id, userID string, productos []entity.Producto, total *decimal.Decimal) (*entity.Albaran, error)
	DeleteOwned(id, userID string) (bool, error)
}
