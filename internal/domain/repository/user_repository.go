package repository

import "github.com/jcampos/albaranes-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (Identity Store).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// Validate marca el usuario como validado y anula el código en una sola
	// operación condicional: solo aplica si el código coincide. Devuelve false
	// si no hubo coincidencia (código incorrecto o ya consumido).
	Validate(id, code string) (bool, error)
	UpdateProfile(id string, profile entity.Profile) (*entity.User, error)
	UpdateCompany(id string, company entity.Company) (*entity.User, error)
}
