package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Company datos de la compañía embebidos en el usuario.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Profile datos personales embebidos en el usuario.
type Profile struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// User representa un usuario del sistema (sujeto autenticado).
// ValidationCode es de un solo uso: se anula al validar el correo.
// IsDeleted bloquea login y resolución de identidad sin borrar el registro.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	IsValidated    bool
	ValidationCode string // vacío = sin código pendiente
	Company        Company
	Profile        Profile
	Role           string // admin, user
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
