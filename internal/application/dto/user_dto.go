package dto

import "time"

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// TokenResponse token de sesión.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginRequest inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidateEmailRequest código de verificación de 6 dígitos.
type ValidateEmailRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// ProfileRequest actualización del perfil del usuario autenticado.
type ProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// CompanyRequest actualización de los datos de compañía del usuario autenticado.
type CompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CompanyResponse compañía embebida en la respuesta de usuario.
type CompanyResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ProfileResponse perfil embebido en la respuesta de usuario.
type ProfileResponse struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UserResponse usuario sin campos sensibles (sin hash ni código de validación).
type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	IsValidated bool            `json:"isValidated"`
	Role        string          `json:"role"`
	Company     CompanyResponse `json:"company"`
	Profile     ProfileResponse `json:"profile"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
