package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound cubre tanto "no existe" como "existe pero el sujeto no puede
	// alcanzarlo": ambos casos son indistinguibles para el llamador.
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrValidationCode     = errors.New("código de validación incorrecto")
	ErrUnauthorized       = errors.New("no autorizado")
)
