package entity

import "time"

// Client representa un cliente final. Visible y mutable solo por su creador;
// IsDeleted lo archiva (oculta de listados y lecturas) sin destruir datos.
// No existe transición de des-archivado: archivado solo admite borrado físico.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedBy string // usuario propietario
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
