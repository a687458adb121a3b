package repository

import "github.com/jcampos/albaranes-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
//
// El predicado de alcance (createdBy = ownerID AND isDeleted = false) va
// embebido en cada operación: un cliente inexistente y uno ajeno son
// indistinguibles (ambos devuelven nil). Las mutaciones aplican predicado y
// cambio en una única operación condicional del almacén.
type ClientRepository interface {
	Create(client *entity.Client) error
	// ListOwned devuelve los clientes no archivados del propietario.
	ListOwned(ownerID string) ([]*entity.Client, error)
	// GetOwned devuelve (nil, nil) si no existe, está archivado o no pertenece al propietario.
	GetOwned(id, ownerID string) (*entity.Client, error)
	// UpdateOwned actualiza name/email/phone/address dentro del alcance y
	// devuelve la entidad resultante, o (nil, nil) si el predicado no alcanzó fila.
	UpdateOwned(client *entity.Client) (*entity.Client, error)
	// ArchiveOwned marca isDeleted=true. Un cliente ya archivado queda fuera
	// del predicado y devuelve (nil, nil): archivar dos veces no es un no-op.
	ArchiveOwned(id, ownerID string) (*entity.Client, error)
	// DeleteOwned borra físicamente dentro del alcance de propietario,
	// independientemente del estado de archivado. Devuelve false si no alcanzó fila.
	DeleteOwned(id, ownerID string) (bool, error)
}
