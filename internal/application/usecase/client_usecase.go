package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jcampos/albaranes-api/internal/application/dto"
	"github.com/jcampos/albaranes-api/internal/application/ports"
	"github.com/jcampos/albaranes-api/internal/domain"
	"github.com/jcampos/albaranes-api/internal/domain/entity"
	"github.com/jcampos/albaranes-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes. Todo el acceso queda acotado al
// propietario: el repositorio no expone ninguna operación sin predicado.
type ClientUseCase struct {
	repo     repository.ClientRepository
	notifier ports.Notifier
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, notifier ports.Notifier) *ClientUseCase {
	return &ClientUseCase{repo: repo, notifier: notifier}
}

// Create crea un cliente propiedad del sujeto. Devuelve ErrDuplicate si el
// email ya existe.
func (uc *ClientUseCase) Create(ownerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedBy: ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	uc.notifier.Notify(fmt.Sprintf("Cliente creado: %s (%s) por el usuario %s", client.Name, client.Email, ownerID))
	return toClientResponse(client), nil
}

// List lista los clientes no archivados del sujeto.
func (uc *ClientUseCase) List(ownerID string) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.ListOwned(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Get obtiene un cliente alcanzable por el sujeto. Inexistente y ajeno son
// indistinguibles: ambos devuelven ErrNotFound.
func (uc *ClientUseCase) Get(ownerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetOwned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente alcanzable.
func (uc *ClientUseCase) Update(ownerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	updated, err := uc.repo.UpdateOwned(&entity.Client{
		ID:        id,
		CreatedBy: ownerID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	uc.notifier.Notify(fmt.Sprintf("Cliente actualizado: %s por el usuario %s", updated.Name, ownerID))
	return toClientResponse(updated), nil
}

// Archive archiva (soft delete) un cliente. Archivar un cliente ya archivado
// devuelve ErrNotFound: el predicado lo deja fuera de alcance, no es un no-op.
func (uc *ClientUseCase) Archive(ownerID, id string) error {
	archived, err := uc.repo.ArchiveOwned(id, ownerID)
	if err != nil {
		return err
	}
	if archived == nil {
		return domain.ErrNotFound
	}
	uc.notifier.Notify(fmt.Sprintf("Cliente archivado: %s por el usuario %s", archived.Name, ownerID))
	return nil
}

// Delete borra físicamente un cliente del sujeto, archivado o no.
func (uc *ClientUseCase) Delete(ownerID, id string) error {
	ok, err := uc.repo.DeleteOwned(id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.notifier.Notify(fmt.Sprintf("Cliente eliminado: %s por el usuario %s", id, ownerID))
	return nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
