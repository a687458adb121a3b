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

// ProjectUseCase casos de uso de proyectos. El alcance es más amplio que el
// de clientes: creador o cualquier usuario de la misma compañía. La compañía
// del sujeto se resuelve contra el Identity Store en cada operación (el token
// solo transporta el ID).
type ProjectUseCase struct {
	projects repository.ProjectRepository
	clients  repository.ClientRepository
	users    repository.UserRepository
	notifier ports.Notifier
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(
	projects repository.ProjectRepository,
	clients repository.ClientRepository,
	users repository.UserRepository,
	notifier ports.Notifier,
) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, clients: clients, users: users, notifier: notifier}
}

// subjectCompany devuelve el nombre de compañía del sujeto (vacío = sin compañía).
func (uc *ProjectUseCase) subjectCompany(userID string) (string, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil || user.IsDeleted {
		return "", domain.ErrUnauthorized
	}
	return user.Company.Name, nil
}

// Create crea un proyecto tras comprobar que el cliente referenciado es
// alcanzable por el sujeto y no está archivado. Si no lo es, falla con
// ErrNotFound antes de persistir nada. La compañía del sujeto se copia al
// proyecto en el momento de la creación.
func (uc *ProjectUseCase) Create(userID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	company, err := uc.subjectCompany(userID)
	if err != nil {
		return nil, err
	}

	client, err := uc.clients.GetOwned(in.Client, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	project := &entity.Project{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ClientID:  in.Client,
		CreatedBy: userID,
		Company:   company,
		Archived:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.projects.Create(project); err != nil {
		return nil, err
	}
	uc.notifier.Notify(fmt.Sprintf("Proyecto creado: %s por el usuario %s", project.Name, userID))
	return toProjectResponse(project), nil
}

// List lista los proyectos no archivados alcanzables, más recientes primero.
func (uc *ProjectUseCase) List(userID string) ([]*dto.ProjectResponse, error) {
	company, err := uc.subjectCompany(userID)
	if err != nil {
		return nil, err
	}
	list, err := uc.projects.ListAccessible(userID, company)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Get obtiene un proyecto alcanzable, archivado o no.
func (uc *ProjectUseCase) Get(userID, id string) (*dto.ProjectResponse, error) {
	company, err := uc.subjectCompany(userID)
	if err != nil {
		return nil, err
	}
	project, err := uc.projects.GetAccessible(id, userID, company)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// Update actualiza nombre y cliente de un proyecto alcanzable.
func (uc *ProjectUseCase) Update(userID, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	company, err := uc.subjectCompany(userID)
	if err != nil {
		return nil, err
	}
	updated, err := uc.projects.UpdateAccessible(&entity.Project{
		ID:       id,
		Name:     in.Name,
		ClientID: in.Client,
	}, userID, company)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	uc.notifier.Notify(fmt.Sprintf("Proyecto actualizado: %s por el usuario %s", updated.Name, userID))
	return toProjectResponse(updated), nil
}

// Archive archiva un proyecto alcanzable.
func (uc *ProjectUseCase) Archive(userID, id string) (*dto.ProjectResponse, error) {
	return uc.setArchived(userID, id, true, "Proyecto archivado")
}

// Unarchive restaura un proyecto archivado. El proyecto archivado sigue
// dentro del alcance de las mutaciones, solo desaparece de los listados.
func (uc *ProjectUseCase) Unarchive(userID, id string) (*dto.ProjectResponse, error) {
	return uc.setArchived(userID, id, false, "Proyecto restaurado")
}

func (uc *ProjectUseCase) setArchived(userID, id string, archived bool, verb string) (*dto.ProjectResponse, error) {
	company, err := uc.subjectCompany(userID)
	if err != nil {
		return nil, err
	}
	project, err := uc.projects.SetArchived(id, userID, company, archived)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	uc.notifier.Notify(fmt.Sprintf("%s: %s por el usuario %s", verb, project.Name, userID))
	return toProjectResponse(project), nil
}

// Delete borra físicamente un proyecto alcanzable, archivado o no.
func (uc *ProjectUseCase) Delete(userID, id string) error {
	company, err := uc.subjectCompany(userID)
	if err != nil {
		return err
	}
	ok, err := uc.projects.DeleteAccessible(id, userID, company)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.notifier.Notify(fmt.Sprintf("Proyecto eliminado: %s por el usuario %s", id, userID))
	return nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Client:    p.ClientID,
		CreatedBy: p.CreatedBy,
		Company:   p.Company,
		Archived:  p.Archived,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
