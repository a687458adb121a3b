package repository

import "github.com/jcampos/albaranes-api/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
//
// Alcance: createdBy = userID OR company = company (la cláusula de compañía
// solo aplica con company no vacía). El listado excluye archivados; el resto
// de operaciones no, para que un proyecto archivado siga alcanzable y pueda
// restaurarse o borrarse.
type ProjectRepository interface {
	Create(project *entity.Project) error
	// ListAccessible devuelve proyectos no archivados ordenados por fecha de creación descendente.
	ListAccessible(userID, company string) ([]*entity.Project, error)
	GetAccessible(id, userID, company string) (*entity.Project, error)
	// UpdateAccessible actualiza name/clientID en una operación condicional.
	UpdateAccessible(project *entity.Project, userID, company string) (*entity.Project, error)
	// SetArchived fija el estado de archivado (true = archivar, false = restaurar).
	SetArchived(id, userID, company string, archived bool) (*entity.Project, error)
	DeleteAccessible(id, userID, company string) (bool, error)
}
