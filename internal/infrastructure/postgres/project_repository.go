package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcampos/albaranes-api/internal/domain/entity"
	"github.com/jcampos/albaranes-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, name, client_id, created_by, company, archived, created_at, updated_at`

// Predicado de alcance de proyectos para sentencias con id en $1: propietario
// o misma compañía. La cláusula de compañía solo aplica con compañía no vacía,
// para que dos usuarios sin compañía no compartan proyectos entre sí.
const projectScope = `(created_by = $2 OR (company <> '' AND company = $3))`

// ProjectRepo implementación de ProjectRepository sobre PostgreSQL.
//
// A diferencia de ClientRepo, el listado y las mutaciones usan ventanas de
// alcance distintas: listar excluye archivados, pero get/update/archive/
// unarchive/delete no, para que un proyecto archivado siga siendo operable.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.ClientID, project.CreatedBy,
		project.Company, project.Archived, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// ListAccessible lista proyectos no archivados, más recientes primero.
func (r *ProjectRepo) ListAccessible(userID, company string) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE archived = false AND (created_by = $1 OR (company <> '' AND company = $2))
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, company)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetAccessible obtiene un proyecto alcanzable, archivado o no.
func (r *ProjectRepo) GetAccessible(id, userID, company string) (*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects WHERE id = $1 AND ` + projectScope
	return r.getOne(query, id, userID, company)
}

// UpdateAccessible actualiza name y client_id en una sentencia condicional.
func (r *ProjectRepo) UpdateAccessible(project *entity.Project, userID, company string) (*entity.Project, error) {
	query := `
		UPDATE projects SET name = $4, client_id = $5, updated_at = now()
		WHERE id = $1 AND ` + projectScope + `
		RETURNING ` + projectColumns
	return r.getOne(query, project.ID, userID, company, project.Name, project.ClientID)
}

// SetArchived fija el estado de archivado dentro del alcance.
func (r *ProjectRepo) SetArchived(id, userID, company string, archived bool) (*entity.Project, error) {
	query := `
		UPDATE projects SET archived = $4, updated_at = now()
		WHERE id = $1 AND ` + projectScope + `
		RETURNING ` + projectColumns
	return r.getOne(query, id, userID, company, archived)
}

// DeleteAccessible borra físicamente dentro del alcance, archivado o no.
func (r *ProjectRepo) DeleteAccessible(id, userID, company string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM projects WHERE id = $1 AND `+projectScope, id, userID, company)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProjectRepo) getOne(query string, args ...any) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.ClientID, &p.CreatedBy,
		&p.Company, &p.Archived, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
