package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcampos/albaranes-api/internal/domain"
	"github.com/jcampos/albaranes-api/internal/domain/entity"
	"github.com/jcampos/albaranes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, email, phone, address, created_by, is_deleted, created_at, updated_at`

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
//
// El predicado de propietario (created_by = $owner AND is_deleted = false) va
// en el WHERE de cada sentencia: filtro y mutación son una única operación
// condicional, sin ventana entre comprobar y actuar.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente. Devuelve ErrDuplicate si el email ya existe.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Address,
		client.CreatedBy, client.IsDeleted, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// ListOwned lista los clientes no archivados del propietario.
func (r *ClientRepo) ListOwned(ownerID string) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE created_by = $1 AND is_deleted = false`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetOwned obtiene un cliente dentro del alcance del propietario. (nil, nil)
// tanto si no existe como si existe pero no es alcanzable.
func (r *ClientRepo) GetOwned(id, ownerID string) (*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE id = $1 AND created_by = $2 AND is_deleted = false`
	return r.getOne(query, id, ownerID)
}

// UpdateOwned actualiza los campos editables en una sentencia condicional.
func (r *ClientRepo) UpdateOwned(client *entity.Client) (*entity.Client, error) {
	query := `
		UPDATE clients SET name = $3, email = $4, phone = $5, address = $6, updated_at = now()
		WHERE id = $1 AND created_by = $2 AND is_deleted = false
		RETURNING ` + clientColumns
	updated, err := r.getOne(query, client.ID, client.CreatedBy, client.Name, client.Email, client.Phone, client.Address)
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	return updated, err
}

// ArchiveOwned marca isDeleted=true. El predicado excluye los ya archivados,
// por lo que archivar dos veces no alcanza fila y devuelve (nil, nil).
func (r *ClientRepo) ArchiveOwned(id, ownerID string) (*entity.Client, error) {
	query := `
		UPDATE clients SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND created_by = $2 AND is_deleted = false
		RETURNING ` + clientColumns
	return r.getOne(query, id, ownerID)
}

// DeleteOwned borra físicamente, archivado o no (sin cláusula is_deleted).
func (r *ClientRepo) DeleteOwned(id, ownerID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM clients WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ClientRepo) getOne(query string, args ...any) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.CreatedBy, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
