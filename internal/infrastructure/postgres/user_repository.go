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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password_hash, is_validated, validation_code,
	company_name, company_address, company_phone,
	profile_full_name, profile_phone, profile_address,
	role, is_deleted, created_at, updated_at`

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.IsValidated, user.ValidationCode,
		user.Company.Name, user.Company.Address, user.Company.Phone,
		user.Profile.FullName, user.Profile.Phone, user.Profile.Address,
		user.Role, user.IsDeleted, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// Validate marca el usuario como validado y consume el código en una sola
// operación condicional. false = el código no coincide (o ya fue consumido).
func (r *UserRepo) Validate(id, code string) (bool, error) {
	query := `
		UPDATE users SET is_validated = true, validation_code = NULL, updated_at = now()
		WHERE id = $1 AND validation_code = $2`
	tag, err := r.q.Exec(context.Background(), query, id, code)
	if err != nil {
		return false, fmt.Errorf("validate user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateProfile reemplaza los datos de perfil y devuelve el usuario actualizado.
func (r *UserRepo) UpdateProfile(id string, profile entity.Profile) (*entity.User, error) {
	query := `
		UPDATE users SET profile_full_name = $2, profile_phone = $3, profile_address = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	return r.getOne(query, id, profile.FullName, profile.Phone, profile.Address)
}

// UpdateCompany reemplaza los datos de compañía y devuelve el usuario actualizado.
func (r *UserRepo) UpdateCompany(id string, company entity.Company) (*entity.User, error) {
	query := `
		UPDATE users SET company_name = $2, company_address = $3, company_phone = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	return r.getOne(query, id, company.Name, company.Address, company.Phone)
}

func (r *UserRepo) getOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	var code *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsValidated, &code,
		&u.Company.Name, &u.Company.Address, &u.Company.Phone,
		&u.Profile.FullName, &u.Profile.Phone, &u.Profile.Address,
		&u.Role, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if code != nil {
		u.ValidationCode = *code
	}
	return &u, nil
}
