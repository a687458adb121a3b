package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcampos/albaranes-api/internal/domain/entity"
	"github.com/jcampos/albaranes-api/internal/domain/repository"
)

var _ repository.AlbaranRepository = (*AlbaranRepo)(nil)

const albaranColumns = `id, cliente_id, productos, total, fecha, usuario`

// AlbaranRepo implementación de AlbaranRepository sobre PostgreSQL.
// Las líneas (productos) se guardan como JSONB, conservando la forma de
// documento del albarán; el alcance usuario = $owner va en cada sentencia.
type AlbaranRepo struct {
	q Querier
}

// NewAlbaranRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlbaranRepository(q Querier) *AlbaranRepo {
	return &AlbaranRepo{q: q}
}

// Create persiste un nuevo albarán.
func (r *AlbaranRepo) Create(albaran *entity.Albaran) error {
	productos, err := json.Marshal(albaran.Productos)
	if err != nil {
		return fmt.Errorf("marshal productos: %w", err)
	}
	query := `
		INSERT INTO albaranes (` + albaranColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(context.Background(), query,
		albaran.ID, albaran.ClienteID, productos, albaran.Total, albaran.Fecha, albaran.Usuario,
	)
	if err != nil {
		return fmt.Errorf("insert albaran: %w", err)
	}
	return nil
}

// ListOwned lista los albaranes del propietario.
func (r *AlbaranRepo) ListOwned(userID string) ([]*entity.Albaran, error) {
	query := `SELECT ` + albaranColumns + ` FROM albaranes WHERE usuario = $1`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list albaranes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Albaran
	for rows.Next() {
		a, err := scanAlbaran(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetOwned obtiene un albarán dentro del alcance del propietario.
func (r *AlbaranRepo) GetOwned(id, userID string) (*entity.Albaran, error) {
	query := `SELECT ` + albaranColumns + ` FROM albaranes WHERE id = $1 AND usuario = $2`
	return r.getOne(query, id, userID)
}

// UpdateOwned aplica el parche parcial en una única sentencia condicional:
// los argumentos NULL conservan el valor almacenado vía COALESCE. Nótese que
// total NO se recalcula al cambiar productos: si el llamador no lo envía, se
// conserva el total anterior (comportamiento heredado, ver test).
func (r *AlbaranRepo) UpdateOwned(id, userID string, productos []entity.Producto, total *decimal.Decimal) (*entity.Albaran, error) {
	var prodArg any
	if productos != nil {
		b, err := json.Marshal(productos)
		if err != nil {
			return nil, fmt.Errorf("marshal productos: %w", err)
		}
		prodArg = b
	}
	var totalArg any
	if total != nil {
		totalArg = *total
	}
	query := `
		UPDATE albaranes
		SET productos = COALESCE($3::jsonb, productos), total = COALESCE($4::numeric, total)
		WHERE id = $1 AND usuario = $2
		RETURNING ` + albaranColumns
	return r.getOne(query, id, userID, prodArg, totalArg)
}

// DeleteOwned borra físicamente dentro del alcance del propietario.
func (r *AlbaranRepo) DeleteOwned(id, userID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM albaranes WHERE id = $1 AND usuario = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete albaran: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AlbaranRepo) getOne(query string, args ...any) (*entity.Albaran, error) {
	a, err := scanAlbaran(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get albaran: %w", err)
	}
	return a, nil
}

func scanAlbaran(row pgx.Row) (*entity.Albaran, error) {
	var a entity.Albaran
	var productos []byte
	err := row.Scan(&a.ID, &a.ClienteID, &productos, &a.Total, &a.Fecha, &a.Usuario)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(productos, &a.Productos); err != nil {
		return nil, fmt.Errorf("unmarshal productos: %w", err)
	}
	return &a, nil
}
