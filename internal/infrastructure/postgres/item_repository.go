package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/internal/domain/entity"
	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, description, category, part_number, current_balance,
		original_amount, unit, location, unit_cost, status, created_at, updated_at, created_by`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, description, category, part_number, current_balance,
			original_amount, unit, location, unit_cost, status, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.PartNumber,
		item.CurrentBalance, item.OriginalAmount, item.Unit, item.Location,
		item.UnitCost, item.Status, item.CreatedAt, item.UpdatedAt, item.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil, nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido cuando el Querier es una transacción.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.Name, &it.Description, &it.Category, &it.PartNumber,
		&it.CurrentBalance, &it.OriginalAmount, &it.Unit, &it.Location,
		&it.UnitCost, &it.Status, &it.CreatedAt, &it.UpdatedAt, &it.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// List devuelve los ítems filtrados por categoría/estado, paginados y
// ordenados por nombre.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]entity.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY name
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query,
		filter.Category, filter.Status, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Category, &it.PartNumber,
			&it.CurrentBalance, &it.OriginalAmount, &it.Unit, &it.Location,
			&it.UnitCost, &it.Status, &it.CreatedAt, &it.UpdatedAt, &it.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Count devuelve el total de ítems que cumplen el filtro (sin paginación).
func (r *ItemRepo) Count(filter repository.ItemFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM items
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR status = $2)`
	var total int
	err := r.q.QueryRow(context.Background(), query, filter.Category, filter.Status).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}

// Update actualiza los campos editables de un ítem (el saldo se cambia con UpdateBalance).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, description = $3, location = $4, unit_cost = $5,
			status = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Location, item.UnitCost,
		item.Status, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBalance actualiza únicamente el saldo actual del ítem.
func (r *ItemRepo) UpdateBalance(id string, newBalance float64) error {
	query := `UPDATE items SET current_balance = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, newBalance)
	if err != nil {
		return fmt.Errorf("update item balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem.
func (r *ItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
