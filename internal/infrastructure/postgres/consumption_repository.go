package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/spog-api/internal/domain/entity"
	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)

// ConsumptionRepo implementación de ConsumptionRepository sobre PostgreSQL
// (usable con pool o tx).
type ConsumptionRepo struct {
	q Querier
}

// NewConsumptionRepository construye el adaptador de consumos. Pasar pool o tx (Querier).
func NewConsumptionRepository(q Querier) *ConsumptionRepo {
	return &ConsumptionRepo{q: q}
}

// Create persiste un evento de consumo.
func (r *ConsumptionRepo) Create(c *entity.Consumption) error {
	query := `
		INSERT INTO consumptions (id, item_id, user_id, quantity, unit,
			converted_quantity, cost, work_order, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ItemID, c.UserID, c.Quantity, c.Unit,
		c.ConvertedQuantity, c.Cost, c.WorkOrder, c.Notes, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consumption: %w", err)
	}
	return nil
}

// ListByItem devuelve los consumos de un ítem, más recientes primero.
func (r *ConsumptionRepo) ListByItem(itemID string, limit, offset int) ([]entity.Consumption, error) {
	query := `
		SELECT id, item_id, user_id, quantity, unit, converted_quantity,
			cost, work_order, notes, created_at
		FROM consumptions
		WHERE item_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	defer rows.Close()

	var events []entity.Consumption
	for rows.Next() {
		var c entity.Consumption
		if err := rows.Scan(
			&c.ID, &c.ItemID, &c.UserID, &c.Quantity, &c.Unit,
			&c.ConvertedQuantity, &c.Cost, &c.WorkOrder, &c.Notes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		events = append(events, c)
	}
	return events, rows.Err()
}

// TotalsByPeriod agrega los consumos por ítem en el período (SUM en SQL),
// ordenados por cantidad consumida descendente.
func (r *ConsumptionRepo) TotalsByPeriod(from, to time.Time) ([]repository.ConsumptionTotal, error) {
	query := `
		SELECT c.item_id, i.name, i.part_number, i.unit,
			COALESCE(SUM(c.converted_quantity), 0),
			COALESCE(SUM(c.cost), 0),
			COUNT(*)
		FROM consumptions c
		JOIN items i ON i.id = c.item_id
		WHERE c.created_at >= $1 AND c.created_at <= $2
		GROUP BY c.item_id, i.name, i.part_number, i.unit
		ORDER BY 5 DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("consumption totals: %w", err)
	}
	defer rows.Close()

	var totals []repository.ConsumptionTotal
	for rows.Next() {
		var t repository.ConsumptionTotal
		if err := rows.Scan(
			&t.ItemID, &t.ItemName, &t.PartNumber, &t.Unit,
			&t.TotalQuantity, &t.TotalCost, &t.EventCount,
		); err != nil {
			return nil, fmt.Errorf("scan consumption total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
