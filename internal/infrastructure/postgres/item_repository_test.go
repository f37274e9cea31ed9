package postgres

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/internal/domain/entity"
	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

func setupItemRepo(t *testing.T) (*ItemRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewItemRepository(mock), mock
}

var itemCols = []string{
	"id", "name", "description", "category", "part_number", "current_balance",
	"original_amount", "unit", "location", "unit_cost", "status",
	"created_at", "updated_at", "created_by",
}

func sampleItem() entity.Item {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return entity.Item{
		ID:             "item-1",
		Name:           "Aceite 15W40",
		Description:    "Aceite de motor",
		Category:       entity.CategoryOil,
		PartNumber:     "OIL-15W40",
		CurrentBalance: 80,
		OriginalAmount: 100,
		Unit:           "L",
		Location:       "Estante B2",
		UnitCost:       decimal.NewFromFloat(12.5),
		Status:         entity.ItemStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      "user-1",
	}
}

func itemRow(it entity.Item) *pgxmock.Rows {
	return pgxmock.NewRows(itemCols).AddRow(
		it.ID, it.Name, it.Description, it.Category, it.PartNumber,
		it.CurrentBalance, it.OriginalAmount, it.Unit, it.Location,
		it.UnitCost, it.Status, it.CreatedAt, it.UpdatedAt, it.CreatedBy,
	)
}

func TestItemRepo_GetByID(t *testing.T) {
	repo, mock := setupItemRepo(t)
	defer mock.Close()

	it := sampleItem()
	mock.ExpectQuery("(?s)SELECT .+ FROM items WHERE id = \\$1").
		WithArgs(it.ID).
		WillReturnRows(itemRow(it))

	got, err := repo.GetByID(it.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, it.ID, got.ID)
	assert.Equal(t, it.PartNumber, got.PartNumber)
	assert.Equal(t, 80.0, got.CurrentBalance)
	assert.True(t, got.UnitCost.Equal(it.UnitCost))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_GetByID_NoExiste(t *testing.T) {
	repo, mock := setupItemRepo(t)
	defer mock.Close()

	mock.ExpectQuery("(?s)SELECT .+ FROM items WHERE id = \\$1").
		WithArgs("no-existe").
		WillReturnRows(pgxmock.NewRows(itemCols))

	got, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got, "ítem inexistente devuelve nil, nil")
}

func TestItemRepo_GetForUpdate_BloqueaFila(t *testing.T) {
	repo, mock := setupItemRepo(t)
	defer mock.Close()

	it := sampleItem()
	mock.ExpectQuery("(?s)SELECT .+ FROM items WHERE id = \\$1 FOR UPDATE").
		WithArgs(it.ID).
		WillReturnRows(itemRow(it))

	got, err := repo.GetForUpdate(it.ID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_Create_PartNumberDuplicado(t *testing.T) {
	repo, mock := setupItemRepo(t)
	defer mock.Close()

	it := sampleItem()
	mock.ExpectExec("INSERT INTO items").
		WithArgs(it.ID, it.Name, it.Description, it.Category, it.PartNumber,
			it.CurrentBalance, it.OriginalAmount, it.Unit, it.Location,
			it.UnitCost, it.Status, it.CreatedAt, it.UpdatedAt, it.CreatedBy).
		WillReturnError(errUnique23505{})

	err := repo.Create(&it)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// errUnique23505 simula una violación de constraint único.
type errUnique23505 struct{}

func (errUnique23505) Error() string { return "ERROR: duplicate key (SQLSTATE 23505)" }

func TestItemRepo_UpdateBalance(t *testing.T) {
	repo, mock := setupItemRepo(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE items SET current_balance").
		WithArgs("item-1", 0.75).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateBalance("item-1", 0.75))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_UpdateBalance_NoExiste(t *testing.T) {
	repo, mock := setupItemRepo(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE items SET current_balance").
		WithArgs("no-existe", 1.0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.UpdateBalance("no-existe", 1.0), domain.ErrNotFound)
}

func TestItemRepo_List_Filtros(t *testing.T) {
	repo, mock := setupItemRepo(t)
	defer mock.Close()

	it := sampleItem()
	mock.ExpectQuery("(?s)SELECT .+ FROM items").
		WithArgs("oil", "active", 20, 0).
		WillReturnRows(itemRow(it))

	items, err := repo.List(repository.ItemFilter{
		Category: "oil", Status: "active", Limit: 20, Offset: 0,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, it.Name, items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
