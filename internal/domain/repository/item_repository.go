package repository

import "github.com/tu-usuario/spog-api/internal/domain/entity"

// ItemFilter filtros opcionales para listar ítems.
type ItemFilter struct {
	Category string // vacío = todas
	Status   string // vacío = todos
	Limit    int
	Offset   int
}

// ItemRepository puerto de persistencia de ítems SPOG.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Item, error)
	List(filter ItemFilter) ([]entity.Item, error)
	Count(filter ItemFilter) (int, error)
	Update(item *entity.Item) error
	// UpdateBalance actualiza únicamente el saldo actual del ítem.
	UpdateBalance(id string, newBalance float64) error
	Delete(id string) error
}
