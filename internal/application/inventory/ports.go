package inventory

import (
	"context"

	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el descuento del
// saldo y el registro del evento de consumo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		consumptionRepo repository.ConsumptionRepository,
	) error) error
}
