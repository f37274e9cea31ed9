package inventory

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/spog-api/internal/application/dto"
	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/internal/domain/entity"
	"github.com/tu-usuario/spog-api/internal/domain/measure"
	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

// ConsumptionUseCase registra consumos de forma transaccional: bloquea la
// fila del ítem (SELECT FOR UPDATE), valida el consumo con el motor de
// unidades, descuenta el saldo y persiste el evento en la misma transacción.
type ConsumptionUseCase struct {
	txRunner        TxRunner
	itemRepo        repository.ItemRepository
	consumptionRepo repository.ConsumptionRepository
}

// NewConsumptionUseCase construye el caso de uso.
func NewConsumptionUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	consumptionRepo repository.ConsumptionRepository,
) *ConsumptionUseCase {
	return &ConsumptionUseCase{
		txRunner:        txRunner,
		itemRepo:        itemRepo,
		consumptionRepo: consumptionRepo,
	}
}

// RegisterConsumption valida y aplica un consumo sobre un ítem.
//
// Reglas:
//   - La cantidad debe ser finita y estrictamente positiva (validación de
//     request; el motor de unidades no la repite).
//   - La unidad del consumo debe ser interoperable con la del ítem: un par
//     desconocido o de familias distintas devuelve ErrUnitMismatch en lugar
//     de degradar a factor 1.
//   - El saldo resultante nunca queda negativo (ErrInsufficientStock);
//     consumir exactamente el saldo disponible es válido.
func (uc *ConsumptionUseCase) RegisterConsumption(
	ctx context.Context,
	itemID, userID string,
	in dto.RegisterConsumptionRequest,
) (*dto.RegisterConsumptionResponse, error) {
	if in.Quantity <= 0 || math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}

	// Existencia fuera de la tx para responder 404 sin abrir transacción.
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Status != entity.ItemStatusActive {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	var resp *dto.RegisterConsumptionResponse

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		consumptionRepo repository.ConsumptionRepository,
	) error {
		// Bloquea la fila del ítem para evitar consumos concurrentes sobre el
		// mismo saldo.
		locked, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		converted, err := measure.TryConvert(in.Quantity, in.Unit, locked.Unit)
		if err != nil {
			if errors.Is(err, measure.ErrUnknownUnit) || errors.Is(err, measure.ErrFamilyMismatch) {
				return domain.ErrUnitMismatch
			}
			return err
		}
		if !measure.IsValidConsumption(in.Quantity, in.Unit, locked.CurrentBalance, locked.Unit) {
			return domain.ErrInsufficientStock
		}

		newBalance := locked.CurrentBalance - converted
		if err := itemRepo.UpdateBalance(itemID, newBalance); err != nil {
			return err
		}

		cost := locked.UnitCost.Mul(decimal.NewFromFloat(converted)).Round(2)
		c := &entity.Consumption{
			ID:                uuid.New().String(),
			ItemID:            itemID,
			UserID:            userID,
			Quantity:          in.Quantity,
			Unit:              in.Unit,
			ConvertedQuantity: converted,
			Cost:              cost,
			WorkOrder:         in.WorkOrder,
			Notes:             in.Notes,
			CreatedAt:         now,
		}
		if err := consumptionRepo.Create(c); err != nil {
			return err
		}

		resp = &dto.RegisterConsumptionResponse{
			Consumption: toConsumptionResponse(c),
			NewBalance:  newBalance,
			StockStatus: string(measure.Classify(newBalance, locked.OriginalAmount)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// MaxConsumption devuelve el saldo del ítem expresado en la unidad pedida,
// para pre-llenar el máximo del formulario de consumo. La unidad debe ser
// interoperable con la del ítem.
func (uc *ConsumptionUseCase) MaxConsumption(itemID, unit string) (*dto.MaxConsumptionResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if unit == "" {
		unit = item.Unit
	}
	if _, err := measure.TryConvert(item.CurrentBalance, item.Unit, unit); err != nil {
		return nil, domain.ErrUnitMismatch
	}
	return &dto.MaxConsumptionResponse{
		ItemID:    item.ID,
		Unit:      unit,
		MaxAmount: measure.MaxConsumptionAmount(item.CurrentBalance, item.Unit, unit),
	}, nil
}

// History devuelve los consumos de un ítem, más recientes primero.
func (uc *ConsumptionUseCase) History(itemID string, page dto.PageRequest) ([]dto.ConsumptionResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	events, err := uc.consumptionRepo.ListByItem(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsumptionResponse, 0, len(events))
	for i := range events {
		out = append(out, toConsumptionResponse(&events[i]))
	}
	return out, nil
}

func toConsumptionResponse(c *entity.Consumption) dto.ConsumptionResponse {
	return dto.ConsumptionResponse{
		ID:                c.ID,
		ItemID:            c.ItemID,
		UserID:            c.UserID,
		Quantity:          c.Quantity,
		Unit:              c.Unit,
		ConvertedQuantity: c.ConvertedQuantity,
		Cost:              c.Cost,
		WorkOrder:         c.WorkOrder,
		Notes:             c.Notes,
		CreatedAt:         c.CreatedAt,
	}
}
