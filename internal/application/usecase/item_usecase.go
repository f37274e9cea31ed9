package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/spog-api/internal/application/dto"
	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/internal/domain/entity"
	"github.com/tu-usuario/spog-api/internal/domain/measure"
	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

// ItemUseCase aplica reglas de negocio para ítems SPOG.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso con el puerto de persistencia.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create da de alta un ítem. El saldo inicial es la cantidad original y la
// unidad debe estar registrada en el motor de unidades.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest, createdBy string) (*dto.ItemResponse, error) {
	if _, ok := measure.UnitFamily(in.Unit); !ok {
		return nil, domain.ErrUnitMismatch
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		PartNumber:     in.PartNumber,
		CurrentBalance: in.OriginalAmount,
		OriginalAmount: in.OriginalAmount,
		Unit:           in.Unit,
		Location:       in.Location,
		UnitCost:       in.UnitCost,
		Status:         entity.ItemStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      createdBy,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// GetByID obtiene un ítem por ID con su estado de stock derivado.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return ToItemResponse(item), nil
}

// List devuelve los ítems filtrados y paginados, cada uno con su porcentaje y
// estado de stock derivados.
func (uc *ItemUseCase) List(in dto.ListItemsRequest) (*dto.ListItemsResponse, error) {
	in.DefaultPage()
	filter := repository.ItemFilter{
		Category: in.Category,
		Status:   in.Status,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}
	items, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *ToItemResponse(&items[i]))
	}
	return &dto.ListItemsResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Update modifica los campos editables de un ítem (el saldo solo cambia vía
// consumos).
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Location = in.Location
	item.UnitCost = in.UnitCost
	item.Status = in.Status
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// Delete elimina un ítem del inventario.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToItemResponse convierte la entidad a DTO de salida, derivando porcentaje y
// estado de stock con el motor de unidades.
func ToItemResponse(item *entity.Item) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		PartNumber:      item.PartNumber,
		CurrentBalance:  item.CurrentBalance,
		OriginalAmount:  item.OriginalAmount,
		Unit:            item.Unit,
		Location:        item.Location,
		UnitCost:        item.UnitCost,
		Status:          item.Status,
		StockPercentage: measure.StockPercentage(item.CurrentBalance, item.OriginalAmount),
		StockStatus:     string(measure.Classify(item.CurrentBalance, item.OriginalAmount)),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
