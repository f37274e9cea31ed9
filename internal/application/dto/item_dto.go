package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description" validate:"omitempty,max=1000"`
	Category       string          `json:"category" validate:"required,oneof=sealant paint oil grease"`
	PartNumber     string          `json:"part_number" validate:"required,min=1,max=100"`
	OriginalAmount float64         `json:"original_amount" validate:"required,gt=0"`
	Unit           string          `json:"unit" validate:"required"`
	Location       string          `json:"location" validate:"omitempty,max=200"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
}

// UpdateItemRequest body para PUT /api/items/:id. El saldo no se edita por
// aquí; solo cambia vía consumos.
type UpdateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
	Location    string          `json:"location" validate:"omitempty,max=200"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Status      string          `json:"status" validate:"required,oneof=active inactive"`
}

// ListItemsRequest query params de GET /api/items.
type ListItemsRequest struct {
	PageRequest
	Category string `query:"category" validate:"omitempty,oneof=sealant paint oil grease"`
	Status   string `query:"status" validate:"omitempty,oneof=active inactive"`
}

// ItemResponse salida de un ítem. StockPercentage y StockStatus son derivados
// con el motor de unidades al momento de la consulta, no se almacenan.
type ItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	PartNumber      string          `json:"part_number"`
	CurrentBalance  float64         `json:"current_balance"`
	OriginalAmount  float64         `json:"original_amount"`
	Unit            string          `json:"unit"`
	Location        string          `json:"location,omitempty"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Status          string          `json:"status"`
	StockPercentage float64         `json:"stock_percentage"`
	StockStatus     string          `json:"stock_status"` // normal, low, critical
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ListItemsResponse salida de GET /api/items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
