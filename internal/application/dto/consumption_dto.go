package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterConsumptionRequest body para POST /api/items/:id/consumptions.
// La positividad de la cantidad se valida aquí (capa de request), no en el
// motor de unidades.
type RegisterConsumptionRequest struct {
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	Unit      string  `json:"unit" validate:"required"`
	WorkOrder string  `json:"work_order" validate:"omitempty,max=100"`
	Notes     string  `json:"notes" validate:"omitempty,max=1000"`
}

// ConsumptionResponse salida de un evento de consumo.
type ConsumptionResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	UserID            string          `json:"user_id"`
	Quantity          float64         `json:"quantity"`
	Unit              string          `json:"unit"`
	ConvertedQuantity float64         `json:"converted_quantity"`
	Cost              decimal.Decimal `json:"cost"`
	WorkOrder         string          `json:"work_order,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// RegisterConsumptionResponse salida de POST /api/items/:id/consumptions:
// el evento registrado más el estado resultante del ítem.
type RegisterConsumptionResponse struct {
	Consumption ConsumptionResponse `json:"consumption"`
	NewBalance  float64             `json:"new_balance"`
	StockStatus string              `json:"stock_status"`
}

// MaxConsumptionResponse salida de GET /api/items/:id/max-consumption.
// MaxAmount es la cota superior para el atributo max del formulario.
type MaxConsumptionResponse struct {
	ItemID    string  `json:"item_id"`
	Unit      string  `json:"unit"`
	MaxAmount float64 `json:"max_amount"`
}
