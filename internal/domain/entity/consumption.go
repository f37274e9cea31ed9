package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumption representa un evento de consumo sobre un ítem del inventario.
// Quantity/Unit son los valores tal como los registró el usuario;
// ConvertedQuantity es la cantidad ya expresada en la unidad de
// almacenamiento del ítem, que es la que se descuenta del saldo.
type Consumption struct {
	ID                string
	ItemID            string
	UserID            string
	Quantity          float64
	Unit              string
	ConvertedQuantity float64         // en la unidad de almacenamiento del ítem
	Cost              decimal.Decimal // ConvertedQuantity * Item.UnitCost al momento del consumo
	WorkOrder         string          // orden de trabajo de mantenimiento asociada
	Notes             string
	CreatedAt         time.Time
}
