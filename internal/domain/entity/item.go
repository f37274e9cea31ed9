package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías SPOG (deben coincidir con el CHECK de la tabla items).
const (
	CategorySealant = "sealant" // sellantes
	CategoryPaint   = "paint"   // pinturas
	CategoryOil     = "oil"     // aceites
	CategoryGrease  = "grease"  // grasas
)

// Estados administrativos de un ítem (el estado de stock normal/low/critical
// es derivado, nunca se persiste).
const (
	ItemStatusActive   = "active"
	ItemStatusInactive = "inactive"
)

// Item representa un ítem del inventario SPOG. CurrentBalance y
// OriginalAmount se expresan en Unit; el saldo se descuenta con cada consumo
// registrado y nunca queda negativo.
type Item struct {
	ID             string
	Name           string
	Description    string
	Category       string // ver constantes Category*
	PartNumber     string // número de parte, único
	CurrentBalance float64
	OriginalAmount float64
	Unit           string // unidad de almacenamiento: L, mL, kg, g, m, cm, mm
	Location       string // bodega/estante
	UnitCost       decimal.Decimal // costo por unidad de almacenamiento
	Status         string // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string // UserID
}
