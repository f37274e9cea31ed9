package measure

// Status clasificación de salud del stock de un ítem.
type Status string

// Niveles de estado derivados del porcentaje de stock restante.
const (
	StatusNormal   Status = "normal"   // >= 20%
	StatusLow      Status = "low"      // >= 10% y < 20%
	StatusCritical Status = "critical" // < 10%
)

// Umbrales de clasificación (porcentaje de stock restante).
const (
	criticalThreshold = 10.0
	lowThreshold      = 20.0
)

// StockPercentage devuelve el porcentaje de stock restante respecto a la
// cantidad original. Si original <= 0 devuelve 0: un ítem sin cantidad
// original registrada no puede reclamar stock disponible.
func StockPercentage(current, original float64) float64 {
	if original <= 0 {
		return 0
	}
	return (current / original) * 100
}

// Classify deriva el estado normal/low/critical de un ítem a partir de su
// saldo actual y su cantidad original.
//
// Política para original <= 0 (caso sin definir en el comportamiento
// original): se clasifica como critical. Un ítem con original en cero es
// anómalo y no debe reportarse como normal.
func Classify(current, original float64) Status {
	if original <= 0 {
		return StatusCritical
	}
	percentage := StockPercentage(current, original)
	switch {
	case percentage < criticalThreshold:
		return StatusCritical
	case percentage < lowThreshold:
		return StatusLow
	default:
		return StatusNormal
	}
}
