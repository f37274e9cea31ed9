package measure

// IsValidConsumption decide si un consumo propuesto puede aplicarse sobre el
// saldo disponible de un ítem. Convierte amount de amountUnit a stockUnit y
// verifica que el saldo resultante no quede negativo.
//
// Las dos comparaciones son redundantes en aritmética exacta pero se
// conservan ambas: con float64 pueden divergir justo en el límite y el
// comportamiento en la frontera debe ser inclusivo (consumir exactamente el
// saldo disponible es válido).
//
// Esta función no valida positividad del consumo; rechazar cantidades cero o
// negativas es responsabilidad de la validación del request.
func IsValidConsumption(amount float64, amountUnit string, balance float64, stockUnit string) bool {
	converted := Convert(amount, amountUnit, stockUnit)
	newBalance := balance - converted
	return converted <= balance && newBalance >= 0
}

// MaxConsumptionAmount devuelve el saldo disponible expresado en la unidad de
// consumo (conversión inversa a la de validación). Se usa para pre-llenar el
// máximo permitido en el formulario de registro de consumo.
func MaxConsumptionAmount(balance float64, stockUnit, consumptionUnit string) float64 {
	return Convert(balance, stockUnit, consumptionUnit)
}
