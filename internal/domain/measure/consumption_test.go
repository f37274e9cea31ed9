package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidConsumption_MismaUnidad(t *testing.T) {
	cases := []struct {
		name    string
		amount  float64
		balance float64
		want    bool
	}{
		{"consumo menor al saldo", 10, 50, true},
		{"consumo igual al saldo (frontera inclusiva)", 50, 50, true},
		{"consumo apenas mayor al saldo", 50.0001, 50, false},
		{"consumo mayor al saldo", 80, 50, false},
		{"consumo cero pasa trivialmente", 0, 50, true}, // la positividad la valida el request, no esta capa
		{"saldo cero y consumo cero", 0, 0, true},
		{"saldo cero y consumo positivo", 1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidConsumption(tc.amount, "L", tc.balance, "L"))
		})
	}
}

func TestIsValidConsumption_ConConversion(t *testing.T) {
	// Escenario literal: consumir 250 mL de un ítem con saldo 1 L.
	// 250 mL -> 0.25 L; válido, saldo resultante 0.75 L.
	assert.True(t, IsValidConsumption(250, "mL", 1, "L"))

	// 1500 mL -> 1.5 L excede el saldo de 1 L.
	assert.False(t, IsValidConsumption(1500, "mL", 1, "L"))

	// Exactamente el saldo tras conversión: 1000 mL == 1 L.
	assert.True(t, IsValidConsumption(1000, "mL", 1, "L"))

	// Peso: 500 g contra saldo de 2 kg.
	assert.True(t, IsValidConsumption(500, "g", 2, "kg"))
	assert.False(t, IsValidConsumption(2500, "g", 2, "kg"))
}

func TestMaxConsumptionAmount(t *testing.T) {
	// Saldo 1 L expresado en mL para el máximo del formulario.
	assert.InDelta(t, 1000, MaxConsumptionAmount(1, "L", "mL"), 1e-9)
	// Saldo 750 mL expresado en L.
	assert.InDelta(t, 0.75, MaxConsumptionAmount(750, "mL", "L"), 1e-9)
	// Misma unidad: identidad.
	assert.Equal(t, 42.0, MaxConsumptionAmount(42, "kg", "kg"))
}

func TestMaxConsumptionAmount_EsCotaDeValidez(t *testing.T) {
	// Propiedad: el máximo devuelto siempre es un consumo válido, y cualquier
	// cantidad por debajo también lo es.
	balances := []float64{0, 0.5, 1, 10, 1234.56}
	for _, b := range balances {
		maxAmount := MaxConsumptionAmount(b, "L", "mL")
		assert.True(t, IsValidConsumption(maxAmount, "mL", b, "L"), "max de saldo %v debe ser válido", b)
		assert.True(t, IsValidConsumption(maxAmount/2, "mL", b, "L"))
	}
}
