package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_FixturesDeReporte(t *testing.T) {
	// Escenarios literales del reporte de inventario: 80%, 15% y 5%.
	assert.Equal(t, StatusNormal, Classify(80, 100))
	assert.Equal(t, StatusLow, Classify(15, 100))
	assert.Equal(t, StatusCritical, Classify(5, 100))
}

func TestClassify_Fronteras(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		original float64
		want     Status
	}{
		{"exactamente 20% es normal", 20, 100, StatusNormal},
		{"justo bajo 20% es low", 19.999, 100, StatusLow},
		{"exactamente 10% es low", 10, 100, StatusLow},
		{"justo bajo 10% es critical", 9.999, 100, StatusCritical},
		{"cero restante es critical", 0, 100, StatusCritical},
		{"stock completo es normal", 100, 100, StatusNormal},
		{"sobre-stock (>100%) es normal", 150, 100, StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.current, tc.original))
		})
	}
}

func TestClassify_OriginalCero(t *testing.T) {
	// Política documentada: original <= 0 clasifica como critical.
	assert.Equal(t, StatusCritical, Classify(0, 0))
	assert.Equal(t, StatusCritical, Classify(5, 0))
	assert.Equal(t, StatusCritical, Classify(5, -1))
}

func TestClassify_MonotoniaEnSeveridad(t *testing.T) {
	// A mayor porcentaje, la severidad nunca aumenta.
	severity := map[Status]int{StatusNormal: 0, StatusLow: 1, StatusCritical: 2}
	prev := severity[Classify(0, 100)]
	for current := 1.0; current <= 100; current++ {
		s := severity[Classify(current, 100)]
		assert.LessOrEqual(t, s, prev, "severidad no debe crecer al pasar de %v", current)
		prev = s
	}
}

func TestStockPercentage(t *testing.T) {
	assert.Equal(t, 80.0, StockPercentage(80, 100))
	assert.Equal(t, 50.0, StockPercentage(1, 2))
	assert.Equal(t, 0.0, StockPercentage(5, 0), "original cero no reclama stock")
}
