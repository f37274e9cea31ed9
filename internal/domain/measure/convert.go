// Package measure implementa el motor de unidades de medida del inventario
// SPOG (sellantes, pinturas, aceites y grasas): conversión entre unidades,
// validación de consumos y clasificación de estado de stock.
//
// Todas las funciones son puras y deterministas; no hacen I/O ni guardan
// estado, por lo que son seguras para uso concurrente sin coordinación.
package measure

import (
	"errors"
	"strings"
)

// Familias de unidades soportadas.
const (
	FamilyVolume = "volume" // L, mL
	FamilyWeight = "weight" // kg, g
	FamilyLength = "length" // m, cm, mm
)

// Errores de conversión (solo los devuelve TryConvert; Convert nunca falla).
var (
	ErrUnknownUnit    = errors.New("unidad de medida desconocida")
	ErrFamilyMismatch = errors.New("unidades de familias distintas")
)

// unitFamily agrupa las unidades interoperables de una misma magnitud.
// El factor lleva cada unidad a la unidad base de su familia.
type unitFamily struct {
	name   string
	toBase map[string]float64
}

// Unidades base por familia: mL, g y mm.
var families = []unitFamily{
	{name: FamilyVolume, toBase: map[string]float64{"L": 1000, "mL": 1}},
	{name: FamilyWeight, toBase: map[string]float64{"kg": 1000, "g": 1}},
	{name: FamilyLength, toBase: map[string]float64{"m": 1000, "cm": 10, "mm": 1}},
}

// conversionTable tabla anidada fromUnit → toUnit → factor, derivada de las
// familias al cargar el paquete. Las claves son los símbolos originales
// (sensibles a mayúsculas): "L", "mL", "kg", "g", "m", "cm", "mm".
var conversionTable = buildTable()

func buildTable() map[string]map[string]float64 {
	table := make(map[string]map[string]float64)
	for _, fam := range families {
		for from, fromBase := range fam.toBase {
			for to, toBase := range fam.toBase {
				if from == to {
					continue
				}
				if table[from] == nil {
					table[from] = make(map[string]float64)
				}
				table[from][to] = fromBase / toBase
			}
		}
	}
	return table
}

// normalizeUnit recorta espacios y pasa a minúsculas para la comparación de
// identidad ("  L " y "l" son la misma unidad escrita distinto).
func normalizeUnit(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// Convert convierte value de fromUnit a toUnit.
//
// Contrato heredado del comportamiento original del sistema:
//   - fromUnit == toUnit (igualdad exacta): devuelve value sin consultar la tabla.
//   - Igualdad tras normalizar (trim + minúsculas): devuelve value.
//   - En otro caso busca el factor en la tabla con los símbolos ORIGINALES.
//   - Par no soportado: factor 1. Nunca devuelve error; la ausencia de
//     conversión degrada a multiplicación identidad. Los callers que necesiten
//     detectar pares inválidos deben usar TryConvert.
func Convert(value float64, fromUnit, toUnit string) float64 {
	if fromUnit == toUnit {
		return value
	}
	if normalizeUnit(fromUnit) == normalizeUnit(toUnit) {
		return value
	}
	factor := 1.0
	if byTo, ok := conversionTable[fromUnit]; ok {
		if f, ok := byTo[toUnit]; ok {
			factor = f
		}
	}
	return value * factor
}

// TryConvert convierte value de fromUnit a toUnit y falla si las unidades no
// son interoperables, en lugar de degradar silenciosamente a factor 1.
//
// Devuelve ErrUnknownUnit si alguna unidad no está registrada y
// ErrFamilyMismatch si pertenecen a familias distintas (ej. "L" → "kg").
// Es la variante que usa la capa de aplicación para rechazar consumos con
// unidades incompatibles.
func TryConvert(value float64, fromUnit, toUnit string) (float64, error) {
	if fromUnit == toUnit || normalizeUnit(fromUnit) == normalizeUnit(toUnit) {
		return value, nil
	}
	fromFam, fromBase, ok := lookupUnit(fromUnit)
	if !ok {
		return 0, ErrUnknownUnit
	}
	toFam, toBase, ok := lookupUnit(toUnit)
	if !ok {
		return 0, ErrUnknownUnit
	}
	if fromFam != toFam {
		return 0, ErrFamilyMismatch
	}
	return value * (fromBase / toBase), nil
}

// UnitFamily devuelve la familia de una unidad registrada ("volume", "weight",
// "length") y false si la unidad no existe en la tabla.
func UnitFamily(unit string) (string, bool) {
	fam, _, ok := lookupUnit(unit)
	return fam, ok
}

func lookupUnit(unit string) (family string, toBase float64, ok bool) {
	for _, fam := range families {
		if f, exists := fam.toBase[unit]; exists {
			return fam.name, f, true
		}
	}
	return "", 0, false
}
