package utils

import "math"

// RoundWithTwoDecimalPlace arredonda métricas monetárias e derivadas
// (gasto, receita, ROAS) para duas casas decimais na saída de relatórios.
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
