package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para 2 casas decimais
// (half away from zero, via math.Round)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithOneDecimalPlace arredonda para 1 casa decimal
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
