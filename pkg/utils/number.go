package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CostPerMille calcula o custo por mil impressões, arredondado em duas casas.
func CostPerMille(spend float64, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(spend / float64(impressions) * 1000)
}
