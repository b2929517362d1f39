package model

import "math"

// RoundRating rounds v to two decimal places, halves away from zero.
func RoundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
