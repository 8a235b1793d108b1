package utils

import (
	"math"
)

// RoundToInt rounds a float to the nearest integer, halves away from zero
func RoundToInt(value float64) int {
	return int(math.Round(value))
}
