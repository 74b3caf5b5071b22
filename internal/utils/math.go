// internal/utils/math.go
package utils

import "math"

// RotateTowards turns from towards to by at most maxStep radians.
func RotateTowards(from, to, maxStep float32) float32 {
	diff := NormalizeAngle(to - from)
	if diff > maxStep {
		diff = maxStep
	} else if diff < -maxStep {
		diff = -maxStep
	}
	return NormalizeAngle(from + diff)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
