package systems

import "github.com/chewxy/math32"

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float32) float32 {
	for angle > math32.Pi {
		angle -= 2 * math32.Pi
	}
	for angle < -math32.Pi {
		angle += 2 * math32.Pi
	}
	return angle
}
