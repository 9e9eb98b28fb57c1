package math

import "github.com/chewxy/math32"

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	w := math32.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	// Mod of a tiny negative value can round up to exactly 360.
	if w >= 360 {
		w -= 360
	}
	return w
}
