package draft

import "math"

func radians(deg float64) float64 { return deg * (math.Pi / 180) }
func degrees(rad float64) float64 { return rad * (180 / math.Pi) }

// sincosDeg is math.Sincos for an angle in degrees. Multiples of 90° are
// exact, so that axis-aligned constructions don't accumulate noise.
func sincosDeg(deg float64) (sin, cos float64) {
	if r := math.Mod(deg, 90); r == 0 {
		switch q := int(math.Mod(deg/90, 4)); q {
		case 0:
			return 0, 1
		case 1, -3:
			return 1, 0
		case 2, -2:
			return 0, -1
		case 3, -1:
			return -1, 0
		}
	}
	return math.Sincos(radians(deg))
}

// NormalizeAngle maps an angle in degrees to the range (-180, 180].
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// AngleDiff returns the smallest signed difference a−b in degrees, in the
// range (-180, 180].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(a - b)
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
