package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon guards divisions by near-zero lengths.
const Epsilon = 1e-9

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps the length of v to max. A non-positive max disables the clamp.
func ClampSpeed(v mgl64.Vec2, max float64) mgl64.Vec2 {
	if max <= 0 {
		return v
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Mul(max / l)
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Perp returns v rotated a quarter turn counter-clockwise.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// Rotate rotates v about the origin by angle radians.
func Rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	if angle == 0 {
		return v
	}
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// SafeNormalize returns the unit vector of v, or false when v is too short to
// have a direction.
func SafeNormalize(v mgl64.Vec2) (mgl64.Vec2, bool) {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) {
		return mgl64.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// Lerp blends a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
