// File: mathx.go
// Title: Math Namespace
// Description: Stateless numeric helpers: random ranges, interpolation,
//              clamping, angle conversion, distance, rounding, powers of two,
//              smoothstep and linear mixing of hex colors. Rounding follows
//              the half-up convention (ties round toward +Inf).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mathx

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/msto63/pkit/core/errors"
)

// RandomRangeFloat returns a pseudo-random float in [lo, hi).
// It is not suitable for security-sensitive use.
func RandomRangeFloat(lo, hi float64) float64 {
	return rand.Float64()*(hi-lo) + lo
}

// RandomRangeInt returns a pseudo-random integer in [lo, hi]. The bounds
// may be given in either order.
func RandomRangeInt(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rand.IntN(hi-lo+1)
}

// Lerp interpolates linearly from lo to hi by t.
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

// Mix blends x and y by a: Mix(x, y, 0) is x and Mix(x, y, 1) is y.
func Mix(x, y, a float64) float64 {
	return x*(1-a) + y*a
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// RoundTo rounds v to decimals fractional digits (default 2), ties up.
func RoundTo(v float64, decimals ...int) float64 {
	d := 2
	if len(decimals) > 0 {
		d = decimals[0]
	}
	p := math.Pow(10, float64(d))
	return roundHalfUp(v*p) / p
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= v. It returns 0 for
// 0 and NaN for negative input.
func NextPowerOfTwo(v float64) float64 {
	return math.Pow(2, math.Ceil(math.Log2(v)))
}

// Normalize maps v from [lo, hi] onto [0, 1]. An empty range yields 0.
func Normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

// SmoothStep performs Hermite interpolation between edge0 and edge1.
func SmoothStep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// MixColors blends two "#RRGGBB" colors channel by channel. The '#' is
// optional, three-digit shorthand is expanded and shorter values are
// left-padded with zeros. The result is lowercase "#rrggbb".
func MixColors(hex1, hex2 string, t float64) (string, error) {
	c1, err := parseHexColor(hex1)
	if err != nil {
		return "", err
	}
	c2, err := parseHexColor(hex2)
	if err != nil {
		return "", err
	}

	var out [3]int
	for i := range out {
		ch := roundHalfUp(Mix(float64(c1[i]), float64(c2[i]), t))
		out[i] = int(Clamp(ch, 0, 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", out[0], out[1], out[2]), nil
}

func parseHexColor(s string) ([3]int, error) {
	var rgb [3]int
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) > 6 || h == "" {
		return rgb, errors.InvalidFormat(errors.ModuleMathx, "mixColors", s, "#RRGGBB")
	}
	h = strings.Repeat("0", 6-len(h)) + h
	for i := range rgb {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgb, errors.InvalidFormat(errors.ModuleMathx, "mixColors", s, "#RRGGBB")
		}
		rgb[i] = int(v)
	}
	return rgb, nil
}
