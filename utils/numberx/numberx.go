// File: numberx.go
// Title: Number Operations
// Description: Arithmetic, range and formatting helpers over a single number
//              subject, plus fixed-factor unit conversions. Functions that
//              only compare or iterate are generic over every Go integer and
//              float type; functions producing fractional results return
//              float64.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package numberx

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/stringx"
)

// Number is any Go integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Unit conversion factors. Gallons are US liquid gallons.
const (
	MilesPerMeter       = 0.000621371
	InchesPerMeter      = 39.3701
	InchesPerCentimeter = 0.393701
	LitersPerGallon     = 3.78541
	GallonsPerLiter     = 0.264172

	metersPerMile      = 1609.344
	centimetersPerInch = 2.54
)

// =============================================================================
// Arithmetic
// =============================================================================

// Percentage returns percent percent of n: Percentage(42, 50) is 21.
func Percentage[T Number](n T, percent float64) float64 {
	return float64(n) * percent / 100
}

// PercentOf returns n as a percentage of total, or 0 when total is 0.
func PercentOf[T Number](n, total T) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// RatioOf returns n divided by total, or 0 when total is 0.
func RatioOf[T Number](n, total T) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// IsEven reports whether n is an integral multiple of two.
func IsEven[T Number](n T) bool {
	return math.Mod(float64(n), 2) == 0
}

// IsOdd reports whether n is not even. Fractions and NaN are odd.
func IsOdd[T Number](n T) bool {
	return !IsEven(n)
}

// ToFixedNumber rounds n to decimals fractional digits (default 2) and
// returns the result as a number. decimals is clamped to [0, 100]. Exact
// ties round away from zero: 2.5 becomes 3 and 1.25 becomes 1.3, while
// 1.005 stays 1 at two digits because its binary value lies below the tie.
func ToFixedNumber(n float64, decimals ...int) float64 {
	d := 2
	if len(decimals) > 0 {
		d = min(max(decimals[0], 0), 100)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) >= 1e21 {
		return n
	}
	rounded, err := strconv.ParseFloat(fixedDigits(n, d), 64)
	if err != nil {
		return n
	}
	return rounded
}

// fixedPrec holds |n| * 10^100 for every |n| < 1e21 without loss
const fixedPrec = 2048

// fixedDigits renders n with d fractional digits from its exact binary value
func fixedDigits(n float64, d int) string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d)), nil)
	x := new(big.Float).SetPrec(fixedPrec).SetFloat64(math.Abs(n))
	x.Mul(x, new(big.Float).SetPrec(fixedPrec).SetInt(scale))

	whole, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(fixedPrec).SetInt(whole)
	frac.Sub(x, frac)
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		whole.Add(whole, big.NewInt(1))
	}

	digits := whole.String()
	if d > 0 {
		if len(digits) <= d {
			digits = strings.Repeat("0", d-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-d] + "." + digits[len(digits)-d:]
	}
	if n < 0 {
		digits = "-" + digits
	}
	return digits
}

// =============================================================================
// Ranges
// =============================================================================

// Between reports whether lo <= n <= hi.
func Between[T Number](n, lo, hi T) bool {
	return n >= lo && n <= hi
}

// InRange is an alias of Between.
func InRange[T Number](n, lo, hi T) bool {
	return Between(n, lo, hi)
}

// Clamp limits n to [lo, hi]. When lo > hi the result is hi.
func Clamp[T Number](n, lo, hi T) T {
	return min(max(n, lo), hi)
}

// Times calls fn with 0, 1, ... up to but excluding n.
func Times[T Number](n T, fn func(i int)) {
	if fn == nil {
		return
	}
	for i := 0; float64(i) < float64(n); i++ {
		fn(i)
	}
}

// RunTillZero calls fn with floor(n), floor(n)-1, ... down to and including 0.
func RunTillZero[T Number](n T, fn func(i int)) {
	if fn == nil || math.IsNaN(float64(n)) {
		return
	}
	for i := int(math.Floor(float64(n))); i >= 0; i-- {
		fn(i)
	}
}

// =============================================================================
// Formatting
// =============================================================================

// ToStringWithLeadingZeros renders n padded with zeros to length
// characters. The sign of a negative number stays in front of the zeros.
func ToStringWithLeadingZeros(n float64, length int) string {
	s := value.FormatNumber(n)
	if strings.HasPrefix(s, "-") {
		return "-" + stringx.PadLeft(s[1:], length-1, '0')
	}
	return stringx.PadLeft(s, length, '0')
}

// ToTimeCode renders whole seconds as H:MM:SS with unpadded hours.
// Fractions are floored; negative durations get a leading '-'.
// NaN and infinities render as 0:00:00.
func ToTimeCode(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0:00:00"
	}
	sign := ""
	total := int64(math.Floor(seconds))
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, total/3600, total%3600/60, total%60)
}

// NoN returns n and true when n is finite, otherwise 0 and false.
func NoN(n float64) (float64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// NumberOrNull returns a pointer to n when n is finite, otherwise nil.
func NumberOrNull(n float64) *float64 {
	if v, ok := NoN(n); ok {
		return &v
	}
	return nil
}

// =============================================================================
// Unit conversions
// =============================================================================

// MetersToMiles converts meters to statute miles.
func MetersToMiles(m float64) float64 { return m * MilesPerMeter }

// MilesToMeters converts statute miles to meters.
func MilesToMeters(mi float64) float64 { return mi * metersPerMile }

// MetersToInches converts meters to inches.
func MetersToInches(m float64) float64 { return m * InchesPerMeter }

// InchesToMeters converts inches to meters.
func InchesToMeters(in float64) float64 { return in * centimetersPerInch / 100 }

// CentimetersToInches converts centimeters to inches.
func CentimetersToInches(cm float64) float64 { return cm * InchesPerCentimeter }

// InchesToCentimeters converts inches to centimeters.
func InchesToCentimeters(in float64) float64 { return in * centimetersPerInch }

// GallonsToLiters converts US gallons to liters.
func GallonsToLiters(gal float64) float64 { return gal * LitersPerGallon }

// LitersToGallons converts liters to US gallons.
func LitersToGallons(l float64) float64 { return l * GallonsPerLiter }
