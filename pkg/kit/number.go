package kit

import (
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/numberx"
)

// Number wraps a numeric subject as float64
type Number struct {
	n float64
}

// Kind returns value.KindNumber
func (w Number) Kind() value.Kind { return value.KindNumber }

// Unwrap returns the number
func (w Number) Unwrap() any { return w.n }

// Value returns the number
func (w Number) Value() float64 { return w.n }

// Call invokes a number table method by name
func (w Number) Call(name string, args ...any) (Value, error) {
	return call(w.n, name, args)
}

func (w Number) with(n float64) Number { return Number{n: n} }

// Percentage returns percent percent of the number
func (w Number) Percentage(percent float64) Number { return w.with(numberx.Percentage(w.n, percent)) }

// PercentOf expresses the number as a percentage of total
func (w Number) PercentOf(total float64) Number { return w.with(numberx.PercentOf(w.n, total)) }

// RatioOf divides the number by total
func (w Number) RatioOf(total float64) Number { return w.with(numberx.RatioOf(w.n, total)) }

// Clamp limits the number to [lo, hi]
func (w Number) Clamp(lo, hi float64) Number { return w.with(numberx.Clamp(w.n, lo, hi)) }

// ToFixed rounds to decimals fractional digits (default 2)
func (w Number) ToFixed(decimals ...int) Number {
	return w.with(numberx.ToFixedNumber(w.n, decimals...))
}

// IsEven reports whether the number is an even integer
func (w Number) IsEven() bool { return numberx.IsEven(w.n) }

// IsOdd reports whether the number is an odd integer
func (w Number) IsOdd() bool { return numberx.IsOdd(w.n) }

// Between reports whether lo <= n <= hi
func (w Number) Between(lo, hi float64) bool { return numberx.Between(w.n, lo, hi) }

// Times calls fn with 0..n-1 and returns the receiver
func (w Number) Times(fn func(i int)) Number {
	numberx.Times(w.n, fn)
	return w
}

// ToStringWithLeadingZeros pads with zeros to length characters
func (w Number) ToStringWithLeadingZeros(length int) String {
	return String{s: numberx.ToStringWithLeadingZeros(w.n, length)}
}

// ToTimeCode renders the number of seconds as H:MM:SS
func (w Number) ToTimeCode() String {
	return String{s: numberx.ToTimeCode(w.n)}
}

// NoN returns the number and whether it is finite
func (w Number) NoN() (float64, bool) {
	return numberx.NoN(w.n)
}
