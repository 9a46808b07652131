package registry

import (
	"github.com/msto63/pkit/utils/numberx"
)

func numberTable() *Table {
	t := NewTable(TableNumber)

	t.number("percentage", "percent of the subject", func(n float64, a arguments) (any, error) {
		p, err := a.number(0)
		if err != nil {
			return nil, err
		}
		return numberx.Percentage(n, p), nil
	})
	t.number("percentOf", "subject as a percentage of total", func(n float64, a arguments) (any, error) {
		total, err := a.number(0)
		if err != nil {
			return nil, err
		}
		return numberx.PercentOf(n, total), nil
	})
	t.number("ratioOf", "subject divided by total", func(n float64, a arguments) (any, error) {
		total, err := a.number(0)
		if err != nil {
			return nil, err
		}
		return numberx.RatioOf(n, total), nil
	})
	t.number("isEven", "even integer", func(n float64, _ arguments) (any, error) {
		return numberx.IsEven(n), nil
	})
	t.number("isOdd", "odd integer", func(n float64, _ arguments) (any, error) {
		return numberx.IsOdd(n), nil
	})
	t.number("toFixedNumber", "round to decimals (default 2), ties away from zero", func(n float64, a arguments) (any, error) {
		d, err := a.integerOr(0, 2)
		if err != nil {
			return nil, err
		}
		return numberx.ToFixedNumber(n, d), nil
	})

	bounds := func(name string, fn func(n, lo, hi float64) bool) {
		t.number(name, "inclusive bounds test", func(n float64, a arguments) (any, error) {
			lo, err := a.number(0)
			if err != nil {
				return nil, err
			}
			hi, err := a.number(1)
			if err != nil {
				return nil, err
			}
			return fn(n, lo, hi), nil
		})
	}
	bounds("between", numberx.Between[float64])
	bounds("inRange", numberx.InRange[float64])

	t.number("clamp", "limit to [lo, hi]", func(n float64, a arguments) (any, error) {
		lo, err := a.number(0)
		if err != nil {
			return nil, err
		}
		hi, err := a.number(1)
		if err != nil {
			return nil, err
		}
		return numberx.Clamp(n, lo, hi), nil
	})
	t.number("times", "call fn with 0..n-1", func(n float64, a arguments) (any, error) {
		fn, err := a.callback(0)
		if err != nil {
			return nil, err
		}
		numberx.Times(n, fn)
		return nil, nil
	})
	t.number("runTillZero", "call fn counting down to 0", func(n float64, a arguments) (any, error) {
		fn, err := a.callback(0)
		if err != nil {
			return nil, err
		}
		numberx.RunTillZero(n, fn)
		return nil, nil
	})
	t.number("toStringWithLeadingZeros", "zero-pad to a length", func(n float64, a arguments) (any, error) {
		length, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return numberx.ToStringWithLeadingZeros(n, length), nil
	})
	t.number("toTimeCode", "seconds as H:MM:SS", func(n float64, _ arguments) (any, error) {
		return numberx.ToTimeCode(n), nil
	})
	t.number("noN", "the number or null when not finite", func(n float64, _ arguments) (any, error) {
		if f, ok := numberx.NoN(n); ok {
			return f, nil
		}
		return nil, nil
	})
	t.number("numberOrNull", "the number or null when not finite", func(n float64, _ arguments) (any, error) {
		if p := numberx.NumberOrNull(n); p != nil {
			return *p, nil
		}
		return nil, nil
	})

	conversions := []struct {
		name string
		fn   func(float64) float64
	}{
		{"metersToMiles", numberx.MetersToMiles},
		{"milesToMeters", numberx.MilesToMeters},
		{"metersToInches", numberx.MetersToInches},
		{"inchesToMeters", numberx.InchesToMeters},
		{"centimetersToInches", numberx.CentimetersToInches},
		{"inchesToCentimeters", numberx.InchesToCentimeters},
		{"gallonsToLiters", numberx.GallonsToLiters},
		{"litersToGallons", numberx.LitersToGallons},
	}
	for _, c := range conversions {
		fn := c.fn
		t.number(c.name, "unit conversion", func(n float64, _ arguments) (any, error) {
			return fn(n), nil
		})
	}

	return t
}
