package registry

import (
	"math"

	"github.com/msto63/pkit/utils/mathx"
	"github.com/msto63/pkit/utils/pathx"
)

// numbers reads count leading numeric arguments
func (a arguments) numbers(count int) ([]float64, error) {
	out := make([]float64, count)
	for i := range out {
		f, err := a.number(i)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func mathTable() *Table {
	t := NewTable(TableMath)

	fixed := func(name, doc string, arity int, fn func(x []float64) any) {
		t.static(name, doc, func(a arguments) (any, error) {
			x, err := a.numbers(arity)
			if err != nil {
				return nil, err
			}
			return fn(x), nil
		})
	}

	fixed("randomRange", "pseudo-random float in [lo, hi)", 2, func(x []float64) any { return mathx.RandomRangeFloat(x[0], x[1]) })
	fixed("randomRangeInt", "pseudo-random integer in [lo, hi]", 2, func(x []float64) any { return mathx.RandomRangeInt(int(x[0]), int(x[1])) })
	fixed("lerp", "linear interpolation", 3, func(x []float64) any { return mathx.Lerp(x[0], x[1], x[2]) })
	fixed("mix", "linear interpolation", 3, func(x []float64) any { return mathx.Mix(x[0], x[1], x[2]) })
	fixed("clamp", "limit to [lo, hi]", 3, func(x []float64) any { return mathx.Clamp(x[0], x[1], x[2]) })
	fixed("degToRad", "degrees to radians", 1, func(x []float64) any { return mathx.DegToRad(x[0]) })
	fixed("radToDeg", "radians to degrees", 1, func(x []float64) any { return mathx.RadToDeg(x[0]) })
	fixed("distance", "euclidean distance of two points", 4, func(x []float64) any { return mathx.Distance(x[0], x[1], x[2], x[3]) })
	fixed("nextPowerOfTwo", "smallest power of two not below v", 1, func(x []float64) any { return mathx.NextPowerOfTwo(x[0]) })
	fixed("normalize", "map [lo, hi] onto [0, 1]", 3, func(x []float64) any { return mathx.Normalize(x[0], x[1], x[2]) })
	fixed("smoothStep", "hermite interpolation", 3, func(x []float64) any { return mathx.SmoothStep(x[0], x[1], x[2]) })

	t.static("roundTo", "round to decimals, default 2", func(a arguments) (any, error) {
		v, err := a.number(0)
		if err != nil {
			return nil, err
		}
		d, err := a.integerOr(1, 2)
		if err != nil {
			return nil, err
		}
		return mathx.RoundTo(v, d), nil
	})
	t.static("isPowerOfTwo", "positive power of two", func(a arguments) (any, error) {
		v, err := a.number(0)
		if err != nil {
			return nil, err
		}
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return false, nil
		}
		return mathx.IsPowerOfTwo(int64(v)), nil
	})
	t.static("mixColors", "blend two #rrggbb colors", func(a arguments) (any, error) {
		c1, err := a.text(0)
		if err != nil {
			return nil, err
		}
		c2, err := a.text(1)
		if err != nil {
			return nil, err
		}
		w, err := a.numberOr(2, 0.5)
		if err != nil {
			return nil, err
		}
		return mathx.MixColors(c1, c2, w)
	})

	return t
}

func pathTable() *Table {
	t := NewTable(TablePath)

	unary := map[string]func(string) string{
		"normalize": pathx.Normalize,
		"basename":  pathx.Basename,
		"dirname":   pathx.Dirname,
		"extname":   pathx.Extname,
	}
	for _, name := range []string{"normalize", "basename", "dirname", "extname"} {
		fn := unary[name]
		t.static(name, "POSIX path helper", func(a arguments) (any, error) {
			p, err := a.text(0)
			if err != nil {
				return nil, err
			}
			return fn(p), nil
		})
	}
	t.static("join", "join non-empty parts with /", func(a arguments) (any, error) {
		parts, err := a.texts(0)
		if err != nil {
			return nil, err
		}
		return pathx.Join(parts...), nil
	})
	t.static("sep", "the separator", func(arguments) (any, error) {
		return pathx.Sep, nil
	})

	return t
}
