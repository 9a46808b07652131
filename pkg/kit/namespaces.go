package kit

import (
	"github.com/msto63/pkit/core/assert"
	"github.com/msto63/pkit/utils/mathx"
	"github.com/msto63/pkit/utils/pathx"
)

// MathNamespace groups the stateless math helpers
type MathNamespace struct {
	RandomRange    func(lo, hi float64) float64
	RandomRangeInt func(lo, hi int) int
	Lerp           func(lo, hi, t float64) float64
	Mix            func(x, y, a float64) float64
	Clamp          func(v, lo, hi float64) float64
	DegToRad       func(deg float64) float64
	RadToDeg       func(rad float64) float64
	Distance       func(x1, y1, x2, y2 float64) float64
	RoundTo        func(v float64, decimals ...int) float64
	IsPowerOfTwo   func(v int) bool
	NextPowerOfTwo func(v float64) float64
	Normalize      func(v, lo, hi float64) float64
	SmoothStep     func(edge0, edge1, x float64) float64
	MixColors      func(hex1, hex2 string, t float64) (string, error)
}

// PathNamespace groups the POSIX path helpers
type PathNamespace struct {
	Sep       string
	Normalize func(p string) string
	Join      func(parts ...string) string
	Basename  func(p string) string
	Dirname   func(p string) string
	Extname   func(p string) string
}

// AssertNamespace groups the guards. Every guard returns nil or an error
// matching assert.ErrAssertion.
type AssertNamespace struct {
	ErrAssertion   error
	Fail           func(message string, info map[string]any) error
	Must           func(err error)
	NotNil         func(v any, msg ...string) error
	Ensure         func(cond bool, msg ...string) error
	IsString       func(v any, msg ...string) error
	IsNumber       func(v any, msg ...string) error
	IsBool         func(v any, msg ...string) error
	IsSlice        func(v any, msg ...string) error
	IsObject       func(v any, msg ...string) error
	NonEmptyString func(v any, msg ...string) error
	NonEmptySlice  func(v any, msg ...string) error
	HasKeys        func(obj any, keys []string, msg ...string) error
	LengthAtLeast  func(v any, min int, msg ...string) error
	NonZero        func(v any, msg ...string) error
	PositiveOrZero func(v any, msg ...string) error
	AllTruthy      func(v any, msg ...string) error
	AllObjects     func(v any, msg ...string) error
	AllNumbers     func(v any, msg ...string) error
	JSONEqual      func(a, b any, msg ...string) error
}

// Math is the math namespace
var Math = MathNamespace{
	RandomRange:    mathx.RandomRangeFloat,
	RandomRangeInt: mathx.RandomRangeInt,
	Lerp:           mathx.Lerp,
	Mix:            mathx.Mix,
	Clamp:          mathx.Clamp,
	DegToRad:       mathx.DegToRad,
	RadToDeg:       mathx.RadToDeg,
	Distance:       mathx.Distance,
	RoundTo:        mathx.RoundTo,
	IsPowerOfTwo:   mathx.IsPowerOfTwo[int],
	NextPowerOfTwo: mathx.NextPowerOfTwo,
	Normalize:      mathx.Normalize,
	SmoothStep:     mathx.SmoothStep,
	MixColors:      mathx.MixColors,
}

// Path is the path namespace
var Path = PathNamespace{
	Sep:       pathx.Sep,
	Normalize: pathx.Normalize,
	Join:      pathx.Join,
	Basename:  pathx.Basename,
	Dirname:   pathx.Dirname,
	Extname:   pathx.Extname,
}

// Assert is the guard namespace
var Assert = AssertNamespace{
	ErrAssertion:   assert.ErrAssertion,
	Fail:           func(message string, info map[string]any) error { return assert.Fail(message, info) },
	Must:           assert.Must,
	NotNil:         assert.NotNil,
	Ensure:         assert.Ensure,
	IsString:       assert.IsString,
	IsNumber:       assert.IsNumber,
	IsBool:         assert.IsBool,
	IsSlice:        assert.IsSlice,
	IsObject:       assert.IsObject,
	NonEmptyString: assert.NonEmptyString,
	NonEmptySlice:  assert.NonEmptySlice,
	HasKeys:        assert.HasKeys,
	LengthAtLeast:  assert.LengthAtLeast,
	NonZero:        assert.NonZero,
	PositiveOrZero: assert.PositiveOrZero,
	AllTruthy:      assert.AllTruthy,
	AllObjects:     assert.AllObjects,
	AllNumbers:     assert.AllNumbers,
	JSONEqual:      assert.JSONEqual,
}
