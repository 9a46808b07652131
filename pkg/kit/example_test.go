package kit_test

import (
	"fmt"

	"github.com/msto63/pkit/pkg/kit"
)

func ExampleOf() {
	title := kit.Of("hello world").(kit.String).ToTitleCase().Unwrap()
	fmt.Println(title)

	teams := kit.Of([]map[string]any{
		{"t": "a"}, {"t": "b"}, {"t": "a"},
	}).(kit.Array).GroupBy("t")
	for _, e := range teams.Entries() {
		fmt.Println(e.Key, len(e.Value.([]any)))
	}
	// Output:
	// Hello World
	// a 2
	// b 1
}

func ExampleString_Call() {
	v, err := kit.Of("a=1;b=2").Call("substringFrom", "a=", ";")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Unwrap())
	// Output: 1
}

func ExampleTryOrReturn() {
	n, err := kit.TryOrReturn(func() (float64, error) {
		return 0, kit.Assert.NonZero(0)
	}, 1, kit.Assert.ErrAssertion)
	fmt.Println(n, err)
	// Output: 1 <nil>
}
