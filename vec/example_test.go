package vec_test

import (
	"fmt"

	"github.com/joshuapare/rawvec/vec"
)

// Example shows basic push and pop.
func Example() {
	v := vec.New[string]()
	v.Push("a")
	v.Push("b")
	v.Push("c")

	last, ok := v.Pop()
	fmt.Println(last, ok, v.Len(), v.Cap())
	// Output: c true 2 4
}

// ExampleVec_Drain removes a range while reading it.
func ExampleVec_Drain() {
	v := vec.Of(1, 2, 3, 4, 5, 6, 7, 8)

	d := v.Drain(1, 5)
	defer d.Close()
	for x := range d.All() {
		fmt.Print(x, " ")
	}
	fmt.Println(v.AsSlice())
	// Output: 2 3 4 5 [1 6 7 8]
}

// ExampleVec_BulkPopulateGuarded fills spare capacity with computed values.
func ExampleVec_BulkPopulateGuarded() {
	v := vec.New[uint64]()
	v.BulkPopulateGuarded(vec.Exact(10), func(c *vec.Cursor[uint64]) {
		a, b := uint64(0), uint64(1)
		for c.Remaining() > 0 {
			c.Write(a)
			a, b = b, a+b
		}
	})
	fmt.Println(v.AsSlice())
	// Output: [0 1 1 2 3 5 8 13 21 34]
}

// ExampleVec_Extend appends from a source with a size hint.
func ExampleVec_Extend() {
	v := vec.Of("x")
	v.Extend(vec.Repeat("y", 3))
	fmt.Println(v)
	// Output: Vec(len=4 cap=4)[x y y y]
}

// ExampleVec_IntoIter consumes a Vec.
func ExampleVec_IntoIter() {
	v := vec.Of(3, 1, 2)
	it := v.IntoIter()
	sum := 0
	for x := range it.All() {
		sum += x
	}
	fmt.Println(sum)
	// Output: 6
}
