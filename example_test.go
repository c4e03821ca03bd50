package smallvec_test

import (
	"fmt"

	"github.com/hupe1980/smallvec"
)

func ExampleVec() {
	// The zero value is an empty, inline-backed vector.
	var v smallvec.Vec[int, [4]int]

	for i := 1; i <= 4; i++ {
		v.Push(i)
	}
	fmt.Println(v.Len(), v.Cap(), v.Inline())

	// The fifth element outgrows the inline buffer.
	v.Push(5)
	fmt.Println(v.Len(), v.Cap(), v.Inline())
	fmt.Println(v.Slice())
	// Output:
	// 4 4 true
	// 5 8 false
	// [1 2 3 4 5]
}

func ExampleOf() {
	v := smallvec.Of[string, [4]string]("a", "b", "c")

	for s := range v.Values() {
		fmt.Println(s)
	}
	// Output:
	// a
	// b
	// c
}

func ExampleVec_Move() {
	v := smallvec.Of[int, [4]int](1, 2, 3, 4, 5)

	m := v.Move()
	fmt.Println(m.Slice(), m.Cap())
	fmt.Println(v.Len(), v.Cap(), v.Inline())
	// Output:
	// [1 2 3 4 5] 5
	// 0 4 true
}

func ExampleSwap() {
	a := smallvec.Of[int, [4]int](1, 2)
	b := smallvec.Of[int, [4]int](9)

	smallvec.Swap(a, b)
	fmt.Println(a.Slice(), b.Slice())
	// Output:
	// [9] [1 2]
}
