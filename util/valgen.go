// Package valgen builds input streams for the grid from small generators.
package valgen

// MakeConstGen returns a generator that always yields constant.
func MakeConstGen(constant int) func() int {
	return func() int {
		return constant
	}
}

// MakeIncreasingGen returns a generator yielding start+1, start+2, ...
func MakeIncreasingGen(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeAlternatingGen returns a generator that flips the sign of magnitude on
// every call, starting positive.
func MakeAlternatingGen(magnitude int) func() int {
	sign := -1
	return func() int {
		sign = -sign
		return sign * magnitude
	}
}

// Series draws n values from gen.
func Series(n int, gen func() int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = gen()
	}

	return values
}
