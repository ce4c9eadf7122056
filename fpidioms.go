package fpidioms

// ============================================================================
// Recursion
// ============================================================================

// Factorial returns n! computed by structural recursion.
//
// Factorial(0) and Factorial(1) are both 1. The result wraps on uint64
// overflow; no bound is enforced.
func Factorial(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// ============================================================================
// Mapping and Composition
// ============================================================================

// Map returns a new slice whose element i is f(seq[i]).
// The input is not modified; length and order are preserved.
func Map[T, U any](seq []T, f func(T) U) []U {
	out := make([]U, len(seq))
	for i, v := range seq {
		out[i] = f(v)
	}
	return out
}

// Square returns n * n.
func Square(n int) int {
	return n * n
}

// Compose maps the pointwise composition f(g(x)) over seq.
// g is applied first.
func Compose[T, U, V any](seq []T, f func(U) V, g func(T) U) []V {
	return Map(seq, func(x T) V {
		return f(g(x))
	})
}

// Endo is a function from a type to itself.
// Endomorphisms form a monoid under composition with the identity as Empty.
//
// Example:
//
//	cube := Endo[int](func(x int) int { return x * x * x })
//	addOne := Endo[int](func(x int) int { return x + 1 })
//	cube.Compose(addOne)(2) // 27
type Endo[T any] func(T) T

// Apply calls the function.
func (f Endo[T]) Apply(v T) T {
	return f(v)
}

// Empty returns the identity function (Monoid identity).
func (f Endo[T]) Empty() Endo[T] {
	return func(v T) T { return v }
}

// Compose returns f after g, so g runs first (Monoid operation).
func (f Endo[T]) Compose(g Endo[T]) Endo[T] {
	return func(v T) T {
		return f(g(v))
	}
}

// Then returns g after f, so f runs first.
func (f Endo[T]) Then(g Endo[T]) Endo[T] {
	return g.Compose(f)
}

// ============================================================================
// Folds
// ============================================================================

// Fold reduces seq from the left, starting at init.
func Fold[T, A any](seq []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// Sum returns the sum of seq, or 0 when seq is empty.
func Sum(seq []int) int {
	return Fold(seq, 0, func(acc, x int) int {
		return acc + x
	})
}

// ============================================================================
// Currying
// ============================================================================

// Curry converts a binary function into a chain of unary functions.
func Curry[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// CurryAdd returns a function that adds a to its argument.
// The returned closure holds its own copy of a and can be called any number
// of times.
func CurryAdd(a int) func(int) int {
	return func(b int) int {
		return a + b
	}
}
