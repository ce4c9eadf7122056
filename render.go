package fpidioms

import (
	"fmt"
	"reflect"
	"strings"
)

// ============================================================================
// fmt Package Bindings
// ============================================================================

// StringerFunc is a functional binding for fmt.Stringer.
// It provides monoid operations for string composition and is how the
// runner renders the value of each demonstration.
//
// Example:
//
//	line := Seq([]int{1, 2, 3}).WithPrefix("Numbers: ")
//	line.String() // "Numbers: [1, 2, 3]"
type StringerFunc func() string

// String implements fmt.Stringer.
func (f StringerFunc) String() string {
	return f()
}

// Empty returns empty string (Monoid identity).
func (f StringerFunc) Empty() StringerFunc {
	return func() string { return "" }
}

// Compose concatenates strings (Monoid operation).
func (f StringerFunc) Compose(other StringerFunc) StringerFunc {
	return func() string {
		return f() + other()
	}
}

// Join concatenates with separator.
func (f StringerFunc) Join(sep string, others ...StringerFunc) StringerFunc {
	all := append([]StringerFunc{f}, others...)
	return func() string {
		return strings.Join(Map(all, StringerFunc.String), sep)
	}
}

// Map transforms the string.
func (f StringerFunc) Map(transform func(string) string) StringerFunc {
	return func() string {
		return transform(f())
	}
}

// WithPrefix adds a prefix.
func (f StringerFunc) WithPrefix(prefix string) StringerFunc {
	return func() string {
		return prefix + f()
	}
}

// WithSuffix adds a suffix.
func (f StringerFunc) WithSuffix(suffix string) StringerFunc {
	return func() string {
		return f() + suffix
	}
}

// Text renders s verbatim.
func Text(s string) StringerFunc {
	return func() string { return s }
}

// Value renders v in debug form: strings are quoted, slices and arrays
// render as Seq does, and anything else uses %v. Option, Result and Human
// implement fmt.Stringer and therefore render in their tagged form.
func Value(v any) StringerFunc {
	return func() string {
		return debug(v)
	}
}

// Seq renders a sequence as a bracketed, comma-separated list: [1, 2, 3].
func Seq[T any](seq []T) StringerFunc {
	items := Map(seq, func(v T) StringerFunc { return Value(v) })
	if len(items) == 0 {
		return Text("[]")
	}
	return items[0].Join(", ", items[1:]...).WithPrefix("[").WithSuffix("]")
}

func debug(v any) string {
	switch v.(type) {
	case fmt.Stringer, error:
		return fmt.Sprintf("%v", v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", v)
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return Seq(elems).String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
