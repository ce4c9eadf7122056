package fpidioms

import "errors"

// ErrNilError is the payload of a Result built with Err(nil).
var ErrNilError = errors.New("fpidioms: Err called with nil error")

// ============================================================================
// Option
// ============================================================================

// Option is a tagged variant that is either Some(value) or None.
// The zero value is None.
//
// Example:
//
//	name := MatchOption(Some(Human{Name: "Sura"}),
//	    func(h Human) string { return h.Name },
//	    func() string { return "nobody" },
//	)
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps v in the Present variant.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the Absent variant.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// String renders the option as Some(value) or None.
func (o Option[T]) String() string {
	if o.present {
		return "Some(" + debug(o.value) + ")"
	}
	return "None"
}

// MatchOption calls onSome with the value when o is Some and onNone otherwise.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to the value of o, if any.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	return MatchOption(o,
		func(v T) Option[U] { return Some(f(v)) },
		None[U],
	)
}

// ============================================================================
// Result
// ============================================================================

// Result is a tagged variant that is either Ok(value) or Err(error).
// The zero value is Ok with the zero T.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps v in the Success variant.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps err in the Failure variant. A nil err is replaced by ErrNilError
// so the result still reports IsErr.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{err: err}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap returns the value and error in the usual Go shape.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// String renders the result as Ok(value) or Err(message).
func (r Result[T]) String() string {
	if r.err != nil {
		return "Err(" + debug(r.err) + ")"
	}
	return "Ok(" + debug(r.value) + ")"
}

// MatchResult calls onOk or onErr depending on the variant of r.
func MatchResult[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// MapResult applies f to the value of r when it is Ok.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	return MatchResult(r,
		func(v T) Result[U] { return Ok(f(v)) },
		Err[U],
	)
}
