package fpidioms

import "io"

// ============================================================================
// IO Package Bindings
// ============================================================================

// WriteFunc is a functional binding for io.Writer.
// It implements io.Writer and provides composition methods.
//
// Example:
//
//	var a, b bytes.Buffer
//	w := WriteFunc(a.Write).Tee(WriteFunc(b.Write))
//	NewRunner(nil, DefaultSteps()...).Run(w)
type WriteFunc func(p []byte) (n int, err error)

// Write implements io.Writer.
func (f WriteFunc) Write(p []byte) (int, error) {
	return f(p)
}

// Empty returns a writer that discards all writes (Monoid identity).
func (f WriteFunc) Empty() WriteFunc {
	return func(p []byte) (int, error) {
		return len(p), nil
	}
}

// Compose creates a writer that writes to both writers (Monoid operation).
func (f WriteFunc) Compose(other WriteFunc) WriteFunc {
	return f.Tee(other)
}

// Tee writes to every writer in order and stops at the first failure.
func (f WriteFunc) Tee(others ...WriteFunc) WriteFunc {
	all := append([]WriteFunc{f}, others...)
	return func(p []byte) (int, error) {
		for _, w := range all {
			n, err := w(p)
			if err != nil {
				return n, err
			}
			if n != len(p) {
				return n, io.ErrShortWrite
			}
		}
		return len(p), nil
	}
}

// Map transforms bytes before writing.
func (f WriteFunc) Map(transform func([]byte) []byte) WriteFunc {
	return func(p []byte) (int, error) {
		n, err := f(transform(p))
		if err != nil {
			return n, err
		}
		return len(p), nil
	}
}

// WriteMetrics tracks write operation metrics.
// It is not safe for concurrent use.
type WriteMetrics struct {
	TotalBytes  int64
	TotalWrites int64
	Errors      int64
}

// WithMetrics adds write metrics tracking.
func WithMetrics(w io.Writer, metrics *WriteMetrics) WriteFunc {
	return func(p []byte) (int, error) {
		n, err := w.Write(p)
		metrics.TotalBytes += int64(n)
		metrics.TotalWrites++
		if err != nil {
			metrics.Errors++
		}
		return n, err
	}
}
