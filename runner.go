package fpidioms

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// SampleNumbers returns the sequence every default demonstration reads.
// A fresh slice is returned on each call.
func SampleNumbers() []int {
	return []int{1, 2, 3, 4, 5}
}

// Step is one demonstration: a label and the rendered result.
type Step struct {
	Label  string
	Render StringerFunc
}

// Line renders the step as "<label>: <value>".
func (s Step) Line() StringerFunc {
	return s.Render.WithPrefix(s.Label + ": ")
}

// DefaultSteps returns the demonstrations in the order they are printed.
func DefaultSteps() []Step {
	numbers := SampleNumbers()

	cube := Endo[int](func(x int) int { return x * x * x })
	addOne := Endo[int](func(x int) int { return x + 1 })
	addFive := CurryAdd(5)

	return []Step{
		{
			Label:  "Factorial of 5",
			Render: Value(Factorial(5)),
		},
		{
			Label:  "Map (doubled)",
			Render: Seq(Map(numbers, func(x int) int { return x * 2 })),
		},
		{
			Label:  "Square of 4",
			Render: Value(Square(4)),
		},
		{
			Label:  "Composition (add_one then cube)",
			Render: Seq(Compose[int, int, int](numbers, cube, addOne)),
		},
		{
			Label:  "Sum",
			Render: Value(Sum(numbers)),
		},
		{
			Label:  "Curried add(5, 3)",
			Render: Value(addFive(3)),
		},
		{
			Label:  "Enum (Option)",
			Render: Value(Some(42)),
		},
		{
			Label:  "Result",
			Render: Value(Ok(42)),
		},
		{
			Label:  "Pattern matching (name)",
			Render: Text(ExtractName(Some(Human{Name: "Sura"}))),
		},
	}
}

// Runner prints a fixed sequence of demonstrations.
type Runner struct {
	steps  []Step
	logger *zap.Logger
}

// NewRunner creates a runner over steps. A nil logger disables logging.
func NewRunner(logger *zap.Logger, steps ...Step) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		steps:  steps,
		logger: logger,
	}
}

// Steps returns a copy of the runner's steps.
func (r *Runner) Steps() []Step {
	return append([]Step(nil), r.steps...)
}

// Run writes one line per step to w, in order.
// It stops at the first write error and reports which step failed.
func (r *Runner) Run(w io.Writer) error {
	var metrics WriteMetrics
	out := WithMetrics(w, &metrics)

	for i, step := range r.steps {
		line := step.Line().WithSuffix("\n").String()
		if _, err := io.WriteString(out, line); err != nil {
			r.logger.Error("write failed", zap.String("step", step.Label), zap.Error(err))
			return fmt.Errorf("write step %q: %w", step.Label, err)
		}
		r.logger.Debug("step rendered", zap.Int("index", i), zap.String("step", step.Label))
	}

	r.logger.Debug("run complete",
		zap.Int64("lines", metrics.TotalWrites),
		zap.Int64("bytes", metrics.TotalBytes),
	)
	return nil
}

// Report evaluates every step and returns the results as data.
func (r *Runner) Report() Report {
	return Report{
		Lines: Map(r.steps, func(s Step) Line {
			return Line{Label: s.Label, Value: s.Render.String()}
		}),
	}
}
