/*
Package fpidioms demonstrates functional programming idioms with small pure
Go functions.

# Overview

Each idiom is an ordinary exported function or type. Nothing in the package
holds state: every call reads its arguments, allocates its result and leaves
its inputs untouched. A Runner strings the demonstrations together and prints
one line per idiom.

# Idioms

Recursion:

	Factorial(5) // 120

Mapping and pure functions:

	Map([]int{1, 2, 3}, Square) // [1 4 9]

Composition, g runs first:

	cube := func(x int) int { return x * x * x }
	addOne := func(x int) int { return x + 1 }
	Compose([]int{1, 2}, cube, addOne) // [8 27]

Endo gives the same composition a monoid shape:

	Endo[int](cube).Compose(addOne) // cube after addOne
	Endo[int](cube).Then(addOne)    // addOne after cube

Folds:

	Sum([]int{1, 2, 3, 4, 5}) // 15

	concat := func(a, s string) string { return a + s }
	Fold([]string{"a", "b"}, "", concat) // "ab"

Currying:

	addFive := CurryAdd(5)
	addFive(3)  // 8
	addFive(10) // 15

	mul := Curry(func(a, b int) int { return a * b })
	mul(6)(7) // 42

# Tagged Variants

Option and Result are closed two-armed variants. Match functions force both
arms to be handled:

	name := MatchOption(Some(Human{Name: "Sura"}),
	    func(h Human) string { return h.Name },
	    func() string { return NoHumanFound },
	)

	fmt.Println(Some(42))          // Some(42)
	fmt.Println(None[int]())       // None
	fmt.Println(Ok(42))            // Ok(42)
	fmt.Println(Err[int](io.EOF))  // Err(EOF)

# Runner

	runner := NewRunner(logger, DefaultSteps()...)
	if err := runner.Run(os.Stdout); err != nil {
	    return err
	}

Output:

	Factorial of 5: 120
	Map (doubled): [2, 4, 6, 8, 10]
	Square of 4: 16
	Composition (add_one then cube): [8, 27, 64, 125, 216]
	Sum: 15
	Curried add(5, 3): 8
	Enum (Option): Some(42)
	Result: Ok(42)
	Pattern matching (name): Sura

The same results are available as data through Runner.Report, which encodes
to text, JSON or YAML.

# Package Import

	import fp "github.com/Pure-Company/fpidioms"
*/
package fpidioms
