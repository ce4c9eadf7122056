package fpidioms

import "fmt"

// NoHumanFound is returned by ExtractName for an empty option.
const NoHumanFound = "No human found"

// Human is a named record.
type Human struct {
	Name string `json:"name"`
}

// String renders the record in debug form.
func (h Human) String() string {
	return fmt.Sprintf("Human { name: %q }", h.Name)
}

// ExtractName returns the name of the wrapped human, or NoHumanFound.
func ExtractName(human Option[Human]) string {
	return MatchOption(human,
		func(h Human) string { return h.Name },
		func() string { return NoHumanFound },
	)
}
