package resolve

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingArgs reports that the animal list or the age was not provided.
var ErrMissingArgs = errors.New("missing required arguments: --type and --age")

// InvalidAgeError reports a negative age.
type InvalidAgeError struct {
	Age float64
}

// Error implements the error interface for InvalidAgeError.
func (e *InvalidAgeError) Error() string {
	return fmt.Sprintf("invalid age: age cannot be negative, got %s",
		strconv.FormatFloat(e.Age, 'f', -1, 64))
}

// UnknownSpeciesError reports an animal name that matched nothing in the
// species table. Suggestion holds the closest valid key when one is near
// enough to look like a typo, otherwise it is empty.
type UnknownSpeciesError struct {
	Name       string
	Suggestion string
}

// Error implements the error interface for UnknownSpeciesError. The message
// is user-facing and spans two lines: the failure itself, then a pointer to
// the --list flag.
func (e *UnknownSpeciesError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown animal type: %s. Did you mean '%s'?\nUse --list to view valid options.",
			e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown animal type: %s\nUse --list to view valid options.", e.Name)
}
