package fuzzy

import (
	"errors"
	"fmt"
)

// ErrInvalidPriority is returned when a request carries a priority outside
// the supported evaluation modes.
var ErrInvalidPriority = errors.New("evaluation priority must be time or spend")

// ErrDegenerateAggregate is returned by centroid defuzzification when the
// aggregated membership curve is entirely zero (no rule fired above zero).
// The evaluator resolves it deterministically instead of propagating it.
var ErrDegenerateAggregate = errors.New("aggregated membership curve is entirely zero")

// DataInsufficientError reports that the dataset snapshot lacks the minimum
// observations needed to compute a statistic the rule base depends on.
type DataInsufficientError struct {
	Statistic string
	Need      int
	Got       int
}

func (e *DataInsufficientError) Error() string {
	return fmt.Sprintf("insufficient data for %s: need at least %d observations, got %d", e.Statistic, e.Need, e.Got)
}

// IsDataInsufficient reports whether err is a DataInsufficientError.
func IsDataInsufficient(err error) bool {
	var die *DataInsufficientError
	return errors.As(err, &die)
}
