package simulation

import (
	"fmt"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

// PriceStats holds the normal-distribution parameters for quoted unit
// prices at one part complexity.
type PriceStats struct {
	Mean   float64
	StdDev float64
}

// Config carries the price statistics the simulation samples from. The
// values are confidential in real datasets, so they arrive through
// configuration rather than source constants.
type Config struct {
	Price        map[entities.Complexity]PriceStats
	MinimumPrice float64
}

// Validate checks that every complexity level has usable price statistics.
func (c Config) Validate() error {
	for _, complexity := range []entities.Complexity{
		entities.LowComplexity, entities.MediumComplexity, entities.HighComplexity,
	} {
		stats, ok := c.Price[complexity]
		if !ok {
			return fmt.Errorf("missing price statistics for %s complexity", complexity)
		}
		if stats.Mean <= 0 {
			return fmt.Errorf("price mean for %s complexity must be positive, got %g", complexity, stats.Mean)
		}
		if stats.StdDev < 0 {
			return fmt.Errorf("price standard deviation for %s complexity cannot be negative, got %g", complexity, stats.StdDev)
		}
	}
	if c.MinimumPrice < 0 {
		return fmt.Errorf("minimum price cannot be negative, got %g", c.MinimumPrice)
	}
	return nil
}
