package nutrition

import (
	"fmt"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
)

// Policy decides how matched foods are scaled and reported.
type Policy struct {
	Name   string
	Small  float64
	Medium float64
	Large  float64
	// ServingGrams > 0 reports grams for one serving of each food.
	// Zero sums the per-100g facts and converts macros to proportions.
	ServingGrams float64
}

var (
	ProportionsPolicy = Policy{Name: "proportions", Small: 0.7, Medium: 1.0, Large: 1.5}
	ServingPolicy     = Policy{Name: "serving", Small: 0.75, Medium: 1.0, Large: 1.5, ServingGrams: 150}
)

func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", ProportionsPolicy.Name:
		return ProportionsPolicy, nil
	case ServingPolicy.Name:
		return ServingPolicy, nil
	}
	return Policy{}, fmt.Errorf("unknown nutrition policy %q", name)
}

func (p Policy) Validate() error {
	if p.Small <= 0 || p.Medium <= 0 || p.Large <= 0 {
		return fmt.Errorf("policy %s: portion multipliers must be positive", p.Name)
	}
	if p.Small > p.Medium || p.Medium > p.Large {
		return fmt.Errorf("policy %s: portion multipliers must not decrease with size", p.Name)
	}
	if p.ServingGrams < 0 {
		return fmt.Errorf("policy %s: serving grams must be non-negative", p.Name)
	}
	return nil
}

func (p Policy) Multiplier(size domain.PortionSize) float64 {
	switch size {
	case domain.PortionSmall:
		return p.Small
	case domain.PortionLarge:
		return p.Large
	}
	return p.Medium
}
