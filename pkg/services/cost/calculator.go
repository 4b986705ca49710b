package cost

import (
	"fmt"
	"math"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

const (
	DefaultEAF         = 1.0
	DefaultMachineCost = 55000
	DefaultMiscCost    = 10000
	DefaultPaidSWCost  = 0

	// Machines are amortized across projects, so only a quarter of the
	// hardware price is attributed to a single estimate.
	systemCostShare = 0.25
)

// Calculator runs the basic COCOMO model for one project category
type Calculator struct {
	category domain.ProjectCategory
	factors  domain.CocomoFactors
}

func NewCalculator(category domain.ProjectCategory, factors domain.CocomoFactors) *Calculator {
	return &Calculator{category: category, factors: factors}
}

// Estimate computes effort, schedule, staffing and the cost breakdown for
// the given parameters. Zero-value optional parameters fall back to the
// model defaults.
func (c *Calculator) Estimate(params domain.EstimateParams) (*domain.Estimate, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	if params.EAF == 0 {
		params.EAF = DefaultEAF
	}
	if params.MachineCost == 0 {
		params.MachineCost = DefaultMachineCost
	}
	if params.MiscCost == 0 {
		params.MiscCost = DefaultMiscCost
	}

	kloc := float64(params.Loc) / 1000

	// E = a * KLOC^b * EAF
	effort := round2(c.factors.A * math.Pow(kloc, c.factors.B) * params.EAF)

	// T = c * E^d
	duration := round2(c.factors.C * math.Pow(effort, c.factors.D))
	if duration == 0 {
		return nil, fmt.Errorf("estimated time is zero for %d LOC; cannot derive staffing", params.Loc)
	}

	// P = E / T
	people := round2(effort / duration)

	developerCost := round2(duration * params.AvgSalary * float64(params.TeamSize))
	systemCost := round2(params.MachineCost * float64(params.TeamSize))
	finalSystemCost := round2(systemCost*systemCostShare + params.AdditionalHWCost)
	totalCost := round2(developerCost + finalSystemCost + params.PaidSWCost + params.MiscCost)

	return &domain.Estimate{
		Category:        c.category,
		Loc:             params.Loc,
		Kloc:            round2(kloc),
		EAF:             params.EAF,
		Effort:          effort,
		Time:            duration,
		People:          people,
		DeveloperCost:   developerCost,
		SystemCost:      systemCost,
		FinalSystemCost: finalSystemCost,
		PaidSWCost:      params.PaidSWCost,
		MiscCost:        params.MiscCost,
		TotalCost:       totalCost,
	}, nil
}

func validateParams(params domain.EstimateParams) error {
	if params.Loc <= 0 {
		return fmt.Errorf("loc must be positive, got %d", params.Loc)
	}
	if params.AvgSalary < 0 {
		return fmt.Errorf("average salary cannot be negative")
	}
	if params.TeamSize < 1 {
		return fmt.Errorf("team size must be at least 1, got %d", params.TeamSize)
	}
	if params.AdditionalHWCost < 0 {
		return fmt.Errorf("additional hardware cost cannot be negative")
	}
	if params.EAF < 0 {
		return fmt.Errorf("eaf cannot be negative")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
