package cost

import (
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// Registry manages COCOMO factor sets keyed by project category
type Registry interface {
	// Register adds a new project category with its factor set
	Register(category domain.ProjectCategory, factors domain.CocomoFactors) error
	// Factors returns the factor set for the given category
	Factors(category domain.ProjectCategory) (domain.CocomoFactors, error)
	// ListCategories returns the registered categories, sorted by name
	ListCategories() []domain.ProjectCategory
}

type registry struct {
	mu      sync.RWMutex
	factors map[domain.ProjectCategory]domain.CocomoFactors
}

// NewRegistry creates an empty category registry
func NewRegistry() Registry {
	return &registry{
		factors: make(map[domain.ProjectCategory]domain.CocomoFactors),
	}
}

// DefaultRegistry returns a registry preloaded with the basic COCOMO
// project classes.
func DefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(domain.CategoryOrganic, domain.CocomoFactors{A: 2.4, B: 1.05, C: 2.5, D: 0.38})
	_ = r.Register(domain.CategorySemiDetached, domain.CocomoFactors{A: 3.0, B: 1.12, C: 2.5, D: 0.35})
	_ = r.Register(domain.CategoryEmbedded, domain.CocomoFactors{A: 3.6, B: 1.20, C: 2.5, D: 0.32})
	return r
}

func (r *registry) Register(category domain.ProjectCategory, factors domain.CocomoFactors) error {
	if category == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	if factors.A <= 0 || factors.C <= 0 {
		return fmt.Errorf("factors for category %q must have positive coefficients", category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factors[category]; exists {
		return fmt.Errorf("category %q is already registered", category)
	}

	r.factors[category] = factors
	return nil
}

func (r *registry) Factors(category domain.ProjectCategory) (domain.CocomoFactors, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factors, exists := r.factors[category]
	if !exists {
		return domain.CocomoFactors{}, fmt.Errorf("category %q is not registered", category)
	}
	return factors, nil
}

func (r *registry) ListCategories() []domain.ProjectCategory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.ProjectCategory, 0, len(r.factors))
	for category := range r.factors {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}
