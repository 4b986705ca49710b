package cost

import (
	"testing"

	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []domain.ProjectCategory{
		domain.CategoryEmbedded,
		domain.CategoryOrganic,
		domain.CategorySemiDetached,
	}, r.ListCategories())

	factors, err := r.Factors(domain.CategorySemiDetached)
	require.NoError(t, err)
	assert.Equal(t, domain.CocomoFactors{A: 3.0, B: 1.12, C: 2.5, D: 0.35}, factors)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	err := r.Register("custom", domain.CocomoFactors{A: 2.0, B: 1.0, C: 2.5, D: 0.35})
	require.NoError(t, err)

	err = r.Register("custom", domain.CocomoFactors{A: 2.0, B: 1.0, C: 2.5, D: 0.35})
	assert.Error(t, err, "duplicate registration must fail")

	err = r.Register("", domain.CocomoFactors{A: 2.0, B: 1.0, C: 2.5, D: 0.35})
	assert.Error(t, err, "empty category must fail")

	err = r.Register("bad", domain.CocomoFactors{A: 0, B: 1.0, C: 2.5, D: 0.35})
	assert.Error(t, err, "non-positive coefficients must fail")
}

func TestRegistry_Factors_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Factors("nope")
	assert.Error(t, err)
}
