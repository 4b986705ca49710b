package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/report"
)

func sampleEstimate() *domain.Estimate {
	return &domain.Estimate{
		Category:        domain.CategorySemiDetached,
		Loc:             5000,
		Kloc:            5.0,
		EAF:             1.2,
		Effort:          16.5,
		Time:            6.2,
		People:          2.7,
		DeveloperCost:   150000,
		FinalSystemCost: 200000,
		PaidSWCost:      25000,
		MiscCost:        10000,
		TotalCost:       235000,
	}
}

func TestMapEstimateToReportInputs(t *testing.T) {
	inputs := MapEstimateToReportInputs(sampleEstimate())

	for _, field := range report.Fields {
		_, ok := inputs[field]
		assert.True(t, ok, "missing report field %q", field)
	}

	assert.Equal(t, "1.2", inputs[report.FieldEAF])
	assert.Equal(t, "5000", inputs[report.FieldLoc])
	assert.Equal(t, "5.0", inputs[report.FieldKloc], "whole decimals keep a fractional digit")
	assert.Equal(t, "2.7", inputs[report.FieldPeople])
	assert.Equal(t, "150000.00", inputs[report.FieldDeveloperCost])
	assert.Equal(t, "235000.00", inputs[report.FieldTotalCost])
}

func TestMapEstimateToReportInputs_Renders(t *testing.T) {
	inputs := MapEstimateToReportInputs(sampleEstimate())

	out, err := report.Render(inputs)
	require.NoError(t, err)
	assert.Contains(t, out, "Efforts Adjustment Factor (EAF): 1.2")
	assert.Contains(t, out, "KLOC: 5.0")
}

func TestMapEstimateToAPI(t *testing.T) {
	e := sampleEstimate()
	mapped := MapEstimateToAPI(e)

	assert.Equal(t, "semi-detached", mapped.Category)
	assert.Equal(t, e.Loc, mapped.Loc)
	assert.Equal(t, e.TotalCost, mapped.TotalCost)
	assert.Equal(t, e.People, mapped.People)
}

func TestMapLocReportToAPI(t *testing.T) {
	mapped := MapLocReportToAPI(&domain.LocReport{
		Total:       10,
		ByExtension: map[string]int{"go": 10},
	})

	assert.Equal(t, 10, mapped.Total)
	assert.Equal(t, map[string]int{"go": 10}, mapped.ByExtension)
}
