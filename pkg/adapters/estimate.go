package adapters

import (
	"strconv"
	"strings"

	"github.com/de-tools/cost-compass/pkg/models/api"
	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/report"
)

// MapEstimateToReportInputs renders the estimate's values into the textual
// form the report template expects. Decimals keep at least one fractional
// digit (5.0, not 5); currency amounts keep two.
func MapEstimateToReportInputs(e *domain.Estimate) report.Inputs {
	return report.Inputs{
		report.FieldEAF:             formatDecimal(e.EAF),
		report.FieldLoc:             strconv.Itoa(e.Loc),
		report.FieldKloc:            formatDecimal(e.Kloc),
		report.FieldEffort:          formatDecimal(e.Effort),
		report.FieldTime:            formatDecimal(e.Time),
		report.FieldPeople:          formatDecimal(e.People),
		report.FieldDeveloperCost:   formatAmount(e.DeveloperCost),
		report.FieldFinalSystemCost: formatAmount(e.FinalSystemCost),
		report.FieldPaidSWCost:      formatAmount(e.PaidSWCost),
		report.FieldMiscCost:        formatAmount(e.MiscCost),
		report.FieldTotalCost:       formatAmount(e.TotalCost),
	}
}

func MapEstimateToAPI(e *domain.Estimate) api.Estimate {
	return api.Estimate{
		Category:        string(e.Category),
		EAF:             e.EAF,
		Loc:             e.Loc,
		Kloc:            e.Kloc,
		Effort:          e.Effort,
		Time:            e.Time,
		People:          e.People,
		DeveloperCost:   e.DeveloperCost,
		FinalSystemCost: e.FinalSystemCost,
		PaidSWCost:      e.PaidSWCost,
		MiscCost:        e.MiscCost,
		TotalCost:       e.TotalCost,
	}
}

func MapLocReportToAPI(r *domain.LocReport) api.LocBreakdown {
	byExt := make(map[string]int, len(r.ByExtension))
	for ext, count := range r.ByExtension {
		byExt[ext] = count
	}
	return api.LocBreakdown{
		Total:       r.Total,
		ByExtension: byExt,
	}
}

func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
