package estimate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/de-tools/cost-compass/pkg/adapters"
	"github.com/de-tools/cost-compass/pkg/models/api"
	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/cost"
	"github.com/de-tools/cost-compass/pkg/services/loc"
	"github.com/de-tools/cost-compass/pkg/services/report"
)

const (
	reportFileName    = "project_cost_report.txt"
	breakdownFileName = "loc_counts.json"
)

// Collector counts lines of code for one repository
type Collector interface {
	Run(ctx context.Context) (*domain.LocReport, error)
}

// CollectorFactory builds a Collector for a request. The factory decides how
// to resolve credentials when the request carries no token.
type CollectorFactory func(repo domain.Repo, token string, opts domain.LocOptions) Collector

type Handler struct {
	registry  cost.Registry
	collector CollectorFactory
	profile   *cost.Profile
	outputDir string
}

// NewHandler builds the estimate handler. profile, when non-nil, seeds
// request parameters that the caller omitted; outputDir, when non-empty, is
// where each successful estimation drops its report and LOC breakdown files.
func NewHandler(registry cost.Registry, collector CollectorFactory, profile *cost.Profile, outputDir string) *Handler {
	return &Handler{
		registry:  registry,
		collector: collector,
		profile:   profile,
		outputDir: outputDir,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var response []api.Category
	for _, category := range h.registry.ListCategories() {
		response = append(response, api.Category{Name: string(category)})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode categories")
	}
}

func (h *Handler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	est, locReport, err := h.estimate(w, r, false)
	if err != nil {
		return
	}

	response := api.EstimateResponse{
		Estimate: adapters.MapEstimateToAPI(est),
		Loc:      adapters.MapLocReportToAPI(locReport),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode estimate")
	}
}

// RenderReport responds with the fixed-layout text report. The layout names
// the semi-detached category in a literal line, so other categories are
// rejected here rather than rendered under a wrong header.
func (h *Handler) RenderReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	est, _, err := h.estimate(w, r, true)
	if err != nil {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	reporter := report.NewReporter(w)
	if err := reporter.Handle(adapters.MapEstimateToReportInputs(est)); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to render report")
	}
}

// estimate runs the collect-then-calculate pipeline for a request. It writes
// the error response itself and returns a non-nil error when the caller must
// stop. fixedCategory restricts the request to the category named by the
// report layout.
func (h *Handler) estimate(w http.ResponseWriter, r *http.Request, fixedCategory bool) (*domain.Estimate, *domain.LocReport, error) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil, nil, err
	}

	h.applyProfileDefaults(&req)

	if req.RepoURL == "" {
		err := errors.New("repo_url is required")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, err
	}
	if req.TeamSize < 1 {
		err := errors.New("team_size must be at least 1")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, err
	}
	if req.AvgSalary < 0 || req.AdditionalHWCost < 0 {
		err := errors.New("invalid cost parameters")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, err
	}

	repo, err := loc.ParseRepoURL(req.RepoURL)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, err
	}

	category := domain.CategorySemiDetached
	if req.Category != "" {
		category = domain.ProjectCategory(req.Category)
	}
	if fixedCategory && category != domain.CategorySemiDetached {
		err := fmt.Errorf("the report layout supports only %s projects", domain.CategorySemiDetached)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, err
	}
	factors, err := h.registry.Factors(category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, err
	}

	includeTests := true
	if req.IncludeTests != nil {
		includeTests = *req.IncludeTests
	}
	collector := h.collector(repo, req.Token, domain.LocOptions{
		IncludeTests:      includeTests,
		MaxFileSizeMB:     req.MaxFileSizeMB,
		ExcludeExtensions: req.ExcludeExtensions,
	})

	locReport, err := collector.Run(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Str("repo", repo.String()).
			Msg("loc collection failed")
		status := http.StatusBadGateway
		if errors.Is(err, loc.ErrRateLimited) {
			status = http.StatusTooManyRequests
		}
		http.Error(w, fmt.Sprintf("failed to count lines of code: %v", err), status)
		return nil, nil, err
	}

	params := domain.EstimateParams{
		Loc:              locReport.Total,
		EAF:              req.EAF,
		AvgSalary:        req.AvgSalary,
		TeamSize:         req.TeamSize,
		AdditionalHWCost: req.AdditionalHWCost,
	}
	if h.profile != nil {
		params.MachineCost = h.profile.MachineCost
		params.MiscCost = h.profile.MiscCost
		params.PaidSWCost = h.profile.PaidSWCost
	}

	calculator := cost.NewCalculator(category, factors)
	est, err := calculator.Estimate(params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return nil, nil, err
	}

	h.saveArtifacts(ctx, est, locReport)
	return est, locReport, nil
}

// applyProfileDefaults fills request parameters the caller left at their
// zero value from the configured estimation profile.
func (h *Handler) applyProfileDefaults(req *api.EstimateRequest) {
	if h.profile == nil {
		return
	}

	if req.Category == "" {
		req.Category = h.profile.Category
	}
	if req.EAF == 0 {
		req.EAF = h.profile.EAF
	}
	if req.AvgSalary == 0 {
		req.AvgSalary = h.profile.AvgSalary
	}
	if req.TeamSize == 0 {
		req.TeamSize = h.profile.TeamSize
	}
	if req.AdditionalHWCost == 0 {
		req.AdditionalHWCost = h.profile.AdditionalHWCost
	}
}

// saveArtifacts persists the LOC breakdown and the text report under the
// output directory. The report file is written only for semi-detached
// estimates because its layout names that category. Failures are logged and
// do not fail the request.
func (h *Handler) saveArtifacts(ctx context.Context, est *domain.Estimate, locReport *domain.LocReport) {
	if h.outputDir == "" {
		return
	}
	logger := zerolog.Ctx(ctx)

	breakdownPath := filepath.Join(h.outputDir, breakdownFileName)
	if err := loc.WriteBreakdown(breakdownPath, locReport); err != nil {
		logger.Warn().Err(err).Msg("failed to save loc breakdown")
	}

	if est.Category != domain.CategorySemiDetached {
		return
	}
	reportPath := filepath.Join(h.outputDir, reportFileName)
	if err := report.WriteFile(reportPath, adapters.MapEstimateToReportInputs(est)); err != nil {
		logger.Warn().Err(err).Msg("failed to save report")
	}
}
