package loc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// WriteBreakdown saves the per-extension counts as JSON. The total is kept
// alongside the extensions under the "total" key so the file is usable as a
// standalone summary.
func WriteBreakdown(path string, report *domain.LocReport) error {
	out := make(map[string]int, len(report.ByExtension)+1)
	for ext, count := range report.ByExtension {
		out[ext] = count
	}
	out["total"] = report.Total

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal loc breakdown: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save loc breakdown to %s: %w", path, err)
	}
	return nil
}
