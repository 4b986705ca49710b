package report

import (
	"fmt"
	"os"
)

// WriteFile renders the report and saves it at path. The file is only
// created when rendering succeeds.
func WriteFile(path string, inputs Inputs) error {
	out, err := Render(inputs)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", path, err)
	}
	return nil
}
