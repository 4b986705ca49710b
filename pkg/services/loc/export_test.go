package loc

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

func TestWriteBreakdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loc_counts.json")

	report := &domain.LocReport{
		Total:       12,
		ByExtension: map[string]int{"go": 10, "md": 2},
	}

	err := WriteBreakdown(path, report)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out map[string]int
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, map[string]int{"go": 10, "md": 2, "total": 12}, out)
}
