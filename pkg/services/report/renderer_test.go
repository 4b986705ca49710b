package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeInputs() Inputs {
	return Inputs{
		FieldEAF:             "1.2",
		FieldLoc:             "5000",
		FieldKloc:            "5.0",
		FieldEffort:          "16.5",
		FieldTime:            "6.2",
		FieldPeople:          "2.7",
		FieldDeveloperCost:   "150000",
		FieldFinalSystemCost: "200000",
		FieldPaidSWCost:      "25000",
		FieldMiscCost:        "10000",
		FieldTotalCost:       "235000",
	}
}

func TestRender_Scenario(t *testing.T) {
	out, err := Render(completeInputs())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	assert.Equal(t, "Efforts Adjustment Factor (EAF): 1.2", lines[3])

	costLines := []string{
		"1. Developer Cost: Rs. 150000",
		"2. Final System Cost: Rs. 200000",
		"3. Paid Software Cost: Rs. 25000",
		"4. Miscellaneous Cost: Rs. 10000",
		"5. Total Cost: Rs. 235000",
	}
	lastIdx := -1
	for _, want := range costLines {
		idx := strings.Index(out, want)
		require.NotEqual(t, -1, idx, "missing cost line: %s", want)
		assert.Greater(t, idx, lastIdx, "cost line out of order: %s", want)
		lastIdx = idx
	}
}

func TestRender_PreservesLiteralLines(t *testing.T) {
	out, err := Render(completeInputs())
	require.NoError(t, err)

	literals := []string{
		"Project Cost Estimation Report",
		"==============================",
		"Category: Semi-Detached Software Project",
		"COCOMO Calculations:",
		"Cost Estimation:",
	}
	for _, l := range literals {
		assert.Contains(t, out, l)
	}

	// The separator appears as both header underline and footer.
	assert.Equal(t, 2, strings.Count(out, "=============================="))
}

func TestRender_SubstitutesEveryPlaceholder(t *testing.T) {
	inputs := completeInputs()
	out, err := Render(inputs)
	require.NoError(t, err)

	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, "}")
	for _, field := range Fields {
		assert.NotContains(t, out, "{"+field+"}")
	}
}

func TestRender_Idempotent(t *testing.T) {
	inputs := completeInputs()

	first, err := Render(inputs)
	require.NoError(t, err)
	second, err := Render(inputs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_MissingField(t *testing.T) {
	for _, field := range Fields {
		t.Run(field, func(t *testing.T) {
			inputs := completeInputs()
			delete(inputs, field)

			out, err := Render(inputs)
			require.Error(t, err)
			assert.Empty(t, out, "no partial output on missing field")

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, field, missing.Field)
		})
	}
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle(completeInputs())
	require.NoError(t, err)

	expected, err := Render(completeInputs())
	require.NoError(t, err)
	assert.Equal(t, expected, buf.String())
}

func TestReporter_Handle_MissingField(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	inputs := completeInputs()
	delete(inputs, FieldTotalCost)

	err := reporter.Handle(inputs)
	require.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing written on error")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project_cost_report.txt")

	err := WriteFile(path, completeInputs())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	expected, err := Render(completeInputs())
	require.NoError(t, err)
	assert.Equal(t, expected, string(content))
}

func TestWriteFile_MissingField_NoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project_cost_report.txt")

	inputs := completeInputs()
	delete(inputs, FieldEAF)

	err := WriteFile(path, inputs)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
