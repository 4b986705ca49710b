package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Inputs maps placeholder names to their rendered textual values. The mapping
// is built right before rendering and is not reused afterwards.
type Inputs map[string]string

// MissingFieldError reports a placeholder with no corresponding input value.
// A missing field is a caller programming error, not a transient condition.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("report input is missing required field %q", e.Field)
}

// Render substitutes every placeholder in the report template with its value
// from inputs. All literal text, spacing, and field order are preserved
// exactly. Rendering fails with MissingFieldError on the first placeholder
// without a value; no partial output is produced.
func Render(inputs Inputs) (string, error) {
	var b strings.Builder
	b.Grow(len(textTemplate))

	rest := textTemplate
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			b.WriteString(rest)
			break
		}

		name := rest[open+1 : open+end]
		value, ok := inputs[name]
		if !ok {
			return "", &MissingFieldError{Field: name}
		}

		b.WriteString(rest[:open])
		b.WriteString(value)
		rest = rest[open+end+1:]
	}

	return b.String(), nil
}

// Reporter renders the cost estimation report to a writer
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(inputs Inputs) error {
	out, err := Render(inputs)
	if err != nil {
		return err
	}

	_, err = io.WriteString(r.writer, out)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
