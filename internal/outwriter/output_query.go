package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteQueryResult outputs a query payload, dispatching based on the output
// format configured. Text mode renders a field/value table; nested sections
// appear as inline JSON.
func (ow *OutWriter) WriteQueryResult(payload any, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut, schema.CSVOut:
		// Query payloads are irregular mappings; CSV falls back to JSON.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, payload)
		}, "JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQueryTable(w, payload, maxValueWidth(cfg))
		}, "table")
	}
}

// maxValueWidth is the room left for the value column after the field
// column, borders and padding.
func maxValueWidth(cfg *contract.Config) int {
	available := GetTableWidth(cfg) - 30
	if available < 20 {
		available = 20
	}
	return available
}

// writeQueryTable flattens the payload's JSON form into sorted field/value rows.
func writeQueryTable(w io.Writer, payload any, valueWidth int) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal query payload: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("failed to flatten query payload: %w", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})

	var data [][]string
	for _, name := range names {
		value := truncateValue(renderValue(fields[name]), valueWidth)
		if name == "productivity_level" {
			value = contract.ColorizeLevelLabel(value)
		}
		data = append(data, []string{name, value})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// renderValue shows scalars bare and nested structures as compact JSON.
func renderValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// truncateValue caps a cell at width runes with an ellipsis.
func truncateValue(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
