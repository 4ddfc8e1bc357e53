package tileutil

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table is a declarative table description, typically decoded from a YAML
// or JSON document. GroupBy, when non-nil, selects the grouping column.
type Table struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
	GroupBy *int       `json:"group_by,omitempty" yaml:"group_by,omitempty"`
}

// ParseTableYAML decodes a YAML table description. Decode failures wrap
// [ErrInvalidTable].
func ParseTableYAML(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	return &t, nil
}

// Format renders the described table.
func (t *Table) Format() string {
	if t.GroupBy != nil {
		return FormatGroupedTable(t.Rows, t.Headers, *t.GroupBy)
	}
	return FormatTable(t.Rows, t.Headers)
}
