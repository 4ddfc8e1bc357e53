package tileutil

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatTable renders rows as an aligned plain-text table. Each column is
// as wide as its widest cell or header (display width, so full-width runes
// align), cells are left-justified with a single space between columns,
// and a dashed divider separates the header line from the data rows. A row
// with fewer cells than there are headers renders only the cells it has.
// The returned string is newline-terminated; no I/O is performed.
func FormatTable(rows [][]string, headers []string) string {
	return formatTable(rows, headers, -1)
}

// FormatGroupedTable renders rows bucketed by the cell at index groupBy.
// The group column is removed from the headers and from every row, and
// its values become group labels: groups are emitted in ascending label
// order, each preceded by a blank line and its bare label, with the
// group's rows in their original relative order beneath. Panics if
// groupBy is out of range for headers or for any row.
func FormatGroupedTable(rows [][]string, headers []string, groupBy int) string {
	if groupBy < 0 || groupBy >= len(headers) {
		panic(fmt.Sprintf("tileutil: group column %d out of range for %d headers", groupBy, len(headers)))
	}
	return formatTable(rows, headers, groupBy)
}

// FormatMapTable renders a map as a two-column table, one row per entry,
// sorted ascending by key. Keys and values are stringified with
// [fmt.Sprint].
func FormatMapTable[K cmp.Ordered, V any](m map[K]V, headers []string) string {
	rows := make([][]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		rows = append(rows, []string{fmt.Sprint(k), fmt.Sprint(m[k])})
	}
	return formatTable(rows, headers, -1)
}

// formatTable is the shared renderer. groupBy < 0 means no grouping: every
// row lands in the implicit ""-keyed group, which renders without a label.
func formatTable(rows [][]string, headers []string, groupBy int) string {
	groups := make(map[string][][]string)
	if groupBy >= 0 {
		headers = slices.Delete(slices.Clone(headers), groupBy, groupBy+1)
		trimmed := make([][]string, 0, len(rows))
		for _, row := range rows {
			key := row[groupBy]
			r := slices.Delete(slices.Clone(row), groupBy, groupBy+1)
			groups[key] = append(groups[key], r)
			trimmed = append(trimmed, r)
		}
		rows = trimmed
	} else {
		groups[""] = rows
	}

	// Column width: widest of the header and every cell in that position.
	// Rows too short to reach the column simply don't contribute.
	widths := make([]int, len(headers))
	for p, h := range headers {
		widths[p] = runewidth.StringWidth(h)
		for _, row := range rows {
			if len(row) > p {
				if w := runewidth.StringWidth(row[p]); w > widths[p] {
					widths[p] = w
				}
			}
		}
	}

	groupWidth := 0
	for key := range groups {
		if w := runewidth.StringWidth(key); w > groupWidth {
			groupWidth = w
		}
	}

	var sb strings.Builder
	writeRow(&sb, headers, widths, " ", 0, 0)
	// The divider must never come out narrower than the widest group label.
	writeRow(&sb, make([]string, len(headers)), widths, "-", 0, groupWidth+1)

	for _, key := range slices.Sorted(maps.Keys(groups)) {
		if key != "" {
			sb.WriteString("\n")
			sb.WriteString(key)
			sb.WriteString("\n")
		}
		for _, row := range groups[key] {
			writeRow(&sb, row, widths, " ", 1, 0)
		}
	}
	return sb.String()
}

// writeRow renders one table line: min(len(cells), len(widths)) cells,
// each prefixed by the indent, padded to its column width, and followed by
// a single separator space. If the line comes out narrower than minWidth,
// the trailing separator is dropped and pad characters fill the line out
// to minWidth.
func writeRow(sb *strings.Builder, cells []string, widths []int, pad string, indent, minWidth int) {
	n := min(len(cells), len(widths))
	parts := make([]string, 0, n+1)
	total := 0
	for i := range n {
		part := strings.Repeat(" ", indent) + padCell(cells[i], widths[i], pad) + " "
		parts = append(parts, part)
		total += runewidth.StringWidth(part)
	}
	if total < minWidth && len(parts) > 0 {
		last := parts[len(parts)-1]
		parts[len(parts)-1] = last[:len(last)-1]
		parts = append(parts, strings.Repeat(pad, minWidth-total+1))
	}
	for _, part := range parts {
		sb.WriteString(part)
	}
	sb.WriteString("\n")
}

// padCell left-justifies s to width display columns using pad.
func padCell(s string, width int, pad string) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(pad, n)
	}
	return s
}
