package pipeline

import (
	"strings"
)

// PruneOptions configures the structural row/column filter for one dataset
// family.
type PruneOptions struct {
	// Denylist holds noise tokens matched case-insensitively as SUBSTRINGS
	// of the key cell ("GRAND TOTAL" and "TOTAL:" both hit "TOTAL").
	// Deliberately permissive; see the dataset package for the trade-off.
	Denylist []string

	// FilterRegionRows drops rows whose key starts with "Region". Used for
	// sheets that repeat regional subtotal headings between their own rows;
	// the region-keyed sheet itself keeps them.
	FilterRegionRows bool

	// MinKeyLength drops rows whose key is shorter than this many runes.
	// Some families use single-character placeholder rows.
	MinKeyLength int
}

// Prune removes structurally invalid rows and columns in place:
// fully-empty columns (and unnamed ones), fully-empty rows, rows with a
// missing or placeholder key, denylisted noise rows, and later duplicates
// of an already-seen key (first occurrence wins, no merging).
//
// The key is always the table's first column; every dataset family in this
// corpus is keyed that way.
func Prune(t *Table, opts PruneOptions) {
	dropEmptyColumns(t)
	if len(t.Columns) == 0 {
		t.Rows = nil
		return
	}
	dropEmptyRows(t)
	dropInvalidKeyRows(t, opts)
	dedupeKeyRows(t)
}

// dropEmptyColumns removes columns that are blank in every row, plus
// columns with no usable name ("Unnamed: N" spill columns some exports
// carry past the data range).
func dropEmptyColumns(t *Table) {
	if len(t.Columns) == 0 {
		return
	}
	keep := make([]bool, len(t.Columns))
	for i, name := range t.Columns {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || strings.HasPrefix(strings.ToUpper(trimmed), "UNNAMED") {
			continue
		}
		for _, row := range t.Rows {
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				keep[i] = true
				break
			}
		}
	}

	var columns []string
	for i, k := range keep {
		if k {
			columns = append(columns, t.Columns[i])
		}
	}
	for r, row := range t.Rows {
		cells := make([]string, 0, len(columns))
		for i, k := range keep {
			if k {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				cells = append(cells, cell)
			}
		}
		t.Rows[r] = cells
	}
	t.Columns = columns
}

func dropEmptyRows(t *Table) {
	rows := t.Rows[:0]
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				rows = append(rows, row)
				break
			}
		}
	}
	t.Rows = rows
}

func dropInvalidKeyRows(t *Table, opts PruneOptions) {
	rows := t.Rows[:0]
	for _, row := range t.Rows {
		key := ""
		if len(row) > 0 {
			key = strings.TrimSpace(row[0])
		}
		if key == "" || strings.EqualFold(key, "nan") {
			continue
		}
		if opts.MinKeyLength > 0 && len([]rune(key)) < opts.MinKeyLength {
			continue
		}
		if matchesDenylist(key, opts.Denylist) {
			continue
		}
		if opts.FilterRegionRows && hasFoldPrefix(key, "Region") {
			continue
		}
		rows = append(rows, row)
	}
	t.Rows = rows
}

// dedupeKeyRows keeps the first row for each key value and silently drops
// the rest. Lossy on purpose: these are hand-maintained totals sheets where
// a repeated key is a re-entry, not new data.
func dedupeKeyRows(t *Table) {
	seen := make(map[string]bool, len(t.Rows))
	rows := t.Rows[:0]
	for _, row := range t.Rows {
		key := strings.ToUpper(strings.TrimSpace(row[0]))
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, row)
	}
	t.Rows = rows
}

// matchesDenylist reports whether the key contains any denylist token,
// case-insensitively. Substring matching is intentional: source labels vary
// ("GRAND TOTAL", "TOTAL:", "Totals").
func matchesDenylist(key string, denylist []string) bool {
	if len(denylist) == 0 {
		return false
	}
	upper := strings.ToUpper(key)
	for _, token := range denylist {
		if strings.Contains(upper, strings.ToUpper(token)) {
			return true
		}
	}
	return false
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
