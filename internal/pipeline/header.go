package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "cfocli/internal/errors"
)

// Table is the mutable intermediate carried between cleaning stages:
// named columns over raw string cells. It only exists inside one pipeline
// run; the typed CleanTable is built from it by the coercer.
type Table struct {
	Columns []string
	Rows    [][]string
}

// punctuation stripped from source header labels, matching the upstream
// agency's decoration habits ("% Inc.(Dec.)", "REGION*", ...).
const headerPunctuation = "*%()."

// SanitizeLabel normalizes one raw header cell into a usable column name:
// whitespace trimmed, a trailing ".0" float-formatting artifact removed,
// decoration punctuation stripped, and the remaining spaces turned into
// underscores. Punctuation goes first, so a space a stripped prefix leaves
// behind ("% Inc") survives as a leading underscore.
func SanitizeLabel(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".0")
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(headerPunctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.ReplaceAll(s, " ", "_")
}

// ResolveHeader extracts the configured header row of a grid, sanitizes the
// labels, and returns the named table over the rows below it.
//
// When canonical column names are configured and the detected count lines
// up, the canonical names win outright - source labels in these files are
// inconsistent abbreviations and the configuration is authoritative. With
// allowWider, a wider grid is cut down to the canonical width first (some
// families carry trailing junk columns). A count disagreement is reported
// as a soft header-shape mismatch: the sanitized labels are returned and
// the caller decides how far the table degrades.
func ResolveHeader(grid *RawGrid, headerRow int, canonical []string, allowWider bool) (*Table, error) {
	if grid == nil || headerRow >= len(grid.Rows) {
		return nil, apperrors.NewSourceError(
			fmt.Sprintf("header row %d beyond grid of %d rows", headerRow, gridLen(grid)), nil)
	}

	width := 0
	for _, row := range grid.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]string, width)
	headerCells := grid.Rows[headerRow]
	for i := 0; i < width; i++ {
		if i < len(headerCells) {
			columns[i] = SanitizeLabel(headerCells[i])
		}
	}
	dedupeColumns(columns)

	body := make([][]string, 0, len(grid.Rows)-headerRow-1)
	for _, row := range grid.Rows[headerRow+1:] {
		cells := make([]string, width)
		copy(cells, row)
		body = append(body, cells)
	}

	table := &Table{Columns: columns, Rows: body}

	if len(canonical) == 0 {
		return table, nil
	}

	switch {
	case width == len(canonical):
		table.Columns = append([]string(nil), canonical...)
	case width > len(canonical) && allowWider:
		table.Columns = append([]string(nil), canonical...)
		for i, row := range table.Rows {
			table.Rows[i] = row[:len(canonical)]
		}
	default:
		return table, apperrors.NewHeaderMismatchError(
			fmt.Sprintf("sheet %q: %d columns detected, %d configured", grid.Sheet, width, len(canonical)), nil)
	}
	return table, nil
}

// dedupeColumns makes duplicate sanitized labels unique by numeric suffix,
// first occurrence keeping the bare name.
func dedupeColumns(columns []string) {
	seen := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			continue
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			columns[i] = name + "_" + strconv.Itoa(n)
		}
	}
}

func gridLen(grid *RawGrid) int {
	if grid == nil {
		return 0
	}
	return len(grid.Rows)
}
