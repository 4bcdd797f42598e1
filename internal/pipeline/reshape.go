package pipeline

import (
	"strconv"
	"strings"

	"cfocli/pkg/contracts/domain"
)

// aggregateTokens excludes aggregate and spill columns from value-column
// selection by name, case-insensitive substring. Pattern exclusion rather
// than per-dataset enumeration: the families share these aggregate naming
// habits but not exact names ("TOTAL", "Total_Emigrants", "_Inc_Dec",
// "Unnamed: 3").
var aggregateTokens = []string{"TOTAL", "INC", "UNNAMED"}

func isAggregateColumn(name string) bool {
	upper := strings.ToUpper(name)
	for _, token := range aggregateTokens {
		if strings.Contains(upper, token) {
			return true
		}
	}
	return false
}

// YearColumns returns the table's value columns whose names are literal
// four-digit years, excluding aggregate columns. These are the columns
// that participate in reshaping.
func YearColumns(table *domain.CleanTable) []string {
	var out []string
	for _, col := range table.Columns {
		if isAggregateColumn(col.Name) {
			continue
		}
		if yearName.MatchString(col.Name) {
			out = append(out, col.Name)
		}
	}
	return out
}

// ValueColumns returns every numeric value column that is not an
// aggregate, year-named or otherwise. Used for totals over entity-keyed
// families whose value columns are themselves categories (major
// destination countries).
func ValueColumns(table *domain.CleanTable) []string {
	var out []string
	for _, col := range table.Columns {
		if col.Kind != domain.ColumnKindYear && col.Kind != domain.ColumnKindNumeric {
			continue
		}
		if isAggregateColumn(col.Name) {
			continue
		}
		out = append(out, col.Name)
	}
	return out
}

// Melt pivots a wide year-indexed table into (entity, year, value) triples
// for time-series consumption: one LongRecord per key row per year column.
func Melt(table *domain.CleanTable) []domain.LongRecord {
	keyCol := table.KeyColumn()
	years := YearColumns(table)
	if keyCol == "" || len(years) == 0 {
		return nil
	}

	out := make([]domain.LongRecord, 0, len(table.Records)*len(years))
	for _, record := range table.Records {
		entity := record.String(keyCol)
		for _, yearCol := range years {
			year, err := strconv.Atoi(yearCol)
			if err != nil {
				continue
			}
			out = append(out, domain.LongRecord{
				Entity: entity,
				Year:   year,
				Value:  record.Float(yearCol),
			})
		}
	}
	return out
}

// AddRowTotals derives a per-row sum across all non-aggregate value
// columns into totalColumn. Independent of reshaping; a table can carry
// both a melt and a totals column.
func AddRowTotals(table *domain.CleanTable, totalColumn string) {
	if table.Empty() {
		return
	}
	cols := ValueColumns(table)
	if _, exists := table.Column(totalColumn); !exists {
		table.Columns = append(table.Columns, domain.ColumnSpec{Name: totalColumn, Kind: domain.ColumnKindDerived})
	}
	integral := true
	if len(cols) > 0 {
		if _, ok := table.Records[0][cols[0]].(float64); ok {
			integral = false
		}
	}
	for _, record := range table.Records {
		sum := 0.0
		for _, col := range cols {
			sum += record.Float(col)
		}
		if integral {
			record[totalColumn] = int64(sum)
		} else {
			record[totalColumn] = sum
		}
	}
}

// ColumnTotals sums each non-aggregate value column down the table,
// returning column name to total. This feeds the cumulative
// per-destination comparison for the year-keyed families.
func ColumnTotals(table *domain.CleanTable) map[string]float64 {
	totals := make(map[string]float64)
	for _, col := range ValueColumns(table) {
		for _, record := range table.Records {
			totals[col] += record.Float(col)
		}
	}
	return totals
}
