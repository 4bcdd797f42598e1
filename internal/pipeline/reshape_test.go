package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfocli/pkg/contracts/domain"
)

func wideYearTable() *domain.CleanTable {
	return &domain.CleanTable{
		Columns: []domain.ColumnSpec{
			{Name: "COUNTRY", Kind: domain.ColumnKindKey},
			{Name: "1981", Kind: domain.ColumnKindYear},
			{Name: "1982", Kind: domain.ColumnKindYear},
			{Name: "TOTAL", Kind: domain.ColumnKindNumeric},
			{Name: "_Inc_Dec", Kind: domain.ColumnKindNumeric},
			{Name: "Unnamed: 5", Kind: domain.ColumnKindNumeric},
		},
		Records: []domain.CleanRecord{
			{"COUNTRY": "USA", "1981": int64(35000), "1982": int64(36000), "TOTAL": int64(71000), "_Inc_Dec": int64(0), "Unnamed: 5": int64(0)},
			{"COUNTRY": "CANADA", "1981": int64(4000), "1982": int64(4200), "TOTAL": int64(8200), "_Inc_Dec": int64(0), "Unnamed: 5": int64(0)},
		},
	}
}

func TestYearColumnsExcludeAggregates(t *testing.T) {
	assert.Equal(t, []string{"1981", "1982"}, YearColumns(wideYearTable()))
}

func TestValueColumnsExcludeAggregates(t *testing.T) {
	// TOTAL, _Inc_Dec, and Unnamed spill columns are all excluded.
	assert.Equal(t, []string{"1981", "1982"}, ValueColumns(wideYearTable()))
}

func TestMelt(t *testing.T) {
	long := Melt(wideYearTable())

	require.Len(t, long, 4)
	assert.Equal(t, domain.LongRecord{Entity: "USA", Year: 1981, Value: 35000}, long[0])
	assert.Equal(t, domain.LongRecord{Entity: "USA", Year: 1982, Value: 36000}, long[1])
	assert.Equal(t, domain.LongRecord{Entity: "CANADA", Year: 1981, Value: 4000}, long[2])
	assert.Equal(t, domain.LongRecord{Entity: "CANADA", Year: 1982, Value: 4200}, long[3])
}

func TestMeltWithoutYearColumns(t *testing.T) {
	table := &domain.CleanTable{
		Columns: []domain.ColumnSpec{
			{Name: "AGE_GROUP", Kind: domain.ColumnKindKey},
			{Name: "COUNT", Kind: domain.ColumnKindNumeric},
		},
		Records: []domain.CleanRecord{{"AGE_GROUP": "15-19", "COUNT": int64(100)}},
	}

	assert.Nil(t, Melt(table))
}

func TestAddRowTotalsIntegral(t *testing.T) {
	table := wideYearTable()
	AddRowTotals(table, "Total_Emigrants")

	spec, ok := table.Column("Total_Emigrants")
	require.True(t, ok)
	assert.Equal(t, domain.ColumnKindDerived, spec.Kind)

	assert.Equal(t, int64(71000), table.Records[0]["Total_Emigrants"])
	assert.Equal(t, int64(8200), table.Records[1]["Total_Emigrants"])
}

func TestAddRowTotalsFloat(t *testing.T) {
	table := &domain.CleanTable{
		Columns: []domain.ColumnSpec{
			{Name: "KEY", Kind: domain.ColumnKindKey},
			{Name: "1981", Kind: domain.ColumnKindYear},
			{Name: "1982", Kind: domain.ColumnKindYear},
		},
		Records: []domain.CleanRecord{
			{"KEY": "a", "1981": 1.5, "1982": 2.25},
		},
	}

	AddRowTotals(table, "SUM")

	assert.InDelta(t, 3.75, table.Records[0].Float("SUM"), 1e-9)
}

func TestAddRowTotalsEmptyTable(t *testing.T) {
	table := &domain.CleanTable{}
	AddRowTotals(table, "SUM")
	assert.Empty(t, table.Columns)
}

func TestColumnTotals(t *testing.T) {
	totals := ColumnTotals(wideYearTable())

	assert.InDelta(t, 39000, totals["1981"], 1e-9)
	assert.InDelta(t, 40200, totals["1982"], 1e-9)
	assert.NotContains(t, totals, "TOTAL")
}
