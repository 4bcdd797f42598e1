package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPruneDenylistSubstringMatch(t *testing.T) {
	table := &Table{
		Columns: []string{"COUNTRY", "1981"},
		Rows: [][]string{
			{"USA", "35000"},
			{"GRAND TOTAL", "61863"},
			{"Total:", "61863"},
			{"totals", "61863"},
			{"CANADA", "4000"},
		},
	}

	Prune(table, PruneOptions{Denylist: []string{"TOTAL"}})

	assert.Equal(t, [][]string{
		{"USA", "35000"},
		{"CANADA", "4000"},
	}, table.Rows)
}

func TestPruneRegionRows(t *testing.T) {
	table := &Table{
		Columns: []string{"PROVINCE", "1988"},
		Rows: [][]string{
			{"Region IV - CALABARZON", ""},
			{"Cavite", "1200"},
			{"region x", "999"},
			{"Laguna", "800"},
		},
	}

	Prune(table, PruneOptions{FilterRegionRows: true})

	assert.Equal(t, [][]string{
		{"Cavite", "1200"},
		{"Laguna", "800"},
	}, table.Rows)
}

func TestPruneRegionRowsKeptWithoutFilter(t *testing.T) {
	table := &Table{
		Columns: []string{"REGION", "1988"},
		Rows: [][]string{
			{"Region I - Ilocos", "500"},
			{"Region II - Cagayan Valley", "300"},
		},
	}

	Prune(table, PruneOptions{FilterRegionRows: false})

	assert.Len(t, table.Rows, 2)
}

func TestPruneMinKeyLength(t *testing.T) {
	table := &Table{
		Columns: []string{"EDUCATIONAL_ATTAINMENT", "1988"},
		Rows: [][]string{
			{"-", "0"},
			{"College", "5000"},
		},
	}

	Prune(table, PruneOptions{MinKeyLength: 2})

	assert.Equal(t, [][]string{{"College", "5000"}}, table.Rows)
}

func TestPruneMissingAndPlaceholderKeys(t *testing.T) {
	table := &Table{
		Columns: []string{"KEY", "1981"},
		Rows: [][]string{
			{"", "100"},
			{"nan", "200"},
			{"NaN", "300"},
			{"real", "400"},
		},
	}

	Prune(table, PruneOptions{})

	assert.Equal(t, [][]string{{"real", "400"}}, table.Rows)
}

func TestPruneDuplicateKeysFirstWins(t *testing.T) {
	table := &Table{
		Columns: []string{"COUNTRY", "1981"},
		Rows: [][]string{
			{"USA", "35000"},
			{"usa", "99999"},
			{"USA ", "11111"},
			{"CANADA", "4000"},
		},
	}

	Prune(table, PruneOptions{})

	assert.Equal(t, [][]string{
		{"USA", "35000"},
		{"CANADA", "4000"},
	}, table.Rows)
}

func TestPruneEmptyRowsAndColumns(t *testing.T) {
	table := &Table{
		Columns: []string{"KEY", "1981", "Unnamed: 2", "", "1982"},
		Rows: [][]string{
			{"a", "1", "junk", "junk", "2"},
			{"", "", "", "", ""},
			{"b", "3", "", "", "4"},
		},
	}

	Prune(table, PruneOptions{})

	assert.Equal(t, []string{"KEY", "1981", "1982"}, table.Columns)
	assert.Equal(t, [][]string{
		{"a", "1", "2"},
		{"b", "3", "4"},
	}, table.Rows)
}

func TestPruneAllColumnsEmpty(t *testing.T) {
	table := &Table{
		Columns: []string{"", "Unnamed: 1"},
		Rows:    [][]string{{"", ""}},
	}

	Prune(table, PruneOptions{})

	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}
