package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfocli/pkg/contracts/domain"
)

func sampleTable() *domain.CleanTable {
	return &domain.CleanTable{
		Columns: []domain.ColumnSpec{
			{Name: "COUNTRY", Kind: domain.ColumnKindKey},
			{Name: "1981", Kind: domain.ColumnKindYear},
			{Name: "1982", Kind: domain.ColumnKindYear},
		},
		Records: []domain.CleanRecord{
			{"COUNTRY": "USA", "1981": int64(30740), "1982": int64(31123)},
			{"COUNTRY": "CANADA", "1981": int64(4861), "1982": int64(5120)},
		},
	}
}

func TestDatasetExporter_ExportTable(t *testing.T) {
	reportsDir := t.TempDir()
	exp := NewDatasetExporter(reportsDir)

	require.NoError(t, exp.ExportTable("countries", sampleTable()))

	rows, hasBOM := readCSVFile(t, filepath.Join(reportsDir, "countries.csv"))
	assert.True(t, hasBOM)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"COUNTRY", "1981", "1982"}, rows[0])
	assert.Equal(t, []string{"USA", "30740", "31123"}, rows[1])
	assert.Equal(t, []string{"CANADA", "4861", "5120"}, rows[2])
}

func TestDatasetExporter_ExportTableEmpty(t *testing.T) {
	exp := NewDatasetExporter(t.TempDir())

	err := exp.ExportTable("empty", &domain.CleanTable{})
	assert.Error(t, err)

	err = exp.ExportTable("nil", nil)
	assert.Error(t, err)
}

func TestDatasetExporter_ExportLong(t *testing.T) {
	reportsDir := t.TempDir()
	exp := NewDatasetExporter(reportsDir)

	records := []domain.LongRecord{
		{Entity: "USA", Year: 1981, Value: 30740},
		{Entity: "USA", Year: 1982, Value: 31123},
	}

	require.NoError(t, exp.ExportLong("countries", "COUNTRY", records))

	rows, _ := readCSVFile(t, filepath.Join(reportsDir, "countries_long.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"COUNTRY", "YEAR", "VALUE"}, rows[0])
	assert.Equal(t, []string{"USA", "1981", "30740.00"}, rows[1])
}

func TestDatasetExporter_ExportLongDefaultEntityColumn(t *testing.T) {
	reportsDir := t.TempDir()
	exp := NewDatasetExporter(reportsDir)

	require.NoError(t, exp.ExportLong("misc", "", nil))

	rows, _ := readCSVFile(t, filepath.Join(reportsDir, "misc_long.csv"))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"ENTITY", "YEAR", "VALUE"}, rows[0])
}

func TestDatasetExporter_ExportSheets(t *testing.T) {
	reportsDir := t.TempDir()
	exp := NewDatasetExporter(reportsDir)

	sheets := domain.NewSheetCollection()
	sheets.Add(domain.SheetResult{Name: "REGION", Table: sampleTable()})
	sheets.Add(domain.SheetResult{Name: "PROVINCE", Warning: "header row missing"})

	skipped, err := exp.ExportSheets("origin", sheets)
	require.NoError(t, err)
	assert.Equal(t, []string{"PROVINCE"}, skipped)

	_, statErr := os.Stat(filepath.Join(reportsDir, "origin_region.csv"))
	assert.NoError(t, statErr)

	_, statErr = os.Stat(filepath.Join(reportsDir, "origin_province.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "USA", formatCell("USA"))
	assert.Equal(t, "42", formatCell(int64(42)))
	assert.Equal(t, "7", formatCell(7))
	assert.Equal(t, "0.71", formatCell(0.71))
	assert.Equal(t, "true", formatCell(true))
}
