package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "cfocli/internal/errors"
)

type fixtureSheet struct {
	Name string
	Rows [][]string
}

// writeWorkbook writes a fixture workbook with the given sheets in order.
// Cells are written as strings so the source representation survives the
// round trip the way the published files carry it.
func writeWorkbook(t *testing.T, path string, sheets ...fixtureSheet) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.Name))
		} else {
			_, err := f.NewSheet(sheet.Name)
			require.NoError(t, err)
		}
		for r, row := range sheet.Rows {
			for c, cell := range row {
				if cell == "" {
					continue
				}
				axis, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet.Name, axis, cell))
			}
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestOpenWorkbookMissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.True(t, apperrors.IsSourceUnreadable(err))
}

func TestLoadGridRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sex.xlsx")
	writeWorkbook(t, path, fixtureSheet{Name: "SEX", Rows: [][]string{
		{"banner"},
		{"banner"},
		{"Year", "Male", "Female"},
		{"1981", "12,034", "23,438"},
	}})

	grid, err := LoadGrid(path, "SEX")
	require.NoError(t, err)

	assert.Equal(t, path, grid.Source)
	assert.Equal(t, "SEX", grid.Sheet)
	require.Len(t, grid.Rows, 4)
	assert.Equal(t, []string{"Year", "Male", "Female"}, grid.Rows[2])
	assert.Equal(t, "12,034", grid.Rows[3][1])
}

func TestLoadGridDefaultsToFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "first.xlsx")
	writeWorkbook(t, path,
		fixtureSheet{Name: "FIRST", Rows: [][]string{{"a", "b"}}},
		fixtureSheet{Name: "SECOND", Rows: [][]string{{"c", "d"}}},
	)

	grid, err := LoadGrid(path, "")
	require.NoError(t, err)
	assert.Equal(t, "FIRST", grid.Sheet)
}

func TestGridUnknownSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	writeWorkbook(t, path, fixtureSheet{Name: "ONLY", Rows: [][]string{{"a"}}})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.Grid("NO_SUCH_SHEET")
	require.Error(t, err)
	assert.True(t, apperrors.IsSourceUnreadable(err))
}

func TestWorkbookSheetNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.xlsx")
	writeWorkbook(t, path,
		fixtureSheet{Name: "NCR", Rows: [][]string{{"x"}}},
		fixtureSheet{Name: "REGION", Rows: [][]string{{"y"}}},
	)

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"NCR", "REGION"}, wb.SheetNames())
}
