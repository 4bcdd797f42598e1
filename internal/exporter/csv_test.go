package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestWriter(t *testing.T) (*CSVWriter, string) {
	t.Helper()

	tempDir := t.TempDir()
	reportsDir := filepath.Join(tempDir, "reports")
	require.NoError(t, os.MkdirAll(reportsDir, 0755))

	return NewCSVWriter(reportsDir), reportsDir
}

func readCSVFile(t *testing.T, path string) ([][]string, bool) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	hasBOM := bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF})
	if hasBOM {
		content = content[3:]
	}

	rows, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	require.NoError(t, err)
	return rows, hasBOM
}

func TestCSVWriter_WriteSimpleCSV(t *testing.T) {
	writer, reportsDir := setupTestWriter(t)

	headers := []string{"YEAR", "MALE", "FEMALE"}
	records := [][]string{
		{"1981", "12034", "23455"},
		{"1982", "11872", "25101"},
	}

	err := writer.WriteSimpleCSV("sex.csv", headers, records)
	require.NoError(t, err)

	rows, hasBOM := readCSVFile(t, filepath.Join(reportsDir, "sex.csv"))
	assert.True(t, hasBOM, "simple CSV should carry a UTF-8 BOM for Excel")
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, records[0], rows[1])
	assert.Equal(t, records[1], rows[2])
}

func TestCSVWriter_AppendToCSV(t *testing.T) {
	writer, reportsDir := setupTestWriter(t)

	require.NoError(t, writer.WriteSimpleCSV("data.csv",
		[]string{"A", "B"},
		[][]string{{"1", "2"}}))

	require.NoError(t, writer.AppendToCSV("data.csv", [][]string{{"3", "4"}}))

	rows, _ := readCSVFile(t, filepath.Join(reportsDir, "data.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"3", "4"}, rows[2])
}

func TestCSVWriter_CreatesMissingDirectories(t *testing.T) {
	writer, reportsDir := setupTestWriter(t)

	err := writer.WriteSimpleCSV(filepath.Join("nested", "deep", "out.csv"),
		[]string{"X"}, [][]string{{"1"}})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(reportsDir, "nested", "deep", "out.csv"))
	assert.NoError(t, statErr)
}

func TestCSVWriter_AbsolutePathBypassesReportsDir(t *testing.T) {
	writer, _ := setupTestWriter(t)

	otherDir := t.TempDir()
	target := filepath.Join(otherDir, "abs.csv")

	err := writer.WriteSimpleCSV(target, []string{"X"}, [][]string{{"1"}})
	require.NoError(t, err)

	_, statErr := os.Stat(target)
	assert.NoError(t, statErr)
}

func TestStreamWriter(t *testing.T) {
	writer, reportsDir := setupTestWriter(t)

	stream, err := writer.CreateStreamWriter("stream.csv", []string{"COUNTRY", "YEAR", "VALUE"})
	require.NoError(t, err)

	require.NoError(t, stream.WriteRecord([]string{"JAPAN", "1981", "1284.00"}))
	require.NoError(t, stream.WriteRecord([]string{"JAPAN", "1982", "1391.00"}))
	require.NoError(t, stream.Close())

	rows, hasBOM := readCSVFile(t, filepath.Join(reportsDir, "stream.csv"))
	assert.True(t, hasBOM)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"COUNTRY", "YEAR", "VALUE"}, rows[0])
	assert.Equal(t, []string{"JAPAN", "1982", "1391.00"}, rows[2])
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "0.71", formatFloat(0.71))
	assert.Equal(t, "13.40", formatFloat(13.4))
	assert.Equal(t, "1284.00", formatFloat(1284))
	assert.Equal(t, "42", formatInt(42))
	assert.Equal(t, "-3", formatInt(-3))
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "false", formatBool(false))
}
