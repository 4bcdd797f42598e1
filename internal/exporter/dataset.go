package exporter

import (
	"fmt"
	"sort"

	"cfocli/pkg/contracts/domain"
)

// DatasetExporter writes cleaned dataset tables to CSV reports
type DatasetExporter struct {
	csvWriter *CSVWriter
}

// NewDatasetExporter creates a new dataset exporter rooted at reportsDir
func NewDatasetExporter(reportsDir string) *DatasetExporter {
	return &DatasetExporter{
		csvWriter: NewCSVWriter(reportsDir),
	}
}

// ExportTable writes a cleaned wide table as <name>.csv, one row per record
// with the table's declared column order.
func (d *DatasetExporter) ExportTable(name string, table *domain.CleanTable) error {
	if table == nil || table.Empty() {
		return fmt.Errorf("dataset %s has no rows to export", name)
	}

	headers := table.ColumnNames()
	records := make([][]string, 0, len(table.Records))
	for _, rec := range table.Records {
		row := make([]string, len(headers))
		for i, col := range headers {
			row[i] = formatCell(rec[col])
		}
		records = append(records, row)
	}

	return d.csvWriter.WriteSimpleCSV(fmt.Sprintf("%s.csv", name), headers, records)
}

// ExportLong writes melted (entity, year, value) triples as <name>_long.csv.
// The entity header carries the source table's key column name so the long
// file stays self-describing.
func (d *DatasetExporter) ExportLong(name, entityColumn string, records []domain.LongRecord) error {
	if entityColumn == "" {
		entityColumn = "ENTITY"
	}
	headers := []string{entityColumn, "YEAR", "VALUE"}

	writer, err := d.csvWriter.CreateStreamWriter(fmt.Sprintf("%s_long.csv", name), headers)
	if err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{rec.Entity, formatInt(int64(rec.Year)), formatFloat(rec.Value)}
		if err := writer.WriteRecord(row); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write long record for %s: %w", rec.Entity, err)
		}
	}

	return writer.Close()
}

// ExportSheets writes each successfully cleaned sheet of a multi-sheet
// dataset as <name>_<sheet>.csv. Failed sheets are skipped and reported
// in the returned warnings list.
func (d *DatasetExporter) ExportSheets(name string, sheets *domain.SheetCollection) ([]string, error) {
	if sheets == nil {
		return nil, fmt.Errorf("dataset %s has no sheets to export", name)
	}

	var skipped []string
	for _, sheetName := range sheets.Order {
		res, ok := sheets.Results[sheetName]
		if !ok || !res.OK() {
			skipped = append(skipped, sheetName)
			continue
		}
		file := fmt.Sprintf("%s_%s", name, sanitizeFileName(sheetName))
		if err := d.ExportTable(file, res.Table); err != nil {
			return skipped, fmt.Errorf("failed to export sheet %s: %w", sheetName, err)
		}
	}

	sort.Strings(skipped)
	return skipped, nil
}

// formatCell renders a single typed cell value for CSV output
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return formatInt(val)
	case int:
		return formatInt(int64(val))
	case float64:
		return formatFloat(val)
	case bool:
		return formatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// sanitizeFileName lowercases a sheet name for use in a file name
func sanitizeFileName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '/' || r == '\\':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
