package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"cfocli/internal/dataset"
	"cfocli/pkg/contracts/domain"
)

// RegionSheet is the sheet of the place-of-origin workbook keyed by region
// name. Its rows legitimately start with "Region", so the region-heading
// filter that applies to every other sheet is suspended for it.
const RegionSheet = "REGION"

// RunWorkbook fans the cleaning pipeline out across every sheet of a
// multi-sheet workbook, independently. One sheet failing - unreadable,
// header beyond the grid, or empty after pruning - yields an empty table
// and a warning for that sheet only; the rest of the workbook still loads.
// Only failure to open the workbook itself is fatal.
func (p *Pipeline) RunWorkbook(ctx context.Context, path string, spec dataset.Spec) (*domain.SheetCollection, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	collection := domain.NewSheetCollection()
	for _, sheet := range wb.SheetNames() {
		collection.Add(p.runSheet(ctx, wb, sheet, spec))
	}
	return collection, nil
}

func (p *Pipeline) runSheet(ctx context.Context, wb *Workbook, sheet string, spec dataset.Spec) domain.SheetResult {
	sheetSpec := spec
	if strings.EqualFold(sheet, RegionSheet) {
		sheetSpec.FilterRegionRows = false
	}

	result := domain.SheetResult{Name: sheet, Table: &domain.CleanTable{}}

	grid, err := wb.Grid(sheet)
	if err == nil {
		var table *domain.CleanTable
		table, err = p.Run(ctx, grid, sheetSpec)
		if table != nil {
			result.Table = table
		}
	}

	switch {
	case err != nil:
		result.Warning = err.Error()
	case result.Table.Empty():
		result.Warning = "no valid rows after cleaning"
	}

	if result.Warning != "" {
		sheetFailures.WithLabelValues(string(spec.Kind), sheet).Inc()
		p.logger.WarnContext(ctx, "sheet produced no usable table",
			slog.String("dataset", string(spec.Kind)),
			slog.String("sheet", sheet),
			slog.String("warning", result.Warning))
		return result
	}

	result.KeyColumn = result.Table.KeyColumn()
	result.NumericColumns = result.Table.NumericColumns()
	return result
}
