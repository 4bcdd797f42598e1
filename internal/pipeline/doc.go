// Package pipeline turns raw, hand-maintained emigration spreadsheets into
// clean, typed, analysis-ready tables.
//
// # Architecture
//
// The pipeline is a fixed left-to-right sequence of stages:
//
//	Workbook → RawGrid → ResolveHeader → Prune → Coerce → normalize → CleanTable
//
// 1. Loader: reads a sheet into an untyped RawGrid, noise included
// 2. Header resolver: finds the configured header row, sanitizes labels,
// and applies the family's canonical column names when the shape agrees
// 3. Pruner: removes empty rows/columns, denylisted noise rows, rows with
// unusable keys, and duplicate keys (first wins)
// 4. Coercer: types value columns numerically, zero-filling unparsable cells
// 5. Normalizers: ratio decomposition, category grouping, geo resolution
// 6. Reshaper: melts year columns into long records and derives totals
//
// RunWorkbook fans the same sequence out across each sheet of a
// multi-sheet workbook, isolating per-sheet failures.
//
// # Error Handling
//
// Only an unreadable source aborts a run, and only for its own dataset.
// Everything else degrades: a header mismatch falls back to sanitized
// labels, an unparsable cell becomes zero, an unclassified or unresolved
// label drops out of its derived view but stays in the base table.
//
// # Usage
//
//	grid, err := pipeline.LoadGrid(path, "")
//	if err != nil {
//	    return err
//	}
//	table, err := p.Run(ctx, grid, spec)
//
// All stages are deterministic; running a pipeline twice over one grid
// yields identical tables.
package pipeline
