// Package exporter provides CSV export functionality for cleaned emigrant datasets.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers, streaming,
// and UTF-8 BOM for Excel compatibility.
//
// DatasetExporter: Writes cleaned dataset tables as wide CSV reports, melted
// (entity, year, value) long files, and per-sheet files for multi-sheet
// workbooks.
//
// Example usage:
//
//	exp := exporter.NewDatasetExporter("data/reports")
//
//	// Export the cleaned wide table
//	err := exp.ExportTable("countries", table)
//
//	// Export the melted time series
//	err = exp.ExportLong("countries", table.KeyColumn(), longRecords)
package exporter
