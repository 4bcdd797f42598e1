package pipeline

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "cfocli/internal/errors"
)

// RawGrid is the untyped cell grid of one sheet, exactly as stored on disk:
// noise rows, stray columns, and formatting artifacts included. It is read
// once by the header resolver and then dropped; nothing mutates it.
type RawGrid struct {
	Source string
	Sheet  string
	Rows   [][]string
}

// Workbook wraps an open spreadsheet file for one load.
type Workbook struct {
	file *excelize.File
	path string
}

// OpenWorkbook opens the workbook at path. Failure to open is a
// source-unreadable error, fatal for every dataset backed by this file.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewSourceError(fmt.Sprintf("open workbook %s", path), err)
	}
	return &Workbook{file: f, path: path}, nil
}

// Close releases the underlying file handle.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Path returns the workbook's on-disk path.
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns the workbook's sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Grid reads one sheet into a RawGrid. An empty sheet name selects the
// first sheet. Cell values keep their source representation; no numeric
// interpretation happens here.
func (w *Workbook) Grid(sheet string) (*RawGrid, error) {
	if sheet == "" {
		sheet = w.file.GetSheetName(0)
	}
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewSourceError(
			fmt.Sprintf("read sheet %q of %s", sheet, w.path), err)
	}
	return &RawGrid{Source: w.path, Sheet: sheet, Rows: rows}, nil
}

// LoadGrid is the one-shot convenience path: open, read one sheet, close.
func LoadGrid(path, sheet string) (*RawGrid, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return wb.Grid(sheet)
}
