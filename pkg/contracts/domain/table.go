package domain

import (
	"fmt"
	"strconv"
)

// ColumnKind declares the role a column plays in a cleaned dataset.
type ColumnKind string

const (
	ColumnKindKey      ColumnKind = "key"      // row identity (year, country, occupation group, ...)
	ColumnKindYear     ColumnKind = "year"     // a literal four-digit year value column
	ColumnKindNumeric  ColumnKind = "numeric"  // non-year numeric value column
	ColumnKindCategory ColumnKind = "category" // free-text categorical column
	ColumnKindDerived  ColumnKind = "derived"  // computed downstream (totals, group tags, ratios)
)

// ColumnSpec is the declared role for one output column. A dataset family's
// ColumnSpec list is fixed configuration known before any workbook is read.
type ColumnSpec struct {
	Name string     `json:"name" validate:"required"`
	Kind ColumnKind `json:"kind" validate:"required,oneof=key year numeric category derived"`
}

// CleanRecord is one row of a normalized table: column name to typed value.
// Values are string for key/category columns, int64 for integral numeric and
// year columns, float64 for ratio columns. Every record in a CleanTable
// carries exactly the columns declared by the table's ColumnSpec list.
type CleanRecord map[string]any

// String returns the value of the named column as text.
func (r CleanRecord) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Int returns the value of the named column as an integer, truncating
// fractional values. Missing or non-numeric values return zero.
func (r CleanRecord) Int(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Float returns the value of the named column as a float. Missing or
// non-numeric values return zero.
func (r CleanRecord) Float(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Clone returns a copy of the record that shares no storage with the original.
func (r CleanRecord) Clone() CleanRecord {
	out := make(CleanRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CleanTable is the pipeline's validated, typed output: an ordered sequence
// of CleanRecords sharing one ColumnSpec list. Downstream consumers treat a
// CleanTable as immutable; reshaping and aggregation derive new values
// rather than writing back into it.
type CleanTable struct {
	Columns []ColumnSpec  `json:"columns"`
	Records []CleanRecord `json:"records"`
}

// Empty reports whether the table holds no records.
func (t *CleanTable) Empty() bool {
	return t == nil || len(t.Records) == 0
}

// ColumnNames returns the declared column names in order.
func (t *CleanTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// KeyColumn returns the name of the table's key column, or "" when the
// table declares none.
func (t *CleanTable) KeyColumn() string {
	for _, c := range t.Columns {
		if c.Kind == ColumnKindKey {
			return c.Name
		}
	}
	return ""
}

// NumericColumns returns the names of all year and numeric value columns
// in declaration order. This is the column-role contract the presentation
// layer consumes alongside the table itself.
func (t *CleanTable) NumericColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Kind == ColumnKindYear || c.Kind == ColumnKindNumeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// Column returns the spec for the named column.
func (t *CleanTable) Column(name string) (ColumnSpec, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// LongRecord is one (entity, year, value) triple produced by melting a wide
// year-indexed CleanTable for time-series consumption.
type LongRecord struct {
	Entity string  `json:"entity"`
	Year   int     `json:"year"`
	Value  float64 `json:"value"`
}
