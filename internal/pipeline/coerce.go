package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"cfocli/pkg/contracts/domain"
)

var yearName = regexp.MustCompile(`^\d{4}$`)

// CoerceOptions configures the typing stage for one dataset family.
type CoerceOptions struct {
	// IntegerValues truncates every value column to an integer after
	// parsing. Counts of people are integral; only ratio-bearing families
	// keep fractions.
	IntegerValues bool

	// RatioColumn names a composite-encoded column the coercer must leave
	// as raw text for the normalizer to decompose.
	RatioColumn string
}

// Coerce converts a pruned Table into a typed CleanTable. The first column
// is the key and stays text; every other column is a value column parsed
// numerically. A cell that does not parse (blank, text, symbol) becomes
// zero - in these aggregate statistics a missing cell means "not recorded",
// and the table stays rectangular so no downstream consumer ever sees a
// partial record.
func Coerce(t *Table, opts CoerceOptions) *domain.CleanTable {
	clean := &domain.CleanTable{}
	if len(t.Columns) == 0 {
		return clean
	}

	for i, name := range t.Columns {
		kind := domain.ColumnKindNumeric
		switch {
		case i == 0:
			kind = domain.ColumnKindKey
		case name == opts.RatioColumn:
			kind = domain.ColumnKindCategory // raw composite text until normalized
		case yearName.MatchString(name):
			kind = domain.ColumnKindYear
		}
		clean.Columns = append(clean.Columns, domain.ColumnSpec{Name: name, Kind: kind})
	}

	clean.Records = make([]domain.CleanRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(domain.CleanRecord, len(t.Columns))
		for i, col := range clean.Columns {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			switch col.Kind {
			case domain.ColumnKindKey, domain.ColumnKindCategory:
				record[col.Name] = cell
			default:
				value := ParseNumeric(cell)
				if opts.IntegerValues {
					record[col.Name] = int64(value)
				} else {
					record[col.Name] = value
				}
			}
		}
		clean.Records = append(clean.Records, record)
	}
	return clean
}

// ParseNumeric parses a raw cell into a float, tolerating the thousands
// separators these files carry ("1,234"). Anything unparsable is zero,
// never an error: zero-fill on parse failure is the documented data-quality
// policy for this corpus, not a defect.
func ParseNumeric(cell string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
