package pipeline

import (
	"regexp"

	"cfocli/pkg/contracts/domain"
)

// Unclassified tags key labels that match none of a dataset's configured
// group lists. Unclassified rows stay in the base table but are excluded
// from group-comparative views.
const Unclassified = "Unclassified"

var leadingInt = regexp.MustCompile(`\d+`)

// Resolver maps a free-text place name to a standardized geographic code.
// Implementations live outside the pipeline; the reference database behind
// them is not this system's concern.
type Resolver interface {
	Resolve(name string) (code string, ok bool)
}

// DecomposeRatio rewrites a composite-encoded ratio column in place. The
// source encodes sex ratios as text like "71M/100F"; the leading integer
// over 100 is the decimal ratio (0.71). Cells without a recognizable
// integer become ratio 0.
func DecomposeRatio(table *domain.CleanTable, column string) {
	idx := -1
	for i, col := range table.Columns {
		if col.Name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	table.Columns[idx].Kind = domain.ColumnKindNumeric

	for _, record := range table.Records {
		raw := record.String(column)
		value := 0.0
		if digits := leadingInt.FindString(raw); digits != "" {
			value = ParseNumeric(digits) / 100
		}
		record[column] = value
	}
}

// TagGroups classifies every key label into exactly one named group via
// exact membership against the configured group lists, writing the group
// name into a derived column. Labels in no list are tagged Unclassified.
// Matching is exact, not substring: the occupation labels are long phrases
// that would cross-match each other otherwise.
func TagGroups(table *domain.CleanTable, groups map[string][]string, tagColumn string) {
	if len(groups) == 0 || table.Empty() {
		return
	}
	membership := make(map[string]string)
	for group, labels := range groups {
		for _, label := range labels {
			membership[label] = group
		}
	}

	keyCol := table.KeyColumn()
	if _, exists := table.Column(tagColumn); !exists {
		table.Columns = append(table.Columns, domain.ColumnSpec{Name: tagColumn, Kind: domain.ColumnKindDerived})
	}
	for _, record := range table.Records {
		group, ok := membership[record.String(keyCol)]
		if !ok {
			group = Unclassified
		}
		record[tagColumn] = group
	}
}

// GroupView returns only the records classified into a real group,
// preserving order. The base table keeps its Unclassified rows.
func GroupView(table *domain.CleanTable, tagColumn string) []domain.CleanRecord {
	var out []domain.CleanRecord
	for _, record := range table.Records {
		if tag := record.String(tagColumn); tag != "" && tag != Unclassified {
			out = append(out, record)
		}
	}
	return out
}

// ResolveGeo derives a geography-keyed view: each record is cloned and
// augmented with the resolved code under codeColumn. Records whose key the
// resolver cannot place are excluded from the view but untouched in the
// base table - an unresolved name drops off the map, not out of the data.
func ResolveGeo(table *domain.CleanTable, resolver Resolver, codeColumn string) []domain.CleanRecord {
	if resolver == nil || table.Empty() {
		return nil
	}
	keyCol := table.KeyColumn()
	var out []domain.CleanRecord
	for _, record := range table.Records {
		code, ok := resolver.Resolve(record.String(keyCol))
		if !ok {
			continue
		}
		clone := record.Clone()
		clone[codeColumn] = code
		out = append(out, clone)
	}
	return out
}
