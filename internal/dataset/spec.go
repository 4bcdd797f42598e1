package dataset

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Kind tags one spreadsheet family. Each family shares the pipeline
// skeleton and differs only in the parameters carried by its Spec.
type Kind string

const (
	KindAge            Kind = "age"
	KindCountries      Kind = "countries"
	KindMajorCountries Kind = "major-countries"
	KindOccupation     Kind = "occupation"
	KindSex            Kind = "sex"
	KindCivilStatus    Kind = "civil-status"
	KindEducation      Kind = "education"
	KindPlaceOfOrigin  Kind = "place-of-origin"
)

// Spec is the fixed, auditable configuration for one spreadsheet family -
// known before any file is read. It encodes the expected shape of that
// family rather than inferring it at runtime: these files are
// hand-maintained and their header text drifts, but their logical shape
// does not.
type Spec struct {
	Kind Kind   `validate:"required"`
	File string `validate:"required"`

	// HeaderRow is the zero-based row holding the true column labels.
	// Header position is not self-describing in these files; every current
	// family buries it under two banner rows.
	HeaderRow int `validate:"min=0"`

	// Canonical, when set, overrides the sanitized source labels outright
	// if the detected column count agrees. AllowWider additionally accepts
	// a wider sheet by cutting it down to the canonical width.
	Canonical  []string
	AllowWider bool

	// KeyColumn renames the first (key) column when the source leaves it
	// unlabeled. Empty keeps the sanitized source label.
	KeyColumn string

	// Denylist holds the noise tokens pruned from this family, matched
	// case-insensitively as substrings of the key cell.
	Denylist []string

	// FilterRegionRows drops "Region ..." subtotal headings embedded
	// between data rows. Never set for the region-keyed sheet itself.
	FilterRegionRows bool

	// MinKeyLength drops placeholder rows with degenerate keys.
	MinKeyLength int

	// Groups maps group name to the exact key labels belonging to it;
	// GroupColumn is the derived column the tag lands in.
	Groups      map[string][]string
	GroupColumn string

	// RatioColumn names a composite-encoded column ("71M/100F") to be
	// decomposed into a decimal ratio.
	RatioColumn string

	// TotalColumn, when set, derives a per-row sum across value columns.
	TotalColumn string

	// GeoResolved marks a family whose key labels are place names subject
	// to external code resolution.
	GeoResolved bool

	// DropAllZeroRows removes rows whose value columns sum to zero after
	// coercion. Only the multi-sheet family needs it; its sheets pad with
	// empty spacer rows that survive key pruning.
	DropAllZeroRows bool

	// MultiSheet routes the family through the per-sheet orchestrator.
	MultiSheet bool

	// IntegerValues truncates value columns to integers after parsing.
	IntegerValues bool
}

// validate is shared; Spec values are static configuration validated once
// at startup.
var validate = validator.New()

// Validate checks a Spec's structural invariants.
func (s Spec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("dataset %q: %w", s.Kind, err)
	}
	if len(s.Groups) > 0 && s.GroupColumn == "" {
		return fmt.Errorf("dataset %q: groups configured without a group column", s.Kind)
	}
	return nil
}

// yearRange returns the inclusive run of four-digit year column names.
func yearRange(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, strconv.Itoa(y))
	}
	return out
}
