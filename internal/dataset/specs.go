package dataset

// The eight emigrant spreadsheet families published by the Commission on
// Filipinos Overseas, 1981-2020. Constants here mirror the source files as
// shipped: two banner rows above every header, canonical column lists for
// the families whose source labels drift, and the noise tokens each family
// embeds between its data rows.

const headerRowOffset = 2

// GroupEmployed and GroupUnemployed are the occupation classification
// groups consumed by the group-comparative view.
const (
	GroupEmployed   = "Employed"
	GroupUnemployed = "Unemployed"
)

// OccupationGroupColumn is the derived column carrying the group tag.
const OccupationGroupColumn = "CATEGORY"

// employedOccupations and unemployedOccupations list the exact source
// labels of each group. Membership is exact-match: these long phrases
// would cross-match each other under substring rules.
var employedOccupations = []string{
	"Prof'l, Tech'l, & Related Workers",
	"Managerial, Executive, and Administrative Workers",
	"Clerical Workers",
	"Sales Workers",
	"Service Workers",
	"Agri, Animal Husbandry, Forestry Workers & Fishermen",
	"Production Process, Transport Equipment Operators, & Laborers",
	"Members of the Armed Forces",
}

var unemployedOccupations = []string{
	"Housewives",
	"Retirees",
	"Students",
	"Minors (Below 7 years old)",
	"Out of School Youth",
	"Refugees",
	"No Occupation Reported",
}

// Specs returns the full set of family configurations, keyed by Kind.
func Specs() map[Kind]Spec {
	specs := map[Kind]Spec{
		KindAge: {
			Kind:          KindAge,
			File:          "Emigrant-1981-2020-Age.xlsx",
			HeaderRow:     headerRowOffset,
			KeyColumn:     "AGE_GROUP",
			Denylist:      []string{"TOTAL", "AVERAGE"},
			IntegerValues: true,
		},
		KindCountries: {
			Kind:          KindCountries,
			File:          "Emigrant-1981-2020-AllCountries.xlsx",
			HeaderRow:     headerRowOffset,
			KeyColumn:     "COUNTRY",
			Denylist:      []string{"TOTAL", "OTHERS", "UNKNOWN"},
			TotalColumn:   "Total_Emigrants",
			GeoResolved:   true,
			IntegerValues: true,
		},
		KindMajorCountries: {
			Kind:      KindMajorCountries,
			File:      "Emigrant-1981-2020-MajorCountry.xlsx",
			HeaderRow: headerRowOffset,
			Canonical: []string{
				"YEAR", "USA", "CANADA", "JAPAN", "AUSTRALIA", "ITALY",
				"NEW_ZEALAND", "UNITED_KINGDOM", "GERMANY", "SOUTH_KOREA",
				"SPAIN", "OTHERS", "TOTAL", "_Inc_Dec",
			},
			KeyColumn:     "YEAR",
			Denylist:      []string{"TOTAL", "AVERAGE"},
			IntegerValues: true,
		},
		KindOccupation: {
			Kind:       KindOccupation,
			File:       "Emigrant-1981-2020-Occu.xlsx",
			HeaderRow:  headerRowOffset,
			Canonical:  occupationColumns(),
			AllowWider: true,
			KeyColumn:  "MAJOR_OCCUPATION_GROUP",
			Denylist:   []string{"TOTAL"},
			Groups: map[string][]string{
				GroupEmployed:   employedOccupations,
				GroupUnemployed: unemployedOccupations,
			},
			GroupColumn:   OccupationGroupColumn,
			IntegerValues: true,
		},
		KindSex: {
			Kind:       KindSex,
			File:       "Emigrant-1981-2020-Sex.xlsx",
			HeaderRow:  headerRowOffset,
			Canonical:  []string{"YEAR", "MALE", "FEMALE", "TOTAL", "SEX_RATIO"},
			AllowWider: true,
			KeyColumn:  "YEAR",
			Denylist:   []string{"TOTAL", "AVERAGE"},
			// counts stay integral through the ratio column's presence;
			// the ratio itself is fractional, so no integer truncation
			RatioColumn: "SEX_RATIO",
		},
		KindCivilStatus: {
			Kind:      KindCivilStatus,
			File:      "Emigrant-1988-2020-CivilStatus.xlsx",
			HeaderRow: headerRowOffset,
			Canonical: []string{
				"YEAR", "Single", "Married", "Widower", "Separated",
				"Divorced", "Not_Reported", "TOTAL",
			},
			AllowWider:    true,
			KeyColumn:     "YEAR",
			Denylist:      []string{"TOTAL", "AVERAGE"},
			IntegerValues: true,
		},
		KindEducation: {
			Kind:          KindEducation,
			File:          "Emigrant-1988-2020-Educ.xlsx",
			HeaderRow:     headerRowOffset,
			Canonical:     educationColumns(),
			AllowWider:    true,
			KeyColumn:     "EDUCATIONAL_ATTAINMENT",
			Denylist:      []string{"TOTAL"},
			MinKeyLength:  2,
			IntegerValues: true,
		},
		KindPlaceOfOrigin: {
			Kind:             KindPlaceOfOrigin,
			File:             "Emigrant-1988-2020-PlaceOfOrigin.xlsx",
			HeaderRow:        headerRowOffset,
			Denylist:         []string{"TOTAL", "TOTALS", "NOT REPORTED", "NO RESPONSE"},
			FilterRegionRows: true,
			DropAllZeroRows:  true,
			MultiSheet:       true,
			IntegerValues:    true,
		},
	}
	return specs
}

// Get returns the Spec for one family.
func Get(kind Kind) (Spec, bool) {
	spec, ok := Specs()[kind]
	return spec, ok
}

// Kinds returns every family kind in stable presentation order.
func Kinds() []Kind {
	return []Kind{
		KindAge, KindCountries, KindMajorCountries, KindOccupation,
		KindSex, KindCivilStatus, KindEducation, KindPlaceOfOrigin,
	}
}

// ValidateAll checks every configured Spec at startup.
func ValidateAll() error {
	for _, spec := range Specs() {
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func occupationColumns() []string {
	cols := []string{"MAJOR_OCCUPATION_GROUP"}
	cols = append(cols, yearRange(1981, 2020)...)
	return append(cols, "TOTAL")
}

func educationColumns() []string {
	cols := []string{"EDUCATIONAL_ATTAINMENT"}
	cols = append(cols, yearRange(1988, 2020)...)
	return append(cols, "TOTAL")
}
