package geo

// iso3Codes covers the destination countries appearing in the emigration
// records. Names are matched case-insensitively; common source variants
// are listed alongside the formal names.
var iso3Codes = map[string]string{
	"UNITED STATES":            "USA",
	"UNITED STATES OF AMERICA": "USA",
	"USA":                      "USA",
	"CANADA":                   "CAN",
	"JAPAN":                    "JPN",
	"AUSTRALIA":                "AUS",
	"ITALY":                    "ITA",
	"NEW ZEALAND":              "NZL",
	"UNITED KINGDOM":           "GBR",
	"GREAT BRITAIN":            "GBR",
	"GERMANY":                  "DEU",
	"SOUTH KOREA":              "KOR",
	"KOREA, REPUBLIC OF":       "KOR",
	"REPUBLIC OF KOREA":        "KOR",
	"SPAIN":                    "ESP",
	"FRANCE":                   "FRA",
	"NETHERLANDS":              "NLD",
	"SWITZERLAND":              "CHE",
	"SWEDEN":                   "SWE",
	"NORWAY":                   "NOR",
	"DENMARK":                  "DNK",
	"FINLAND":                  "FIN",
	"BELGIUM":                  "BEL",
	"AUSTRIA":                  "AUT",
	"IRELAND":                  "IRL",
	"GREECE":                   "GRC",
	"PORTUGAL":                 "PRT",
	"SAUDI ARABIA":             "SAU",
	"UNITED ARAB EMIRATES":     "ARE",
	"QATAR":                    "QAT",
	"KUWAIT":                   "KWT",
	"BAHRAIN":                  "BHR",
	"OMAN":                     "OMN",
	"ISRAEL":                   "ISR",
	"SINGAPORE":                "SGP",
	"MALAYSIA":                 "MYS",
	"HONG KONG":                "HKG",
	"TAIWAN":                   "TWN",
	"CHINA":                    "CHN",
	"THAILAND":                 "THA",
	"INDONESIA":                "IDN",
	"INDIA":                    "IND",
	"BRUNEI":                   "BRN",
	"BRAZIL":                   "BRA",
	"ARGENTINA":                "ARG",
	"MEXICO":                   "MEX",
	"CHILE":                    "CHL",
	"PERU":                     "PER",
	"SOUTH AFRICA":             "ZAF",
	"NIGERIA":                  "NGA",
	"EGYPT":                    "EGY",
	"RUSSIA":                   "RUS",
	"RUSSIAN FEDERATION":       "RUS",
	"POLAND":                   "POL",
	"CZECH REPUBLIC":           "CZE",
	"HUNGARY":                  "HUN",
	"TURKEY":                   "TUR",
	"PAPUA NEW GUINEA":         "PNG",
	"GUAM":                     "GUM",
	"NORTHERN MARIANA ISLANDS": "MNP",
	"PALAU":                    "PLW",
	"MICRONESIA":               "FSM",
	"PHILIPPINES":              "PHL",
}

// NewISO3Resolver returns the default resolver over the built-in ISO3
// reference table, wrapped in a per-run cache.
func NewISO3Resolver() *CachedResolver {
	return NewCachedResolver(NewStaticResolver(iso3Codes))
}
