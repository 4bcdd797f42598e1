package domain

// SheetResult is the outcome of running the cleaning pipeline over one sheet
// of a multi-sheet workbook. A sheet that failed carries an empty table and
// a non-empty Warning; failures are always scoped to their own sheet.
type SheetResult struct {
	Name           string      `json:"name"`
	Table          *CleanTable `json:"table"`
	KeyColumn      string      `json:"key_column"`
	NumericColumns []string    `json:"numeric_columns"`
	Warning        string      `json:"warning,omitempty"`
}

// OK reports whether the sheet produced a usable table.
func (s SheetResult) OK() bool {
	return s.Warning == "" && !s.Table.Empty()
}

// SheetCollection maps sheet name to its pipeline result for one workbook
// load. Order preserves the workbook's own sheet order.
type SheetCollection struct {
	Order   []string               `json:"order"`
	Results map[string]SheetResult `json:"results"`
}

// NewSheetCollection returns an empty collection ready to accept results.
func NewSheetCollection() *SheetCollection {
	return &SheetCollection{Results: make(map[string]SheetResult)}
}

// Add records the result for one sheet, preserving insertion order.
func (c *SheetCollection) Add(res SheetResult) {
	if _, seen := c.Results[res.Name]; !seen {
		c.Order = append(c.Order, res.Name)
	}
	c.Results[res.Name] = res
}

// Warnings returns the names of sheets that failed to produce a table.
func (c *SheetCollection) Warnings() []string {
	var failed []string
	for _, name := range c.Order {
		if res := c.Results[name]; res.Warning != "" {
			failed = append(failed, name)
		}
	}
	return failed
}
