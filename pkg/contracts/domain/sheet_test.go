package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetResultOK(t *testing.T) {
	ok := SheetResult{Name: "NCR", Table: demoTable()}
	assert.True(t, ok.OK())

	warned := SheetResult{Name: "NOTES", Table: &CleanTable{}, Warning: "no header row detected"}
	assert.False(t, warned.OK())

	empty := SheetResult{Name: "BLANK", Table: &CleanTable{}}
	assert.False(t, empty.OK())

	// A nil table never counts as usable.
	assert.False(t, SheetResult{Name: "NIL"}.OK())
}

func TestSheetCollectionAddPreservesOrder(t *testing.T) {
	c := NewSheetCollection()
	c.Add(SheetResult{Name: "NCR", Table: demoTable()})
	c.Add(SheetResult{Name: "REGION", Table: demoTable()})
	c.Add(SheetResult{Name: "NOTES", Table: &CleanTable{}, Warning: "unreadable"})

	assert.Equal(t, []string{"NCR", "REGION", "NOTES"}, c.Order)
	require.Len(t, c.Results, 3)
}

func TestSheetCollectionAddReplacesWithoutReordering(t *testing.T) {
	c := NewSheetCollection()
	c.Add(SheetResult{Name: "NCR", Table: &CleanTable{}, Warning: "first pass failed"})
	c.Add(SheetResult{Name: "REGION", Table: demoTable()})
	c.Add(SheetResult{Name: "NCR", Table: demoTable()})

	assert.Equal(t, []string{"NCR", "REGION"}, c.Order)
	assert.True(t, c.Results["NCR"].OK())
}

func TestSheetCollectionWarnings(t *testing.T) {
	c := NewSheetCollection()
	c.Add(SheetResult{Name: "NCR", Table: demoTable()})
	c.Add(SheetResult{Name: "NOTES", Table: &CleanTable{}, Warning: "unreadable"})

	assert.Equal(t, []string{"NOTES"}, c.Warnings())

	assert.Nil(t, NewSheetCollection().Warnings())
}
