package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfocli/internal/dataset"
	"cfocli/pkg/contracts/domain"
)

func newTestPipeline() *Pipeline {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func sexGrid() *RawGrid {
	return &RawGrid{
		Source: "Emigrant-1981-2020-Sex.xlsx",
		Sheet:  "SEX",
		Rows: [][]string{
			{"Commission on Filipinos Overseas"},
			{"NUMBER OF REGISTERED EMIGRANTS BY SEX: 1981-2020"},
			{"Year", "Male", "Female", "Total", "Sex Ratio"},
			{"1981", "12,034", "23,438", "35,472", "51M/100F"},
			{"1982", "11,568", "24,620", "36,188", "47M/100F"},
			{"GRAND TOTAL", "471,030", "929,874", "1,400,904", ""},
		},
	}
}

func TestPipelineRunSexFamily(t *testing.T) {
	spec, ok := dataset.Get(dataset.KindSex)
	require.True(t, ok)

	clean, err := newTestPipeline().Run(context.Background(), sexGrid(), spec)
	require.NoError(t, err)

	// Canonical columns override the source labels; the ratio column is
	// decomposed and the TOTAL row pruned.
	assert.Equal(t, []string{"YEAR", "MALE", "FEMALE", "TOTAL", "SEX_RATIO"}, clean.ColumnNames())
	require.Len(t, clean.Records, 2)

	first := clean.Records[0]
	assert.Equal(t, "1981", first.String("YEAR"))
	assert.Equal(t, float64(12034), first["MALE"])
	assert.InDelta(t, 0.51, first.Float("SEX_RATIO"), 1e-9)

	assert.InDelta(t, 0.47, clean.Records[1].Float("SEX_RATIO"), 1e-9)
}

func TestPipelineRunIsIdempotent(t *testing.T) {
	spec, _ := dataset.Get(dataset.KindSex)
	p := newTestPipeline()

	first, err := p.Run(context.Background(), sexGrid(), spec)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), sexGrid(), spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPipelineRunKeyColumnRename(t *testing.T) {
	// The age family has no canonical list; the unlabeled key column is
	// renamed from configuration.
	spec, ok := dataset.Get(dataset.KindAge)
	require.True(t, ok)

	grid := &RawGrid{
		Sheet: "AGE",
		Rows: [][]string{
			{""},
			{""},
			{"", "1981", "1982"},
			{"15-19", "1,000", "1,100"},
			{"20-24", "2,000", "2,200"},
			{"TOTAL", "3,000", "3,300"},
		},
	}

	clean, err := newTestPipeline().Run(context.Background(), grid, spec)
	require.NoError(t, err)

	assert.Equal(t, "AGE_GROUP", clean.KeyColumn())
	require.Len(t, clean.Records, 2)
	assert.Equal(t, int64(1000), clean.Records[0]["1981"])
}

func TestPipelineRunGroupTagging(t *testing.T) {
	spec, ok := dataset.Get(dataset.KindOccupation)
	require.True(t, ok)
	// Shrink the canonical list to keep the fixture grid small.
	spec.Canonical = []string{"MAJOR_OCCUPATION_GROUP", "1981", "1982", "TOTAL"}

	grid := &RawGrid{
		Sheet: "OCCUPATION",
		Rows: [][]string{
			{""},
			{""},
			{"Group", "1981", "1982", "Total"},
			{"Sales Workers", "100", "200", "300"},
			{"Housewives", "400", "500", "900"},
			{"Mystery Workers", "1", "2", "3"},
		},
	}

	clean, err := newTestPipeline().Run(context.Background(), grid, spec)
	require.NoError(t, err)

	require.Len(t, clean.Records, 3)
	assert.Equal(t, dataset.GroupEmployed, clean.Records[0].String("CATEGORY"))
	assert.Equal(t, dataset.GroupUnemployed, clean.Records[1].String("CATEGORY"))
	assert.Equal(t, Unclassified, clean.Records[2].String("CATEGORY"))

	view := GroupView(clean, dataset.OccupationGroupColumn)
	assert.Len(t, view, 2)
}

func TestPipelineRunDropsAllZeroRows(t *testing.T) {
	spec, ok := dataset.Get(dataset.KindPlaceOfOrigin)
	require.True(t, ok)

	grid := &RawGrid{
		Sheet: "PROVINCE",
		Rows: [][]string{
			{""},
			{""},
			{"Province", "1988", "1989"},
			{"Cavite", "1,200", "1,300"},
			{"Spacer Province", "", ""},
			{"Laguna", "800", "850"},
		},
	}

	clean, err := newTestPipeline().Run(context.Background(), grid, spec)
	require.NoError(t, err)

	require.Len(t, clean.Records, 2)
	assert.Equal(t, "Cavite", clean.Records[0].String("Province"))
	assert.Equal(t, "Laguna", clean.Records[1].String("Province"))
}

func TestPipelineRunHeaderMismatchDegradesSoftly(t *testing.T) {
	spec, _ := dataset.Get(dataset.KindSex)

	grid := &RawGrid{
		Sheet: "SEX",
		Rows: [][]string{
			{""},
			{""},
			{"Year", "Male"},
			{"1981", "12,034"},
		},
	}

	clean, err := newTestPipeline().Run(context.Background(), grid, spec)
	require.NoError(t, err)

	// Sanitized source labels stand in for the canonical list.
	assert.Equal(t, []string{"Year", "Male"}, clean.ColumnNames())
	require.Len(t, clean.Records, 1)
}

func TestPipelineRunUnreadableGrid(t *testing.T) {
	spec, _ := dataset.Get(dataset.KindSex)

	grid := &RawGrid{Sheet: "SEX", Rows: [][]string{{"banner"}}}

	clean, err := newTestPipeline().Run(context.Background(), grid, spec)
	require.Error(t, err)
	assert.Nil(t, clean)
}

func TestDropAllZeroRowsKeepsMixedRows(t *testing.T) {
	table := &domain.CleanTable{
		Columns: []domain.ColumnSpec{
			{Name: "KEY", Kind: domain.ColumnKindKey},
			{Name: "1988", Kind: domain.ColumnKindYear},
		},
		Records: []domain.CleanRecord{
			{"KEY": "a", "1988": int64(0)},
			{"KEY": "b", "1988": int64(5)},
		},
	}

	dropAllZeroRows(table)

	require.Len(t, table.Records, 1)
	assert.Equal(t, "b", table.Records[0].String("KEY"))
}
