package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfocli/internal/dataset"
	apierrors "cfocli/internal/errors"
	"cfocli/internal/services"
	"cfocli/pkg/contracts/domain"
)

// stubDatasetService implements DatasetServiceInterface with canned results.
type stubDatasetService struct {
	statuses []services.DatasetStatus
	table    *domain.CleanTable
	long     []domain.LongRecord
	sheets   *domain.SheetCollection
	geo      []domain.CleanRecord
	groups   []string
	err      error
}

func (s *stubDatasetService) Kinds(ctx context.Context) []dataset.Kind {
	kinds := make([]dataset.Kind, 0, len(s.statuses))
	for _, st := range s.statuses {
		kinds = append(kinds, st.Kind)
	}
	return kinds
}

func (s *stubDatasetService) Status(ctx context.Context) []services.DatasetStatus {
	return s.statuses
}

func (s *stubDatasetService) Table(ctx context.Context, kind dataset.Kind) (*domain.CleanTable, error) {
	return s.table, s.err
}

func (s *stubDatasetService) Long(ctx context.Context, kind dataset.Kind) ([]domain.LongRecord, error) {
	return s.long, s.err
}

func (s *stubDatasetService) Sheets(ctx context.Context, kind dataset.Kind) (*domain.SheetCollection, error) {
	return s.sheets, s.err
}

func (s *stubDatasetService) Sheet(ctx context.Context, kind dataset.Kind, name string) (*domain.CleanTable, error) {
	return s.table, s.err
}

func (s *stubDatasetService) GeoView(ctx context.Context, kind dataset.Kind) ([]domain.CleanRecord, error) {
	return s.geo, s.err
}

func (s *stubDatasetService) GroupView(ctx context.Context, kind dataset.Kind) ([]domain.CleanRecord, error) {
	return s.geo, s.err
}

func (s *stubDatasetService) Groups(ctx context.Context, kind dataset.Kind) ([]string, error) {
	return s.groups, s.err
}

func newTestHandler(t *testing.T, stub *stubDatasetService) *DatasetHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDatasetHandler(stub, logger, apierrors.NewErrorHandler(logger, false))
}

func doRequest(t *testing.T, h *DatasetHandler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleCleanTable() *domain.CleanTable {
	return &domain.CleanTable{
		Columns: []domain.ColumnSpec{
			{Name: "COUNTRY", Kind: domain.ColumnKindKey},
			{Name: "1981", Kind: domain.ColumnKindYear},
			{Name: "1982", Kind: domain.ColumnKindYear},
		},
		Records: []domain.CleanRecord{
			{"COUNTRY": "USA", "1981": int64(35000), "1982": int64(36000)},
			{"COUNTRY": "CANADA", "1981": int64(4000), "1982": int64(4200)},
		},
	}
}

func TestDatasetHandler_ListDatasets(t *testing.T) {
	stub := &stubDatasetService{
		statuses: []services.DatasetStatus{
			{Kind: dataset.KindSex, File: "Emigrant-1981-2020-Sex.xlsx", Loaded: true, Rows: 40},
			{Kind: dataset.KindAge, File: "Emigrant-1981-2020-Age.xlsx", Error: "open: no such file"},
		},
	}
	rec := doRequest(t, newTestHandler(t, stub), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["count"])
}

func TestDatasetHandler_GetTable(t *testing.T) {
	stub := &stubDatasetService{table: sampleCleanTable()}
	rec := doRequest(t, newTestHandler(t, stub), "/countries")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "countries", body["dataset"])
	assert.Equal(t, float64(2), body["count"])

	records, ok := body["data"].([]interface{})
	require.True(t, ok)
	first, ok := records[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "USA", first["COUNTRY"])
	assert.Equal(t, float64(35000), first["1981"])
}

func TestDatasetHandler_UnknownKindIs404(t *testing.T) {
	rec := doRequest(t, newTestHandler(t, &stubDatasetService{}), "/religion")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var problem apierrors.ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Contains(t, problem.Detail, "religion")
}

func TestDatasetHandler_NotLoadedIs503(t *testing.T) {
	stub := &stubDatasetService{err: services.ErrDatasetNotLoaded}
	rec := doRequest(t, newTestHandler(t, stub), "/sex")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDatasetHandler_UnsupportedViewIs400(t *testing.T) {
	stub := &stubDatasetService{err: services.ErrNoGeoView}
	rec := doRequest(t, newTestHandler(t, stub), "/sex/geo")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDatasetHandler_SheetNotFoundIs404(t *testing.T) {
	stub := &stubDatasetService{err: services.ErrSheetNotFound}
	rec := doRequest(t, newTestHandler(t, stub), "/place-of-origin/sheets/ATLANTIS")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDatasetHandler_GetLong(t *testing.T) {
	stub := &stubDatasetService{
		long: []domain.LongRecord{
			{Entity: "USA", Year: 1981, Value: 35000},
			{Entity: "USA", Year: 1982, Value: 36000},
		},
	}
	rec := doRequest(t, newTestHandler(t, stub), "/countries/long")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
}

func TestDatasetHandler_GetGroups(t *testing.T) {
	stub := &stubDatasetService{
		groups: []string{"Employed", "Unemployed"},
		geo: []domain.CleanRecord{
			{"CATEGORY": "Housewives", "GROUP": "Unemployed"},
		},
	}
	rec := doRequest(t, newTestHandler(t, stub), "/occupation/groups")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	groups, ok := body["groups"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Employed", "Unemployed"}, groups)
}

func TestDatasetHandler_GetSheets(t *testing.T) {
	sheets := domain.NewSheetCollection()
	sheets.Add(domain.SheetResult{Name: "REGION I", Table: sampleCleanTable()})
	sheets.Add(domain.SheetResult{Name: "REGION II", Warning: "no header row detected"})
	stub := &stubDatasetService{sheets: sheets}

	rec := doRequest(t, newTestHandler(t, stub), "/place-of-origin/sheets")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	summaries, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, summaries, 2)

	first := summaries[0].(map[string]interface{})
	assert.Equal(t, "REGION I", first["name"])
	assert.Equal(t, float64(2), first["rows"])

	second := summaries[1].(map[string]interface{})
	assert.Equal(t, "REGION II", second["name"])
	assert.Equal(t, "no header row detected", second["warning"])
}
