package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"cfocli/internal/dataset"
	apierrors "cfocli/internal/errors"
	custommw "cfocli/internal/middleware"
	"cfocli/internal/services"
)

// DatasetHandler handles dataset HTTP requests with RFC 7807 compliance
type DatasetHandler struct {
	service      DatasetServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDatasetHandler creates a new dataset handler with RFC 7807 error handling
func NewDatasetHandler(service DatasetServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DatasetHandler {
	return &DatasetHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dataset_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dataset routes with proper Chi patterns
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()

	// Use render for consistent JSON responses
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListDatasets)

	r.Route("/{kind}", func(r chi.Router) {
		r.Use(h.KindCtx) // Validate the dataset kind
		r.Get("/", h.GetTable)
		r.Get("/long", h.GetLong)
		r.Get("/geo", h.GetGeoView)
		r.Get("/groups", h.GetGroups)
		r.Get("/sheets", h.GetSheets)
		r.Get("/sheets/{sheet}", h.GetSheet)
	})

	return r
}

// KindCtx middleware validates the dataset kind parameter
func (h *DatasetHandler) KindCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")
		if kind == "" {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("kind", "Dataset kind is required"))
			return
		}
		if _, ok := dataset.Get(dataset.Kind(kind)); !ok {
			h.errorHandler.HandleError(w, r, apierrors.DatasetNotFoundError(kind))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// kindParam returns the already validated dataset kind of the request
func kindParam(r *http.Request) dataset.Kind {
	return dataset.Kind(chi.URLParam(r, "kind"))
}

// ListDatasets handles GET /api/datasets
func (h *DatasetHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	statuses := h.service.Status(r.Context())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   statuses,
		"count":  len(statuses),
	})
}

// GetTable handles GET /api/datasets/{kind}
func (h *DatasetHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	kind := kindParam(r)
	reqID := custommw.GetReqID(r.Context())

	h.logger.InfoContext(r.Context(), "fetching dataset table",
		slog.String("dataset", string(kind)),
		slog.String("request_id", reqID),
	)

	table, err := h.service.Table(r.Context(), kind)
	if err != nil {
		h.handleServiceError(w, r, kind, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"dataset": kind,
		"columns": table.Columns,
		"data":    table.Records,
		"count":   len(table.Records),
	})
}

// GetLong handles GET /api/datasets/{kind}/long
func (h *DatasetHandler) GetLong(w http.ResponseWriter, r *http.Request) {
	kind := kindParam(r)

	long, err := h.service.Long(r.Context(), kind)
	if err != nil {
		h.handleServiceError(w, r, kind, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"dataset": kind,
		"data":    long,
		"count":   len(long),
	})
}

// GetGeoView handles GET /api/datasets/{kind}/geo
func (h *DatasetHandler) GetGeoView(w http.ResponseWriter, r *http.Request) {
	kind := kindParam(r)

	records, err := h.service.GeoView(r.Context(), kind)
	if err != nil {
		h.handleServiceError(w, r, kind, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"dataset": kind,
		"data":    records,
		"count":   len(records),
	})
}

// GetGroups handles GET /api/datasets/{kind}/groups
func (h *DatasetHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	kind := kindParam(r)

	groups, err := h.service.Groups(r.Context(), kind)
	if err != nil {
		h.handleServiceError(w, r, kind, err)
		return
	}

	records, err := h.service.GroupView(r.Context(), kind)
	if err != nil {
		h.handleServiceError(w, r, kind, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"dataset": kind,
		"groups":  groups,
		"data":    records,
		"count":   len(records),
	})
}

// GetSheets handles GET /api/datasets/{kind}/sheets
func (h *DatasetHandler) GetSheets(w http.ResponseWriter, r *http.Request) {
	kind := kindParam(r)

	sheets, err := h.service.Sheets(r.Context(), kind)
	if err != nil {
		h.handleServiceError(w, r, kind, err)
		return
	}

	type sheetSummary struct {
		Name    string `json:"name"`
		Rows    int    `json:"rows"`
		Warning string `json:"warning,omitempty"`
	}

	summaries := make([]sheetSummary, 0, len(sheets.Order))
	for _, name := range sheets.Order {
		s := sheetSummary{Name: name}
		if res, ok := sheets.Results[name]; ok {
			s.Warning = res.Warning
			if res.OK() {
				s.Rows = len(res.Table.Records)
			}
		}
		summaries = append(summaries, s)
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"dataset": kind,
		"data":    summaries,
		"count":   len(summaries),
	})
}

// GetSheet handles GET /api/datasets/{kind}/sheets/{sheet}
func (h *DatasetHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	kind := kindParam(r)
	sheet := chi.URLParam(r, "sheet")

	table, err := h.service.Sheet(r.Context(), kind, sheet)
	if err != nil {
		h.handleServiceError(w, r, kind, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"dataset": kind,
		"sheet":   sheet,
		"columns": table.Columns,
		"data":    table.Records,
		"count":   len(table.Records),
	})
}

// handleServiceError maps dataset service errors to RFC 7807 responses
func (h *DatasetHandler) handleServiceError(w http.ResponseWriter, r *http.Request, kind dataset.Kind, err error) {
	h.logger.ErrorContext(r.Context(), "dataset request failed",
		slog.String("dataset", string(kind)),
		slog.String("error", err.Error()),
	)

	switch {
	case errors.Is(err, services.ErrDatasetUnknown):
		h.errorHandler.HandleError(w, r, apierrors.DatasetNotFoundError(string(kind)))
	case errors.Is(err, services.ErrSheetNotFound):
		h.errorHandler.HandleError(w, r, apierrors.ErrSheetNotFound)
	case errors.Is(err, services.ErrDatasetNotLoaded),
		errors.Is(err, services.ErrDatasetFailed):
		custommw.RecordSystemError(r.Context(), "dataset_unavailable", "dataset_handler")
		h.errorHandler.HandleError(w, r, apierrors.DatasetUnavailableError(string(kind), err))
	case errors.Is(err, services.ErrNotMultiSheet),
		errors.Is(err, services.ErrIsMultiSheet),
		errors.Is(err, services.ErrNoGeoView),
		errors.Is(err, services.ErrNoGroupView):
		h.errorHandler.HandleError(w, r, apierrors.New(
			http.StatusBadRequest,
			"VIEW_NOT_SUPPORTED",
			err.Error(),
		))
	default:
		custommw.RecordSystemError(r.Context(), "dataset_internal", "dataset_handler")
		h.errorHandler.HandleError(w, r, err)
	}
}
