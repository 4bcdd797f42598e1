package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cfocli/internal/config"
	"cfocli/internal/dataset"
	"cfocli/internal/geo"
	"cfocli/internal/infrastructure"
	"cfocli/internal/pipeline"
	"cfocli/pkg/contracts/domain"
)

// ISO3Column is the derived column geographic resolution writes country
// codes into.
const ISO3Column = "ISO3"

// loadConcurrency bounds how many workbooks are opened at once. The files
// are small; this mostly keeps memory flat on low-end machines.
const loadConcurrency = 4

// DatasetService loads, caches and serves the cleaned emigrant datasets.
// All eight dataset families are loaded up front; a failed family is held
// as a per-dataset error so the remaining families stay available.
type DatasetService struct {
	config   *config.Config
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	geo      *geo.CachedResolver
	metrics  *infrastructure.DatasetMetrics

	loads *loadTable
}

// DatasetLoad is the cached outcome of loading one dataset family.
type DatasetLoad struct {
	ID       string
	Kind     dataset.Kind
	File     string
	Table    *domain.CleanTable
	Sheets   *domain.SheetCollection
	Err      error
	Duration time.Duration
	LoadedAt time.Time

	long []domain.LongRecord // lazily melted, guarded by loadTable.mu
}

// DatasetStatus is the externally visible load state of one family.
type DatasetStatus struct {
	Kind     dataset.Kind `json:"kind"`
	File     string       `json:"file"`
	Loaded   bool         `json:"loaded"`
	Rows     int          `json:"rows"`
	Sheets   int          `json:"sheets,omitempty"`
	Error    string       `json:"error,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	LoadedAt time.Time    `json:"loaded_at"`
}

// NewDatasetService creates a new dataset service using the default logger
func NewDatasetService(cfg *config.Config) *DatasetService {
	return NewDatasetServiceWithLogger(cfg, slog.Default())
}

// NewDatasetServiceWithLogger creates a new dataset service with a specific logger
func NewDatasetServiceWithLogger(cfg *config.Config, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("DatasetService initialized",
		slog.String("data_dir", cfg.Paths.DataDir),
		slog.Int("datasets", len(dataset.Kinds())))

	return &DatasetService{
		config:   cfg,
		logger:   logger,
		pipeline: pipeline.New(logger),
		geo:      geo.NewISO3Resolver(),
		loads:    newLoadTable(),
	}
}

// SetMetrics attaches otel load instruments. Must be called before loading
// starts; a nil receiver on the metrics side is tolerated downstream.
func (ds *DatasetService) SetMetrics(metrics *infrastructure.DatasetMetrics) {
	ds.metrics = metrics
}

// LoadAll loads every dataset family concurrently. Individual load failures
// are recorded per dataset and do not fail the call; only a cancelled
// context returns an error.
func (ds *DatasetService) LoadAll(ctx context.Context) error {
	kinds := dataset.Kinds()

	ds.logger.InfoContext(ctx, "loading all datasets",
		slog.Int("count", len(kinds)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)

	for _, kind := range kinds {
		kind := kind
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			load := ds.loadOne(gctx, kind)
			ds.loads.put(load)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("dataset loading interrupted: %w", err)
	}

	loaded, failed := 0, 0
	for _, st := range ds.Status(ctx) {
		if st.Loaded {
			loaded++
		} else {
			failed++
		}
	}

	ds.logger.InfoContext(ctx, "dataset loading complete",
		slog.Int("loaded", loaded),
		slog.Int("failed", failed))

	return nil
}

// Reload re-runs the load for a single dataset family.
func (ds *DatasetService) Reload(ctx context.Context, kind dataset.Kind) error {
	if _, ok := dataset.Get(kind); !ok {
		return fmt.Errorf("%w: %s", ErrDatasetUnknown, kind)
	}
	load := ds.loadOne(ctx, kind)
	ds.loads.put(load)
	return load.Err
}

// loadOne runs the cleaning pipeline for one dataset family.
func (ds *DatasetService) loadOne(ctx context.Context, kind dataset.Kind) *DatasetLoad {
	spec, _ := dataset.Get(kind)
	start := time.Now()

	load := &DatasetLoad{
		ID:       uuid.New().String(),
		Kind:     kind,
		File:     spec.File,
		LoadedAt: start,
	}

	path := ds.config.WorkbookPath(spec.File)

	if spec.MultiSheet {
		sheets, err := ds.pipeline.RunWorkbook(ctx, path, spec)
		load.Sheets = sheets
		load.Err = err
	} else {
		grid, err := pipeline.LoadGrid(path, "")
		if err != nil {
			load.Err = err
		} else {
			table, err := ds.pipeline.Run(ctx, grid, spec)
			load.Table = table
			load.Err = err
		}
	}

	load.Duration = time.Since(start)

	rows := 0
	if load.Table != nil {
		rows = len(load.Table.Records)
	}
	if load.Sheets != nil {
		for _, name := range load.Sheets.Order {
			if res, ok := load.Sheets.Results[name]; ok && res.OK() {
				rows += len(res.Table.Records)
			}
		}
	}
	infrastructure.RecordDatasetLoadMetrics(ctx, ds.metrics, string(kind), int64(rows), load.Duration, load.Err)

	if load.Err != nil {
		ds.logger.WarnContext(ctx, "dataset load failed",
			slog.String("dataset", string(kind)),
			slog.String("file", spec.File),
			slog.String("error", load.Err.Error()),
			slog.Duration("duration", load.Duration))
	} else {
		ds.logger.InfoContext(ctx, "dataset loaded",
			slog.String("dataset", string(kind)),
			slog.String("load_id", load.ID),
			slog.Duration("duration", load.Duration))
	}

	return load
}

// Kinds returns the known dataset kinds in stable order.
func (ds *DatasetService) Kinds(ctx context.Context) []dataset.Kind {
	return dataset.Kinds()
}

// Status reports the load state of every dataset family.
func (ds *DatasetService) Status(ctx context.Context) []DatasetStatus {
	kinds := dataset.Kinds()
	statuses := make([]DatasetStatus, 0, len(kinds))

	for _, kind := range kinds {
		spec, _ := dataset.Get(kind)
		st := DatasetStatus{Kind: kind, File: spec.File}

		if load, ok := ds.loads.get(kind); ok {
			st.LoadedAt = load.LoadedAt
			if load.Err != nil {
				st.Error = load.Err.Error()
			} else {
				st.Loaded = true
				if load.Table != nil {
					st.Rows = len(load.Table.Records)
				}
				if load.Sheets != nil {
					st.Sheets = len(load.Sheets.Order)
					st.Warnings = load.Sheets.Warnings()
					for _, name := range load.Sheets.Order {
						if res, ok := load.Sheets.Results[name]; ok && res.OK() {
							st.Rows += len(res.Table.Records)
						}
					}
				}
			}
		}

		statuses = append(statuses, st)
	}

	return statuses
}

// load fetches a finished load for a known dataset kind.
func (ds *DatasetService) load(kind dataset.Kind) (*DatasetLoad, dataset.Spec, error) {
	spec, ok := dataset.Get(kind)
	if !ok {
		return nil, spec, fmt.Errorf("%w: %s", ErrDatasetUnknown, kind)
	}

	load, ok := ds.loads.get(kind)
	if !ok {
		return nil, spec, fmt.Errorf("%w: %s", ErrDatasetNotLoaded, kind)
	}
	if load.Err != nil {
		return nil, spec, fmt.Errorf("%w: %s: %v", ErrDatasetFailed, kind, load.Err)
	}
	return load, spec, nil
}

// Table returns the cleaned wide table for a single-sheet dataset family.
func (ds *DatasetService) Table(ctx context.Context, kind dataset.Kind) (*domain.CleanTable, error) {
	load, spec, err := ds.load(kind)
	if err != nil {
		return nil, err
	}
	if spec.MultiSheet {
		return nil, fmt.Errorf("%w: %s", ErrIsMultiSheet, kind)
	}
	return load.Table, nil
}

// Long returns the melted (entity, year, value) series for a single-sheet
// dataset family. The melt is computed once and cached.
func (ds *DatasetService) Long(ctx context.Context, kind dataset.Kind) ([]domain.LongRecord, error) {
	load, spec, err := ds.load(kind)
	if err != nil {
		return nil, err
	}
	if spec.MultiSheet {
		return nil, fmt.Errorf("%w: %s", ErrIsMultiSheet, kind)
	}
	return ds.loads.long(load), nil
}

// Sheets returns the per-sheet results for a multi-sheet dataset family.
func (ds *DatasetService) Sheets(ctx context.Context, kind dataset.Kind) (*domain.SheetCollection, error) {
	load, spec, err := ds.load(kind)
	if err != nil {
		return nil, err
	}
	if !spec.MultiSheet {
		return nil, fmt.Errorf("%w: %s", ErrNotMultiSheet, kind)
	}
	return load.Sheets, nil
}

// Sheet returns one named sheet of a multi-sheet dataset family.
func (ds *DatasetService) Sheet(ctx context.Context, kind dataset.Kind, name string) (*domain.CleanTable, error) {
	sheets, err := ds.Sheets(ctx, kind)
	if err != nil {
		return nil, err
	}
	res, ok := sheets.Results[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrSheetNotFound, kind, name)
	}
	if !res.OK() {
		return nil, fmt.Errorf("%w: %s/%s: %s", ErrDatasetFailed, kind, name, res.Warning)
	}
	return res.Table, nil
}

// GeoView returns the records of a geo-resolved dataset with country codes
// attached. Rows whose key resolves to no code are excluded from the view;
// the underlying table keeps them.
func (ds *DatasetService) GeoView(ctx context.Context, kind dataset.Kind) ([]domain.CleanRecord, error) {
	load, spec, err := ds.load(kind)
	if err != nil {
		return nil, err
	}
	if !spec.GeoResolved {
		return nil, fmt.Errorf("%w: %s", ErrNoGeoView, kind)
	}
	return pipeline.ResolveGeo(load.Table, ds.geo, ISO3Column), nil
}

// GroupView returns the records of a group-tagged dataset excluding rows
// that fell outside every declared group.
func (ds *DatasetService) GroupView(ctx context.Context, kind dataset.Kind) ([]domain.CleanRecord, error) {
	load, spec, err := ds.load(kind)
	if err != nil {
		return nil, err
	}
	if spec.GroupColumn == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoGroupView, kind)
	}
	return pipeline.GroupView(load.Table, spec.GroupColumn), nil
}

// Groups returns the declared group names of a group-tagged dataset.
func (ds *DatasetService) Groups(ctx context.Context, kind dataset.Kind) ([]string, error) {
	spec, ok := dataset.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetUnknown, kind)
	}
	if spec.GroupColumn == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoGroupView, kind)
	}

	names := make([]string, 0, len(spec.Groups))
	for name := range spec.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
