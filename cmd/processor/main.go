package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cfocli/internal/config"
	"cfocli/internal/dataset"
	"cfocli/internal/exporter"
	"cfocli/internal/infrastructure"
	"cfocli/internal/pipeline"
	"cfocli/internal/services"
)

func main() {
	inDir := flag.String("in", "", "input directory holding the emigrant .xlsx workbooks (defaults to configured data dir)")
	outDir := flag.String("out", "", "output directory for CSV exports (defaults to configured reports dir)")
	only := flag.String("dataset", "", "comma-separated dataset kinds to process (defaults to all)")
	withLong := flag.Bool("long", true, "also export melted long-format CSVs for year-indexed datasets")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *inDir != "" {
		cfg.Paths.DataDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}

	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	kinds, err := selectKinds(*only)
	if err != nil {
		logger.Error("Invalid dataset selection", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Starting emigrant dataset processing",
		slog.String("input_dir", cfg.Paths.DataDir),
		slog.String("output_dir", cfg.Paths.ReportsDir),
		slog.Int("datasets", len(kinds)))

	ctx := infrastructure.EnsureTraceID(context.Background())
	start := time.Now()

	svc := services.NewDatasetServiceWithLogger(cfg, logger)
	if err := svc.LoadAll(ctx); err != nil {
		logger.Error("Dataset loading aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	exp := exporter.NewDatasetExporter(cfg.Paths.ReportsDir)

	var exported, failed int
	for _, kind := range kinds {
		fmt.Printf("Processing dataset %s\n", kind)
		if err := exportDataset(ctx, svc, exp, kind, *withLong, logger); err != nil {
			logger.Error("Dataset export failed",
				slog.String("dataset", string(kind)),
				slog.String("error", err.Error()))
			failed++
			continue
		}
		exported++
	}

	logger.Info("Processing complete",
		slog.Int("exported", exported),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(start)))
	fmt.Printf("Processing complete: %d exported, %d failed\n", exported, failed)

	if failed == len(kinds) {
		os.Exit(1)
	}
}

// selectKinds resolves the -dataset flag against the registered families.
func selectKinds(csv string) ([]dataset.Kind, error) {
	if csv == "" {
		return dataset.Kinds(), nil
	}
	var kinds []dataset.Kind
	for _, raw := range strings.Split(csv, ",") {
		kind := dataset.Kind(strings.TrimSpace(raw))
		if _, ok := dataset.Get(kind); !ok {
			return nil, fmt.Errorf("unknown dataset %q", kind)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// exportDataset writes the cleaned CSV artifacts for one dataset. Multi-sheet
// families export one file per usable sheet; everything else exports the wide
// table plus an optional long melt.
func exportDataset(ctx context.Context, svc *services.DatasetService, exp *exporter.DatasetExporter, kind dataset.Kind, withLong bool, logger *slog.Logger) error {
	spec, _ := dataset.Get(kind)
	name := string(kind)

	if spec.MultiSheet {
		sheets, err := svc.Sheets(ctx, kind)
		if err != nil {
			return err
		}
		skipped, err := exp.ExportSheets(name, sheets)
		if err != nil {
			return err
		}
		for _, sheet := range skipped {
			logger.Warn("Sheet skipped during export",
				slog.String("dataset", name),
				slog.String("sheet", sheet))
		}
		fmt.Printf("Exported %d sheets for %s (%d skipped)\n",
			len(sheets.Order)-len(skipped), name, len(skipped))
		return nil
	}

	table, err := svc.Table(ctx, kind)
	if err != nil {
		return err
	}
	if err := exp.ExportTable(name, table); err != nil {
		return err
	}

	var grandTotal float64
	for _, sum := range pipeline.ColumnTotals(table) {
		grandTotal += sum
	}
	logger.Info("Exported wide table",
		slog.String("dataset", name),
		slog.Int("rows", len(table.Records)),
		slog.Float64("value_total", grandTotal))

	if withLong {
		long, err := svc.Long(ctx, kind)
		if err != nil {
			return err
		}
		if len(long) > 0 {
			if err := exp.ExportLong(name, table.KeyColumn(), long); err != nil {
				return err
			}
			logger.Info("Exported long melt",
				slog.String("dataset", name),
				slog.Int("records", len(long)))
		}
	}

	return nil
}
