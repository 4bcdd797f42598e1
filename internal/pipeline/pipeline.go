package pipeline

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cfocli/internal/dataset"
	"cfocli/pkg/contracts/domain"
)

// Pipeline runs the load-clean-normalize sequence for one dataset family.
// It is stateless and safe for concurrent use; each Run derives its output
// from its own grid with no shared mutable state.
type Pipeline struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates a Pipeline. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger: logger.With(slog.String("component", "pipeline")),
		tracer: otel.Tracer("cfocli/pipeline"),
	}
}

// Run cleans one raw grid into a typed CleanTable under the family's Spec:
// header resolution, pruning, coercion, then the family's normalization
// transforms. Deterministic and idempotent - running twice on the same
// grid yields identical tables.
//
// Only a grid that cannot be shaped at all returns an error. A header
// mismatch is soft: sanitized labels are used and the table may simply
// degrade to empty downstream.
func (p *Pipeline) Run(ctx context.Context, grid *RawGrid, spec dataset.Spec) (*domain.CleanTable, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.Run",
		trace.WithAttributes(
			attribute.String("dataset", string(spec.Kind)),
			attribute.String("sheet", grid.Sheet),
		))
	defer span.End()

	table, err := ResolveHeader(grid, spec.HeaderRow, spec.Canonical, spec.AllowWider)
	if table == nil {
		runsTotal.WithLabelValues(string(spec.Kind), "error").Inc()
		return nil, err
	}
	if err != nil {
		// Canonical override skipped; sanitized labels stand in.
		headerMismatches.WithLabelValues(string(spec.Kind)).Inc()
		p.logger.WarnContext(ctx, "header shape mismatch, using sanitized labels",
			slog.String("dataset", string(spec.Kind)),
			slog.String("sheet", grid.Sheet),
			slog.String("error", err.Error()))
	}

	if spec.KeyColumn != "" && len(spec.Canonical) == 0 && len(table.Columns) > 0 {
		table.Columns[0] = spec.KeyColumn
	}

	rawRows := len(table.Rows)
	Prune(table, PruneOptions{
		Denylist:         spec.Denylist,
		FilterRegionRows: spec.FilterRegionRows,
		MinKeyLength:     spec.MinKeyLength,
	})
	rowsPruned.WithLabelValues(string(spec.Kind)).Add(float64(rawRows - len(table.Rows)))

	clean := Coerce(table, CoerceOptions{
		IntegerValues: spec.IntegerValues,
		RatioColumn:   spec.RatioColumn,
	})

	if spec.RatioColumn != "" {
		DecomposeRatio(clean, spec.RatioColumn)
	}
	if len(spec.Groups) > 0 {
		TagGroups(clean, spec.Groups, spec.GroupColumn)
	}
	if spec.DropAllZeroRows {
		dropAllZeroRows(clean)
	}
	if spec.TotalColumn != "" {
		AddRowTotals(clean, spec.TotalColumn)
	}

	runsTotal.WithLabelValues(string(spec.Kind), "ok").Inc()
	p.logger.InfoContext(ctx, "pipeline run complete",
		slog.String("dataset", string(spec.Kind)),
		slog.String("sheet", grid.Sheet),
		slog.Int("raw_rows", rawRows),
		slog.Int("clean_rows", len(clean.Records)),
		slog.Int("columns", len(clean.Columns)))

	return clean, nil
}

// dropAllZeroRows removes records whose value columns sum to zero. The
// multi-sheet sheets pad with spacer rows that carry a key but no counts.
func dropAllZeroRows(table *domain.CleanTable) {
	cols := ValueColumns(table)
	if len(cols) == 0 {
		return
	}
	records := table.Records[:0]
	for _, record := range table.Records {
		sum := 0.0
		for _, col := range cols {
			sum += record.Float(col)
		}
		if sum != 0 {
			records = append(records, record)
		}
	}
	table.Records = records
}
