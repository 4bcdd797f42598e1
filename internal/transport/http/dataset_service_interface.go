package http

import (
	"context"

	"cfocli/internal/dataset"
	"cfocli/internal/services"
	"cfocli/pkg/contracts/domain"
)

// DatasetServiceInterface defines the interface for dataset operations
type DatasetServiceInterface interface {
	Kinds(ctx context.Context) []dataset.Kind
	Status(ctx context.Context) []services.DatasetStatus
	Table(ctx context.Context, kind dataset.Kind) (*domain.CleanTable, error)
	Long(ctx context.Context, kind dataset.Kind) ([]domain.LongRecord, error)
	Sheets(ctx context.Context, kind dataset.Kind) (*domain.SheetCollection, error)
	Sheet(ctx context.Context, kind dataset.Kind, name string) (*domain.CleanTable, error)
	GeoView(ctx context.Context, kind dataset.Kind) ([]domain.CleanRecord, error)
	GroupView(ctx context.Context, kind dataset.Kind) ([]domain.CleanRecord, error)
	Groups(ctx context.Context, kind dataset.Kind) ([]string, error)
}
