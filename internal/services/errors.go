package services

import "errors"

// Dataset service errors
var (
	// Dataset errors
	ErrDatasetUnknown   = errors.New("unknown dataset")
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
	ErrDatasetFailed    = errors.New("dataset load failed")

	// View errors
	ErrNotMultiSheet = errors.New("dataset is not multi-sheet")
	ErrIsMultiSheet  = errors.New("dataset is multi-sheet")
	ErrNoGeoView     = errors.New("dataset has no geographic view")
	ErrNoGroupView   = errors.New("dataset has no group view")
	ErrSheetNotFound = errors.New("sheet not found")

	// General errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)
