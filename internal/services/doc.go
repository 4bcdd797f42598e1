// Package services implements the business logic layer of the application.
// It provides a clean separation between HTTP handlers and the cleaning
// pipeline, ensuring that dataset access rules are centralized and testable.
//
// # Architecture
//
// Services follow these architectural principles:
//
//	1. Interface-driven design for testability
//	2. Context propagation for cancellation and tracing
//	3. Dependency injection for loose coupling
//	4. Domain-focused methods that encapsulate business rules
//
// # Available Services
//
// The package provides these core services:
//
//	- DatasetService: Loads, caches and serves the cleaned emigrant datasets
//	- HealthService: Provides system health checks
//
// # Error Handling
//
// Services return sentinel errors that handlers can transform:
//
//	- ErrDatasetUnknown for unknown dataset kinds
//	- ErrDatasetNotLoaded / ErrDatasetFailed for unavailable data
//	- ErrNoGeoView / ErrNoGroupView for views a family does not carry
//
// # Testing
//
// Services are tested against fixture workbooks generated on the fly,
// exercising the full pipeline rather than mocks.
package services
