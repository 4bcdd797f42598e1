// Package http implements HTTP request handlers for the emigrant data
// service. It provides a thin layer between HTTP transport and the dataset
// service, keeping handlers focused solely on HTTP concerns.
//
// # Architecture Principles
//
// Handlers in this package follow these principles:
//
//	1. Thin handlers - minimal logic, delegate to services
//	2. HTTP-only concerns - request parsing, response formatting
//	3. Error transformation - convert service errors to HTTP responses
//	4. No business logic - all logic belongs in the service layer
//
// # Request Flow
//
// A typical request flows through these layers:
//
//	HTTP Request → Chi Router → Middleware → Handler → DatasetService
//	                                              ↓
//	HTTP Response ← Handler ← Service Response ←─┘
//
// # Routes
//
// The dataset handler mounts these routes under /api/datasets:
//
//	GET /                       load status for every dataset
//	GET /{kind}                 cleaned wide table
//	GET /{kind}/long            melted long records
//	GET /{kind}/geo             ISO3-resolved geographic view
//	GET /{kind}/groups          group names plus tagged records
//	GET /{kind}/sheets          per-sheet load summaries
//	GET /{kind}/sheets/{sheet}  one sheet's cleaned table
//
// # Error Handling
//
// All errors follow RFC 7807 Problem Details:
//
//	{
//	    "type": "dataset_not_found",
//	    "title": "Dataset Not Found",
//	    "status": 404,
//	    "detail": "Dataset 'sex' is not registered",
//	    "instance": "/api/datasets/sex"
//	}
//
// Service sentinel errors map to HTTP statuses: unknown datasets and
// missing sheets become 404, datasets that never loaded or failed to load
// become 503, and views a dataset does not support become 400.
//
// # Testing
//
// Handlers are tested using httptest with a stub dataset service,
// verifying both success payloads and problem responses.
package http
