// Package domain defines the core business entities for the hearings table.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Hearing: A single legal-hearing record
//   - PageQuery / Page: A request for and a projection of the visible table page
//   - PendingAction: A mutation waiting for explicit user confirmation
//   - AppSettings: User-tunable behaviour (theme, page size, seed data, backend)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
