// Package domain defines the core business entities for Contexta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Session: The authenticated identity and credential the client holds
//   - Document: A server-side document and its processing status
//   - ChatMessage: One turn of a document-scoped conversation
//   - HistoryEntry: A locally recorded question/answer exchange
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
