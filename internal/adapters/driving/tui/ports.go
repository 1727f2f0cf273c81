// Package tui provides an interactive terminal user interface for contexta.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"fmt"

	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Auth manages login, signup, and session state.
	Auth driving.AuthService

	// Documents manages the document list and selection.
	Documents driving.DocumentService

	// Chat manages the conversation with the selected document.
	Chat driving.ChatService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	auth driving.AuthService,
	documents driving.DocumentService,
	chat driving.ChatService,
) *Ports {
	return &Ports{
		Auth:      auth,
		Documents: documents,
		Chat:      chat,
	}
}

// Validate ensures all required ports are set.
// A nil port yields ErrInvalidPorts wrapping the specific sentinel.
func (p *Ports) Validate() error {
	if p.Auth == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingAuthService)
	}
	if p.Documents == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingDocumentService)
	}
	if p.Chat == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingChatService)
	}
	return nil
}
