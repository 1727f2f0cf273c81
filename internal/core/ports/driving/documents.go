package driving

import (
	"context"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// DocumentService owns the document set and the single selection the
// chat is scoped to.
type DocumentService interface {
	// Refresh re-reads the full document set from the backend,
	// replacing it wholesale. On failure the current set is left
	// unchanged. The selection is re-resolved by id against the new
	// set and cleared if the id is gone.
	Refresh(ctx context.Context) ([]domain.Document, error)

	// Documents returns the current set in server order.
	Documents() []domain.Document

	// Upload submits a file for processing. Empty data or file name
	// is a validation error with no network call. On success exactly
	// one follow-up Refresh is scheduled after a fixed delay.
	Upload(ctx context.Context, fileName string, data []byte) error

	// Select sets the selection by id from the current set. Returns
	// domain.ErrNotFound, leaving the selection unaltered, if the id
	// is absent. Pure state transition, no network effect.
	Select(id string) (domain.Document, error)

	// Selected returns the current selection, or false if none.
	Selected() (domain.Document, bool)

	// ChatEligible reports whether the selection is non-empty and
	// its status is ready.
	ChatEligible() bool

	// Reset clears the set and the selection. Invoked on logout and
	// session teardown.
	Reset()
}
