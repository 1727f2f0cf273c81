package driven

import (
	"context"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// API is the Contexta backend as seen by the core services.
//
// Implementations route every authenticated call through a single
// gateway that injects the bearer credential and enforces the
// session-invalidation contract: a 401 observed on any call tears the
// session down exactly once and surfaces domain.ErrSessionExpired
// instead of the raw response. All other non-2xx responses are returned
// as errors wrapping the server-supplied message.
type API interface {
	// Login exchanges credentials for a bearer token. It does not
	// require an existing session.
	Login(ctx context.Context, email, password string) (token string, err error)

	// Signup registers a new account. It does not authenticate;
	// the caller follows up with Login.
	Signup(ctx context.Context, email, password, name string) error

	// ListDocuments returns the user's documents in server order.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// UploadDocument submits a file for processing. The response body
	// beyond success is ignored; the caller re-reads the document set
	// to observe the new entry.
	UploadDocument(ctx context.Context, fileName string, data []byte) error

	// QueryDocument asks a question about a document and returns the
	// assistant's answer.
	QueryDocument(ctx context.Context, documentID, query string) (answer string, err error)
}
