package api

import (
	"time"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// loginRequest is the POST /login request body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the POST /login success body.
type loginResponse struct {
	Token string `json:"token"`
}

// signupRequest is the POST /signup request body.
type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// document is the wire representation of one GET /documents entry.
type document struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// toDomain converts a wire document. Unknown status values are carried
// through as-is; they render but are never chat-eligible.
func (d document) toDomain() domain.Document {
	return domain.Document{
		ID:        d.ID,
		FileName:  d.FileName,
		Status:    domain.DocumentStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

// chatRequest is the POST /chat/query request body.
type chatRequest struct {
	DocumentID string `json:"document_id"`
	Query      string `json:"query"`
}

// chatResponse is the POST /chat/query success body.
type chatResponse struct {
	Answer string `json:"answer"`
}
