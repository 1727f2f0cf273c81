package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// Login exchanges credentials for a bearer token. It does not require
// an existing session. A rejection surfaces the server's message
// wrapped around domain.ErrInvalidCredentials so callers can display
// it verbatim.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	status, respBody, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/login",
		body:        bytes.NewReader(body),
		contentType: "application/json",
	})
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, serverMessage(respBody, "login failed"))
	}

	var resp loginResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed login response", domain.ErrServer)
	}
	return resp.Token, nil
}

// Signup registers a new account. It does not authenticate.
func (c *Client) Signup(ctx context.Context, email, password, name string) error {
	body, err := json.Marshal(signupRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	status, respBody, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/signup",
		body:        bytes.NewReader(body),
		contentType: "application/json",
	})
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, serverMessage(respBody, "signup failed"))
	}
	return nil
}

// ListDocuments returns the user's documents in server order.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	status, respBody, err := c.do(ctx, request{
		method:       http.MethodGet,
		path:         "/documents",
		requiresAuth: true,
	})
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("%w: %s", domain.ErrServer, serverMessage(respBody, "failed to load documents"))
	}

	var wire []document
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return nil, fmt.Errorf("%w: malformed documents response", domain.ErrServer)
	}

	docs := make([]domain.Document, 0, len(wire))
	for _, d := range wire {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: document entry without id", domain.ErrServer)
		}
		docs = append(docs, d.toDomain())
	}
	return docs, nil
}

// UploadDocument submits a file for processing as a multipart request
// with the file under the `file` field. The success body is ignored.
func (c *Client) UploadDocument(ctx context.Context, fileName string, data []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	status, respBody, err := c.do(ctx, request{
		method:       http.MethodPost,
		path:         "/documents/upload",
		body:         &buf,
		contentType:  writer.FormDataContentType(),
		requiresAuth: true,
	})
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return fmt.Errorf("%w: %s", domain.ErrServer, serverMessage(respBody, fmt.Sprintf("upload failed: status %d", status)))
	}
	return nil
}

// QueryDocument asks a question about a document.
func (c *Client) QueryDocument(ctx context.Context, documentID, query string) (string, error) {
	body, err := json.Marshal(chatRequest{DocumentID: documentID, Query: query})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	status, respBody, err := c.do(ctx, request{
		method:       http.MethodPost,
		path:         "/chat/query",
		body:         bytes.NewReader(body),
		contentType:  "application/json",
		requiresAuth: true,
	})
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", fmt.Errorf("%w: %s", domain.ErrServer, serverMessage(respBody, fmt.Sprintf("HTTP %d", status)))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed chat response", domain.ErrServer)
	}
	return resp.Answer, nil
}
