package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contexta-labs/contexta-cli/internal/adapters/driven/storage/memory"
	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

func newDocsFixture(t *testing.T, api *mockAPI) (*DocumentService, *SessionManager) {
	t.Helper()
	store := memory.NewSessionStore()
	require.NoError(t, store.Save(domain.Session{Token: "tok", Identity: "a@b.com"}))
	sessions := NewSessionManager(store)
	return NewDocumentService(api, sessions), sessions
}

func TestDocumentService_Refresh_ReplacesWholesale(t *testing.T) {
	api := &mockAPI{listDocs: []domain.Document{
		{ID: "D1", FileName: "report.pdf", Status: domain.StatusReady},
		{ID: "D2", FileName: "notes.txt", Status: domain.StatusProcessing},
	}}
	svc, _ := newDocsFixture(t, api)

	docs, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "D1", docs[0].ID)

	// A second fetch with a different set drops stale entries.
	api.mu.Lock()
	api.listDocs = []domain.Document{{ID: "D3", FileName: "new.pdf", Status: domain.StatusUploading}}
	api.mu.Unlock()

	docs, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "D3", docs[0].ID)
}

func TestDocumentService_Refresh_FailureLeavesSetUnchanged(t *testing.T) {
	api := &mockAPI{listDocs: []domain.Document{{ID: "D1", FileName: "report.pdf", Status: domain.StatusReady}}}
	svc, _ := newDocsFixture(t, api)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	api.mu.Lock()
	api.listErr = errors.New("boom")
	api.mu.Unlock()

	_, err = svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Len(t, svc.Documents(), 1, "transient failure must not blank the list")
}

func TestDocumentService_Refresh_ReResolvesSelection(t *testing.T) {
	api := &mockAPI{listDocs: []domain.Document{
		{ID: "D1", FileName: "report.pdf", Status: domain.StatusProcessing},
	}}
	svc, _ := newDocsFixture(t, api)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	_, err = svc.Select("D1")
	require.NoError(t, err)

	// The document moved to ready on the server.
	api.mu.Lock()
	api.listDocs = []domain.Document{{ID: "D1", FileName: "report.pdf", Status: domain.StatusReady}}
	api.mu.Unlock()

	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)

	selected, ok := svc.Selected()
	require.True(t, ok, "selection survives a refresh while the id exists")
	assert.Equal(t, domain.StatusReady, selected.Status)
}

func TestDocumentService_Refresh_ClearsVanishedSelection(t *testing.T) {
	api := &mockAPI{listDocs: []domain.Document{{ID: "D1", FileName: "report.pdf", Status: domain.StatusReady}}}
	svc, _ := newDocsFixture(t, api)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	_, err = svc.Select("D1")
	require.NoError(t, err)

	api.mu.Lock()
	api.listDocs = []domain.Document{{ID: "D9", FileName: "other.pdf", Status: domain.StatusReady}}
	api.mu.Unlock()

	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)

	_, ok := svc.Selected()
	assert.False(t, ok, "selection cleared when its id is gone from the new set")
}

func TestDocumentService_Select_NotFound(t *testing.T) {
	api := &mockAPI{listDocs: []domain.Document{{ID: "D1", FileName: "report.pdf", Status: domain.StatusReady}}}
	svc, _ := newDocsFixture(t, api)
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	_, err = svc.Select("D1")
	require.NoError(t, err)

	_, err = svc.Select("missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The previous selection is unaltered.
	selected, ok := svc.Selected()
	require.True(t, ok)
	assert.Equal(t, "D1", selected.ID)
}

func TestDocumentService_ChatEligible(t *testing.T) {
	tests := []struct {
		status domain.DocumentStatus
		want   bool
	}{
		{domain.StatusUploading, false},
		{domain.StatusProcessing, false},
		{domain.StatusReady, true},
		{domain.StatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			api := &mockAPI{listDocs: []domain.Document{{ID: "D1", FileName: "f.pdf", Status: tt.status}}}
			svc, _ := newDocsFixture(t, api)
			_, err := svc.Refresh(context.Background())
			require.NoError(t, err)

			assert.False(t, svc.ChatEligible(), "no selection yet")

			_, err = svc.Select("D1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.ChatEligible())
		})
	}
}

func TestDocumentService_Upload_ValidationWithoutNetworkCall(t *testing.T) {
	api := &mockAPI{}
	svc, _ := newDocsFixture(t, api)

	err := svc.Upload(context.Background(), "", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, list, upload, _ := api.calls()
	assert.Zero(t, upload)
	assert.Zero(t, list)
}

func TestDocumentService_Upload_SchedulesSingleRefresh(t *testing.T) {
	api := &mockAPI{listDocs: []domain.Document{{ID: "D1", FileName: "report.pdf", Status: domain.StatusUploading}}}
	svc, _ := newDocsFixture(t, api)
	svc.SetRefreshDelay(10 * time.Millisecond)

	err := svc.Upload(context.Background(), "report.pdf", []byte("data"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, _, list, _, _ := api.calls()
		return list == 1
	}, time.Second, 5*time.Millisecond)

	// Single shot: no further refreshes follow.
	time.Sleep(50 * time.Millisecond)
	_, _, list, upload, _ := api.calls()
	assert.Equal(t, 1, upload)
	assert.Equal(t, 1, list)
}

func TestDocumentService_Upload_RefreshSkippedAfterTeardown(t *testing.T) {
	api := &mockAPI{}
	svc, sessions := newDocsFixture(t, api)
	svc.SetRefreshDelay(20 * time.Millisecond)

	err := svc.Upload(context.Background(), "report.pdf", []byte("data"))
	require.NoError(t, err)

	// Session torn down before the delayed refresh fires.
	sessions.Clear()

	time.Sleep(60 * time.Millisecond)
	_, _, list, _, _ := api.calls()
	assert.Zero(t, list, "delayed refresh must not run for a dead session")
}

func TestDocumentService_Reset(t *testing.T) {
	api := &mockAPI{listDocs: []domain.Document{{ID: "D1", FileName: "report.pdf", Status: domain.StatusReady}}}
	svc, _ := newDocsFixture(t, api)
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	_, err = svc.Select("D1")
	require.NoError(t, err)

	svc.Reset()

	assert.Empty(t, svc.Documents())
	_, ok := svc.Selected()
	assert.False(t, ok)
}
