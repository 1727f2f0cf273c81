package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

func resetHistoryFlags() {
	historyDocumentID = ""
	historyLimit = 20
}

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No history yet.")
}

func TestHistoryCmd_PrintsEntries(t *testing.T) {
	fixture, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()
	fixture.history.entries = []domain.HistoryEntry{
		{
			ID:         "h-1",
			DocumentID: "doc-1",
			FileName:   "report.pdf",
			Question:   "What is the total?",
			Answer:     "The total is 42.",
			AskedAt:    time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "report.pdf")
	assert.Contains(t, buf.String(), "Q: What is the total?")
	assert.Contains(t, buf.String(), "A: The total is 42.")
}

func TestHistoryCmd_PassesFlags(t *testing.T) {
	fixture, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history", "--document", "doc-1", "--limit", "5"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "doc-1", fixture.history.lastDocumentID)
	assert.Equal(t, 5, fixture.history.lastLimit)
}
