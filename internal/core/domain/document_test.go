package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStatus_Valid(t *testing.T) {
	for _, s := range []DocumentStatus{StatusUploading, StatusProcessing, StatusReady, StatusFailed} {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	assert.False(t, DocumentStatus("").Valid())
	assert.False(t, DocumentStatus("deleted").Valid())
}

func TestDocument_ChatEligible(t *testing.T) {
	tests := []struct {
		status DocumentStatus
		want   bool
	}{
		{StatusUploading, false},
		{StatusProcessing, false},
		{StatusReady, true},
		{StatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			doc := Document{ID: "d1", FileName: "report.pdf", Status: tt.status}
			assert.Equal(t, tt.want, doc.ChatEligible())
		})
	}
}
