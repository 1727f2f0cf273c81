package domain

import "time"

// DocumentStatus is the server-assigned processing state of a document.
// The client only observes status; it never computes or advances it.
type DocumentStatus string

// Document processing states, in pipeline order.
const (
	// StatusUploading means the upload has been accepted but not yet
	// picked up by the processing pipeline.
	StatusUploading DocumentStatus = "uploading"

	// StatusProcessing means the pipeline is extracting and indexing.
	StatusProcessing DocumentStatus = "processing"

	// StatusReady means the document can be queried.
	StatusReady DocumentStatus = "ready"

	// StatusFailed means processing failed; the document cannot be queried.
	StatusFailed DocumentStatus = "failed"
)

// Valid returns true if the status is one of the known pipeline states.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusUploading, StatusProcessing, StatusReady, StatusFailed:
		return true
	default:
		return false
	}
}

// Document represents a user-uploaded document as reported by the backend.
type Document struct {
	// ID is the unique identifier assigned by the backend.
	ID string

	// FileName is the original upload file name.
	FileName string

	// Status is the current processing state.
	Status DocumentStatus

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time
}

// ChatEligible returns true if the document can be queried.
func (d Document) ChatEligible() bool {
	return d.Status == StatusReady
}
