package model

import "time"

// DefaultDocStatus is the workflow state assigned to newly registered documents.
const DefaultDocStatus = "Open"

// MasterPlan represents a registered master-plan document.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
//
// File-attachment fields are pointers: they stay null until a file has been
// attached, at which point IsUploaded flips to true and StoragePath and
// UploadedFile must both be set.
type MasterPlan struct {
	ID           int64      `json:"id"`
	DocID        string     `json:"doc_id"`
	DocType      string     `json:"doc_type"`
	DocTitle     string     `json:"doc_title"`
	RevisionNo   string     `json:"revision_no"`
	Year         int        `json:"year"`
	Quarter      *string    `json:"quarter,omitempty"`
	Owner        string     `json:"owner"`
	Status       string     `json:"status"`
	DocStatus    string     `json:"doc_status"`
	IsUploaded   bool       `json:"is_uploaded"`
	UploadedFile *string    `json:"uploaded_file,omitempty"`
	FileType     *string    `json:"file_type,omitempty"`
	FileSize     *int64     `json:"file_size,omitempty"`
	StoragePath  *string    `json:"storage_path,omitempty"`
	DownloadURL  *string    `json:"download_url,omitempty"`
	UploadedAt   *time.Time `json:"uploaded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
