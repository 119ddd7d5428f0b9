package model

// CreateMasterPlanRequest is the JSON body accepted by the create endpoint.
// Required-field checking happens in the service layer so that missing fields
// can be reported together rather than one at a time.
type CreateMasterPlanRequest struct {
	DocID      string  `json:"doc_id"`
	DocType    string  `json:"doc_type"`
	DocTitle   string  `json:"doc_title"`
	RevisionNo string  `json:"revision_no"`
	Year       int     `json:"year"`
	Quarter    *string `json:"quarter,omitempty"`
	Owner      string  `json:"owner"`
	Status     string  `json:"status"`
	DocStatus  string  `json:"doc_status,omitempty"`

	// Attachment metadata from a preceding upload call. Optional: the record
	// is valid without a file.
	UploadedFile *string `json:"uploaded_file,omitempty"`
	FileType     *string `json:"file_type,omitempty"`
	FileSize     *int64  `json:"file_size,omitempty"`
	StoragePath  *string `json:"storage_path,omitempty"`
	DownloadURL  *string `json:"download_url,omitempty"`
}

// DeleteFileRequest is the JSON body accepted by the delete-upload endpoint.
type DeleteFileRequest struct {
	FilePath string `json:"filePath"`
	DocID    string `json:"doc_id"`
}
