package service

import (
	"errors"
	"strings"
)

var (
	// ErrDocIDRequired is returned when an operation needs a doc_id and none
	// was given.
	ErrDocIDRequired = errors.New("doc_id is required")
	// ErrNotFound covers both a missing document record and a missing file.
	ErrNotFound = errors.New("not found")
	// ErrDocIDConflict is returned when a doc_id is already registered.
	ErrDocIDConflict = errors.New("doc_id already registered")
)

// ValidationError reports every missing required field of a request at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// UploadError rejects an uploaded file by size or type.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string {
	return e.Reason
}
