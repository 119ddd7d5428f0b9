package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains file store abstractions for uploaded documents.
// Keys are slash-separated paths relative to the store root, e.g.
// "master-plans/DOC-1/DOC-1_plan_1718000000000.pdf". Implementations use
// context and streaming readers; callers never see backend-specific errors
// for missing files, only ErrNotFound.

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("file not found")

// FileInfo contains basic information about a stored file.
type FileInfo struct {
	Key         string
	Size        int64
	ContentType string
	ModifiedAt  time.Time
}

// FileStore is a file storage backend for uploaded documents.
type FileStore interface {
	// Save writes the content under the given key, creating intermediate
	// directories (or prefixes) as needed. Size is the exact byte count.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (FileInfo, error)
	// Open returns the content as a streaming reader alongside its info.
	Open(ctx context.Context, key string) (io.ReadCloser, FileInfo, error)
	// Remove deletes the file; ErrNotFound if the key does not exist.
	Remove(ctx context.Context, key string) error
}
