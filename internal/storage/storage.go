// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup:
// Google Drive is the default, and the MinIO implementation works with any
// S3-compatible provider.
package storage

import (
	"context"
	"fmt"
	"io"
)

// Object is the metadata the backend reports for a stored upload.
type Object struct {
	ID          string
	Name        string
	Size        int64 // 0 when the backend did not report a size
	ContentType string
	WebViewLink string
}

// Storage is the interface for uploading objects.
type Storage interface {
	// Upload streams data to the store under the given name and returns what
	// the backend recorded.
	Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (*Object, error)
}

// BackendError is returned when the remote backend rejects a call
// (authentication, quota, missing folder or bucket).
type BackendError struct {
	// Provider is a human-readable backend name, e.g. "Google Drive".
	Provider string
	// Op is the operation that failed, e.g. "create".
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
