package storage

import (
	"context"
	"io"
)

// ObjectInfo represents metadata for a remote file/object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage captures the S3-compatible operations the service needs:
// branding asset uploads and inventory import reads.
type ObjectStorage interface {
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	PutObject(ctx context.Context, key string, data io.Reader, size int64, contentType string) error
	RemoveObject(ctx context.Context, key string) error

	// PublicURL returns the browser-facing URL for an uploaded object.
	PublicURL(key string) string
}
