// Package storage holds the object store that keeps uploaded file bytes.
// Document metadata lives in the workspace store; only content goes here.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrObjectNotFound is returned when a key has no object.
var ErrObjectNotFound = errors.New("object not found")

// FilesPrefix is the URL prefix under which stored objects are served.
const FilesPrefix = "/files/"

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object storage client.
type Storage interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL for downloading the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// SourceURL is the document source URL for an object key.
func SourceURL(key string) string {
	return FilesPrefix + key
}

// KeyFromSourceURL returns the object key behind a source URL, or false when
// the URL does not point into storage (seeded documents, external links).
func KeyFromSourceURL(u string) (string, bool) {
	key, ok := strings.CutPrefix(u, FilesPrefix)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
