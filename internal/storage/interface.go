package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrNotFound        = errors.New("file not found")
)

// Object describes a stored upload.
type Object struct {
	Key         string `json:"path"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	ContentType string `json:"-"`
	Size        int64  `json:"-"`
}

// FileStore keeps customer and item photos.
type FileStore interface {
	// Save sniffs the content type, rejects anything not allowed and stores the
	// bytes under a fresh key. name is the client's original file name.
	Save(ctx context.Context, name string, r io.Reader) (*Object, error)
	// Open returns the file and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
