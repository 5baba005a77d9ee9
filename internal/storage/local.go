package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"rentdesk-backend/internal/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
)

// sniffLen is how much of an upload is read to detect its type.
const sniffLen = 3072

// LocalStorage stores files in a directory on the local filesystem and serves
// them back through the API.
type LocalStorage struct {
	dir          string
	baseURL      string
	maxBytes     int64
	allowedTypes []string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		dir:          cfg.UploadDir,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes:     cfg.MaxBytes,
		allowedTypes: cfg.AllowedTypes,
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, name string, r io.Reader) (*Object, error) {
	logger.ExternalServiceCall("local-storage", "Save", "name", name)

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !s.allowed(mt) {
		logger.ExternalServiceResult("local-storage", "Save", ErrUnsupportedType, "detected", mt.String())
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	key := strings.ToLower(ulid.Make().String()) + mt.Extension()
	path := filepath.Join(s.dir, key)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	body := io.MultiReader(bytes.NewReader(head), r)
	if s.maxBytes > 0 {
		body = io.LimitReader(body, s.maxBytes+1)
	}
	size, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && s.maxBytes > 0 && size > s.maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		os.Remove(path)
		logger.ExternalServiceResult("local-storage", "Save", err, "key", key)
		return nil, err
	}

	logger.ExternalServiceResult("local-storage", "Save", nil, "key", key, "size", size)
	return &Object{
		Key:         key,
		URL:         s.URL(key),
		Name:        filepath.Base(name),
		ContentType: mt.String(),
		Size:        size,
	}, nil
}

func (s *LocalStorage) allowed(mt *mimetype.MIME) bool {
	if len(s.allowedTypes) == 0 {
		return true
	}
	return slices.ContainsFunc(s.allowedTypes, func(t string) bool { return mt.Is(t) })
}

func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to detect file type: %w", err)
	}
	return f, mt.String(), nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(key string) string {
	return s.baseURL + "/" + key
}

// path rejects keys that would escape the upload directory.
func (s *LocalStorage) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, key), nil
}
