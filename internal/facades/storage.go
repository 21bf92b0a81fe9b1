package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gearted/gearted-backend/internal/logger"
)

// GCSObjectStore stores public objects in one Google Cloud Storage bucket.
type GCSObjectStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

// NewGCSObjectStore creates a store for bucket. Public URLs are built from
// publicBaseURL, or the storage.googleapis.com host when it is empty.
func NewGCSObjectStore(client *storage.Client, bucket, publicBaseURL string) *GCSObjectStore {
	base := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if base == "" {
		base = "https://storage.googleapis.com/" + bucket
	}
	return &GCSObjectStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: base,
	}
}

// Put writes r under key and returns the public URL of the object.
func (s *GCSObjectStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000"

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		logger.Log.Errorw("failed to write object", "bucket", s.bucket, "key", key, "error", err)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		logger.Log.Errorw("failed to close object writer", "bucket", s.bucket, "key", key, "error", err)
		return "", fmt.Errorf("close object writer: %w", err)
	}

	logger.Log.Infow("object stored", "bucket", s.bucket, "key", key)
	return s.PublicURL(key), nil
}

// Delete removes key. A missing object is not an error.
func (s *GCSObjectStore) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	if err != nil {
		logger.Log.Errorw("failed to delete object", "bucket", s.bucket, "key", key, "error", err)
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the URL an object is served from.
func (s *GCSObjectStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL returns the object key of a URL produced by PublicURL.
func (s *GCSObjectStore) KeyFromURL(url string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
