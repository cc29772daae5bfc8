// Package images writes uploaded images to the public storage bucket.
package images

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

func NewWriter(storage *storage.Client, bucket string) *Writer {
	return &Writer{
		storage: storage,
		bucket:  bucket,
	}
}

type Writer struct {
	storage *storage.Client
	bucket  string
}

// WriteImage stores image bytes at the given object path and returns
// the stable public HTTPS URL.
func (w *Writer) WriteImage(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	wc := w.storage.Bucket(w.bucket).Object(path).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("images: writing image: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("images: closing writer: %w", err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", w.bucket, path), nil
}
