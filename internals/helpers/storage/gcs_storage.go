package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSProvider menyimpan berkas di Google Cloud Storage dengan URL publik.
type GCSProvider struct {
	client *gcs.Client
	bucket string
}

func NewGCSProvider(ctx context.Context, bucket, credentialsFile string) (*GCSProvider, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("missing env: GCS_BUCKET_NAME")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	return &GCSProvider{client: client, bucket: bucket}, nil
}

func (p *GCSProvider) Name() string { return "gcs" }

func (p *GCSProvider) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	w := p.client.Bucket(p.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (p *GCSProvider) URL(ctx context.Context, key string) (string, error) {
	if _, err := p.client.Bucket(p.bucket).Object(key).Attrs(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return "", ErrObjectNotFound
		}
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", p.bucket, (&url.URL{Path: key}).EscapedPath()), nil
}

func (p *GCSProvider) Delete(ctx context.Context, key string) error {
	err := p.client.Bucket(p.bucket).Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (p *GCSProvider) Close() error { return p.client.Close() }
