// Package storage menyimpan berkas lampiran (PKS, daftar KI) di object storage.
// Record hanya menyimpan key; byte berkas tidak pernah masuk database.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"kiadmin_backend/internals/configs"
)

var ErrObjectNotFound = errors.New("object tidak ditemukan")

// Provider adalah kolaborator penyimpanan berkas.
type Provider interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Name() string
}

// New memilih provider dari STORAGE_DRIVER: oss | gcs | local | memory.
func New(ctx context.Context, cfg configs.Config) (Provider, error) {
	switch cfg.StorageDriver {
	case "oss":
		return NewOSSProvider(OSSConfig{
			Endpoint:        cfg.OSSEndpoint,
			AccessKeyID:     cfg.OSSAccessKeyID,
			AccessKeySecret: cfg.OSSAccessSecret,
			Bucket:          cfg.OSSBucket,
			SignedURLTTL:    cfg.OSSSignedURLTTL,
		})
	case "gcs":
		return NewGCSProvider(ctx, cfg.GCSBucket, cfg.GCSCredentials)
	case "memory":
		return NewMemoryProvider(), nil
	case "", "local":
		return NewLocalProvider(cfg.StorageLocalDir, cfg.StoragePublicBase)
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER tidak dikenal: %q", cfg.StorageDriver)
	}
}

// BuildObjectKey → "<dir>/<yyyy>/<mm>/<slug>_<rand>.<ext>"
func BuildObjectKey(dir, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	dir = strings.Trim(dir, "/")
	if dir == "" {
		dir = "documents"
	}
	return fmt.Sprintf("%s/%s/%s_%s%s", dir, now.UTC().Format("2006/01"), slugify(base), randHex(6), ext)
}

// ValidKey menolak key yang keluar dari root (../) atau kosong.
func ValidKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-", "—", "-", "–", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if len(s) > 60 {
		s = s[:60]
	}
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
