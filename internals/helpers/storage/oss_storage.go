package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"kiadmin_backend/internals/helpers/logger"
)

type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	SignedURLTTL    time.Duration
}

// OSSProvider menyimpan berkas di Alibaba Cloud OSS (bucket privat, URL ditandatangani).
type OSSProvider struct {
	bucket *oss.Bucket
	ttl    time.Duration
}

func NewOSSProvider(cfg OSSConfig) (*OSSProvider, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET_NAME")
	}
	client, err := oss.New(normalizeEndpoint(cfg.Endpoint), cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	if loc, err := client.GetBucketLocation(cfg.Bucket); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 {
			logger.L().Warn("[OSS] skip location check (AccessDenied)", "bucket", cfg.Bucket)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		logger.L().Info("[OSS] bucket siap", "bucket", cfg.Bucket, "location", loc)
	}
	ttl := cfg.SignedURLTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &OSSProvider{bucket: bkt, ttl: ttl}, nil
}

func (p *OSSProvider) Name() string { return "oss" }

func (p *OSSProvider) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return p.bucket.PutObject(key, r,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("private, max-age=3600"),
	)
}

func (p *OSSProvider) URL(ctx context.Context, key string) (string, error) {
	ok, err := p.bucket.IsObjectExist(key, oss.WithContext(ctx))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrObjectNotFound
	}
	return p.bucket.SignURL(key, oss.HTTPGet, int64(p.ttl/time.Second))
}

func (p *OSSProvider) Delete(ctx context.Context, key string) error {
	return p.bucket.DeleteObject(key, oss.WithContext(ctx))
}

func normalizeEndpoint(ep string) string {
	ep = strings.TrimSpace(ep)
	if ep == "" || strings.HasPrefix(ep, "http://") || strings.HasPrefix(ep, "https://") {
		return ep
	}
	return "https://" + ep
}
