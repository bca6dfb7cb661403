package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalProvider menyimpan berkas di disk; dilayani Fiber di bawah publicBase.
type LocalProvider struct {
	root       string
	publicBase string
}

func NewLocalProvider(root, publicBase string) (*LocalProvider, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("siapkan folder upload: %w", err)
	}
	return &LocalProvider{root: root, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (p *LocalProvider) Name() string { return "local" }

// Root dipakai route static.
func (p *LocalProvider) Root() string { return p.root }

func (p *LocalProvider) path(key string) (string, error) {
	if !ValidKey(key) {
		return "", fmt.Errorf("key tidak valid: %q", key)
	}
	return filepath.Join(p.root, filepath.FromSlash(key)), nil
}

func (p *LocalProvider) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	dst, err := p.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return err
	}
	return f.Close()
}

func (p *LocalProvider) URL(ctx context.Context, key string) (string, error) {
	src, err := p.path(key)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrObjectNotFound
		}
		return "", err
	}
	return p.publicBase + "/" + key, nil
}

func (p *LocalProvider) Delete(ctx context.Context, key string) error {
	src, err := p.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(src); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
