package storage

import (
	"context"
	"io"
	"sync"
)

// MemoryProvider untuk test dan STORAGE_DRIVER=memory di lokal.
type MemoryProvider struct {
	mu      sync.Mutex
	objects map[string][]byte
	// FailPut dipakai test untuk mensimulasikan upload gagal.
	FailPut error
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{objects: map[string][]byte{}}
}

func (p *MemoryProvider) Name() string { return "memory" }

func (p *MemoryProvider) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if p.FailPut != nil {
		return p.FailPut
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.objects[key] = b
	p.mu.Unlock()
	return nil
}

func (p *MemoryProvider) URL(ctx context.Context, key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.objects[key]; !ok {
		return "", ErrObjectNotFound
	}
	return "memory://" + key, nil
}

func (p *MemoryProvider) Delete(ctx context.Context, key string) error {
	p.mu.Lock()
	delete(p.objects, key)
	p.mu.Unlock()
	return nil
}

func (p *MemoryProvider) Has(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.objects[key]
	return ok
}

func (p *MemoryProvider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.objects)
}
