// Package livequery menggantikan model "query reaktif global": sebuah Query
// menyimpan nilai terakhir + status loading/error, bisa di-refetch manual, dan
// otomatis refetch ketika topik perubahan dipublikasikan di Bus.
package livequery

import (
	"context"
	"sync"
)

// Bus menyebarkan nama topik yang datanya berubah (mis. "pks").
type Bus interface {
	Publish(ctx context.Context, topic string) error
	// Subscribe mengembalikan channel notifikasi dan fungsi untuk berhenti.
	Subscribe(topic string) (<-chan struct{}, func())
	Close() error
}

// MemoryBus untuk satu instance aplikasi.
type MemoryBus struct {
	mu     sync.Mutex
	subs   map[string]map[chan struct{}]struct{}
	closed bool
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: map[string]map[chan struct{}]struct{}{}}
}

func (b *MemoryBus) Publish(_ context.Context, topic string) error {
	b.fanOut(topic)
	return nil
}

func (b *MemoryBus) fanOut(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[topic] {
		// notifikasi bersifat "ada perubahan", cukup satu yang tertunda
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (b *MemoryBus) Subscribe(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	if b.subs[topic] == nil {
		b.subs[topic] = map[chan struct{}]struct{}{}
	}
	b.subs[topic][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			if set, ok := b.subs[topic]; ok {
				if _, ok := set[ch]; ok {
					delete(set, ch)
					close(ch)
				}
			}
			b.mu.Unlock()
		})
	}
}

func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, set := range b.subs {
		for ch := range set {
			close(ch)
		}
	}
	b.subs = map[string]map[chan struct{}]struct{}{}
	return nil
}
