package livequery

import (
	"context"
	"sync"
	"time"
)

type State[T any] struct {
	Value   T
	Loading bool
	Err     error
	Version uint64
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Query memegang hasil terakhir sebuah fetch dan menyebarkan setiap hasil baru
// ke subscriber.
type Query[T any] struct {
	fetch FetchFunc[T]

	mu    sync.Mutex
	state State[T]
	subs  map[chan State[T]]struct{}
}

func NewQuery[T any](fetch FetchFunc[T]) *Query[T] {
	return &Query[T]{
		fetch: fetch,
		state: State[T]{Loading: true},
		subs:  map[chan State[T]]struct{}{},
	}
}

// Snapshot mengembalikan state saat ini tanpa fetch.
func (q *Query[T]) Snapshot() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Refetch menjalankan fetch dan memperbarui state. Error disimpan bersama
// nilai terakhir yang berhasil.
func (q *Query[T]) Refetch(ctx context.Context) State[T] {
	q.mu.Lock()
	q.state.Loading = true
	q.mu.Unlock()

	v, err := q.fetch(ctx)

	q.mu.Lock()
	if err == nil {
		q.state.Value = v
	}
	q.state.Err = err
	q.state.Loading = false
	q.state.Version++
	st := q.state
	subs := make([]chan State[T], 0, len(q.subs))
	for ch := range q.subs {
		subs = append(subs, ch)
	}
	q.mu.Unlock()

	for _, ch := range subs {
		// subscriber lambat cukup menerima state terbaru
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
	return st
}

// Subscribe mendaftarkan penerima state. Fungsi cancel wajib dipanggil.
func (q *Query[T]) Subscribe() (<-chan State[T], func()) {
	ch := make(chan State[T], 1)
	q.mu.Lock()
	q.subs[ch] = struct{}{}
	q.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			q.mu.Lock()
			delete(q.subs, ch)
			q.mu.Unlock()
		})
	}
}

// Watch melakukan fetch awal, lalu refetch setiap kali topic dipublikasikan atau
// refresh berdetak, sampai ctx selesai. bus dan refresh boleh nil.
// Berjalan di goroutine pemanggil.
func (q *Query[T]) Watch(ctx context.Context, bus Bus, topic string, refresh <-chan time.Time) {
	var notify <-chan struct{}
	if bus != nil {
		ch, stop := bus.Subscribe(topic)
		defer stop()
		notify = ch
	}

	q.Refetch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-notify:
			if !ok {
				return
			}
			q.Refetch(ctx)
		case <-refresh:
			q.Refetch(ctx)
		}
	}
}
