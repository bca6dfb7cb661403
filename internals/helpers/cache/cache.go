// Package cache menyimpan hasil agregasi dashboard. Kunci diberi versi per
// tabel; setiap mutasi cukup menaikkan versi sehingga kunci lama tidak terpakai.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	goredis "github.com/redis/go-redis/v9"
)

var ErrMiss = errors.New("cache miss")

type Store interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	// Version mengembalikan versi saat ini untuk sebuah topik.
	Version(ctx context.Context, topic string) (int64, error)
	Bump(ctx context.Context, topic string) error
}

// Key menggabungkan nama, versi topik, dan parameter.
func Key(ctx context.Context, s Store, name, topic string, parts ...any) (string, error) {
	v, err := s.Version(ctx, topic)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("kiadmin:stats:%s:v%d:%v", name, v, parts), nil
}

// Remember: ambil dari cache, kalau tidak ada jalankan fn dan simpan.
func Remember[T any](ctx context.Context, s Store, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var out T
	if s != nil && key != "" {
		if err := s.Get(ctx, key, &out); err == nil {
			return out, nil
		}
	}
	out, err := fn(ctx)
	if err != nil {
		return out, err
	}
	if s != nil && key != "" {
		_ = s.Set(ctx, key, out, ttl)
	}
	return out, nil
}

/* ===============================
   Redis
=================================*/

type RedisStore struct {
	rdb *goredis.Client
}

func NewRedisStore(rdb *goredis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) Get(ctx context.Context, key string, dst any) error {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return sonic.Unmarshal(raw, dst)
}

func (s *RedisStore) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, ttl).Err()
}

func (s *RedisStore) Version(ctx context.Context, topic string) (int64, error) {
	v, err := s.rdb.Get(ctx, versionKey(topic)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return v, err
}

func (s *RedisStore) Bump(ctx context.Context, topic string) error {
	return s.rdb.Incr(ctx, versionKey(topic)).Err()
}

func versionKey(topic string) string { return "kiadmin:stats:ver:" + topic }

/* ===============================
   Memory (dev & test)
=================================*/

type memItem struct {
	raw     []byte
	expires time.Time
}

type MemoryStore struct {
	mu       sync.Mutex
	items    map[string]memItem
	versions map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]memItem{}, versions: map[string]int64{}}
}

func (s *MemoryStore) Get(_ context.Context, key string, dst any) error {
	s.mu.Lock()
	it, ok := s.items[key]
	s.mu.Unlock()
	if !ok || (!it.expires.IsZero() && time.Now().After(it.expires)) {
		return ErrMiss
	}
	return sonic.Unmarshal(it.raw, dst)
}

func (s *MemoryStore) Set(_ context.Context, key string, v any, ttl time.Duration) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	it := memItem{raw: raw}
	if ttl > 0 {
		it.expires = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Version(_ context.Context, topic string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[topic], nil
}

func (s *MemoryStore) Bump(_ context.Context, topic string) error {
	s.mu.Lock()
	s.versions[topic]++
	s.mu.Unlock()
	return nil
}
